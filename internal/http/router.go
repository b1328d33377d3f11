package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chatscan/backend/internal/handler"
	"chatscan/backend/internal/ratelimit"
)

// NewRouter builds the Echo instance with all middleware and routes.
// The rate limiter guards only the extraction endpoints; status and
// validation stay unmetered.
func NewRouter(
	extractHandler *handler.ExtractHandler,
	resultHandler *handler.ResultHandler,
	rateLimitHandler *handler.RateLimitHandler,
	healthHandler *handler.HealthHandler,
	limiter *ratelimit.Limiter,
	clock ratelimit.Clock,
	maxUpload string,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(maxUpload))
	e.Use(RequestLoggerMiddleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	extractHandler.RegisterRoutes(api, ratelimit.Middleware(limiter, clock))
	resultHandler.RegisterRoutes(api)
	rateLimitHandler.RegisterRoutes(api)
	healthHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
