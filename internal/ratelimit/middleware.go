package ratelimit

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"chatscan/backend/internal/metrics"
)

// Clock supplies the current instant to the middleware. Injectable so
// admission arithmetic stays deterministic in tests.
type Clock func() time.Time

const (
	// ContextKeyQuota holds the Quota snapshot for admitted requests so
	// handlers can echo quota information back to the caller.
	ContextKeyQuota = "ratelimit.quota"

	apiKeyHeader    = "X-API-Key"
	apiKeyPrefixLen = 8
)

// Quota is the admitted request's view of its window, as stored in the
// request context.
type Quota struct {
	Limit     int
	Remaining int
}

type rateLimitedResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

// ClientKey derives the quota identity for a request: the first eight
// bytes of the caller's API key when present, else the client IP.
// Both derivations are opaque to the limiter itself.
func ClientKey(c echo.Context) string {
	if key := strings.TrimSpace(c.Request().Header.Get(apiKeyHeader)); key != "" {
		if len(key) > apiKeyPrefixLen {
			key = key[:apiKeyPrefixLen]
		}
		return key
	}
	if ip := c.RealIP(); ip != "" {
		return ip
	}
	return "unknown"
}

// Middleware admits the request against l before the wrapped handler
// runs. Rejected requests get 429 with a Retry-After header; admitted
// ones carry a Quota snapshot in the request context and rate limit
// response headers.
func Middleware(l *Limiter, clock Clock) echo.MiddlewareFunc {
	if clock == nil {
		clock = time.Now
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			metrics.AdmissionsTotal.Inc()

			d := l.Admit(ClientKey(c), clock())
			if !d.Allowed {
				metrics.AdmissionsBlocked.Inc()
				retry := retrySeconds(d.RetryAfter)
				c.Response().Header().Set("Retry-After", strconv.Itoa(retry))
				return c.JSON(http.StatusTooManyRequests, rateLimitedResponse{
					Error:      "rate limit exceeded",
					RetryAfter: retry,
				})
			}

			metrics.AdmissionsAllowed.Inc()
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(l.Limit()))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			c.Set(ContextKeyQuota, Quota{Limit: l.Limit(), Remaining: d.Remaining})
			return next(c)
		}
	}
}

// retrySeconds rounds up so that waiting the advertised number of
// whole seconds is always sufficient.
func retrySeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	secs := int(d / time.Second)
	if d%time.Second != 0 {
		secs++
	}
	return secs
}
