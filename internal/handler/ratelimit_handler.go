package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chatscan/backend/internal/ratelimit"
)

type RateLimitHandler struct {
	limiter *ratelimit.Limiter
	clock   ratelimit.Clock
}

type rateLimitStatusResponse struct {
	Limit          int `json:"limit"`
	Used           int `json:"used"`
	Remaining      int `json:"remaining"`
	ResetInSeconds int `json:"reset_in_seconds"`
}

func NewRateLimitHandler(limiter *ratelimit.Limiter, clock ratelimit.Clock) *RateLimitHandler {
	return &RateLimitHandler{limiter: limiter, clock: clock}
}

func (h *RateLimitHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/rate-limit-status", h.Status)
}

// Status reports the caller's current window without consuming quota.
func (h *RateLimitHandler) Status(c echo.Context) error {
	key := ratelimit.ClientKey(c)
	st := h.limiter.Status(key, h.clock())
	return c.JSON(http.StatusOK, rateLimitStatusResponse{
		Limit:          st.Limit,
		Used:           st.Used,
		Remaining:      st.Remaining,
		ResetInSeconds: int(st.ResetIn.Seconds()),
	})
}
