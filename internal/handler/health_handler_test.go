package handler_test

import (
	"net/http"
	"testing"

	"chatscan/backend/internal/handler"

	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	h := handler.NewHealthHandler()
	e := newTestEcho()

	req := newJSONRequest(http.MethodGet, "/api/health", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Check(c))

	var resp handler.HealthResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "ok", resp.Status)
}
