package ai

import (
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go/v3"
)

// IsAuthError reports whether a provider error means the caller's API
// key was rejected upstream. Providers that return structured errors
// are checked by status code; everything else falls back to message
// matching, the same sanitized classification the HTTP layer exposes.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}

	var openaiErr *openai.Error
	if errors.As(err, &openaiErr) {
		return openaiErr.StatusCode == http.StatusUnauthorized ||
			openaiErr.StatusCode == http.StatusForbidden
	}

	var anthropicErr *anthropic.Error
	if errors.As(err, &anthropicErr) {
		return anthropicErr.StatusCode == http.StatusUnauthorized ||
			anthropicErr.StatusCode == http.StatusForbidden
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "api key") ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "invalid authentication")
}
