package ai_test

import (
	"testing"

	"chatscan/backend/internal/service/ai"

	"github.com/stretchr/testify/require"
)

func TestExtractionPrompt_NamesEveryField(t *testing.T) {
	prompt := ai.ExtractionPrompt()
	require.Contains(t, prompt, `"chat_text"`)
	require.Contains(t, prompt, `"phone_number"`)
	require.Contains(t, prompt, `"date"`)
	require.Contains(t, prompt, `"messages"`)
	require.Contains(t, prompt, "only the JSON object")
}
