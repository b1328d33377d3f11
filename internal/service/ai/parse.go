package ai

import (
	"encoding/json"
	"strings"

	"chatscan/backend/internal/model"
)

// Result is the normalized form of one extraction reply.
type Result struct {
	ChatText    string              `json:"chat_text"`
	PhoneNumber *string             `json:"phone_number"`
	Date        *string             `json:"date"`
	Messages    []model.ChatMessage `json:"messages"`
}

// ParseResult normalizes a raw model reply. Markdown code fences are
// stripped before unmarshalling; anything that still fails to parse is
// kept verbatim as chat text, with ok=false. No further repair is
// attempted.
func ParseResult(raw string) (Result, bool) {
	text := StripCodeFence(strings.TrimSpace(raw))

	var result Result
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return Result{ChatText: text}, false
	}
	return result, true
}

// StripCodeFence removes a surrounding ```json ... ``` (or plain
// ```) fence, which several models add despite instructions.
func StripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		// Drop the fence's language tag line ("json", "JSON", ...).
		first := strings.TrimSpace(text[:idx])
		if first == "" || strings.EqualFold(first, "json") {
			text = text[idx+1:]
		}
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
