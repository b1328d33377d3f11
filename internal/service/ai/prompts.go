package ai

const testPrompt = "Reply with the single word: ready"

// extractionPrompt instructs the model to return exactly one JSON
// object so normalization stays a plain unmarshal.
const extractionPrompt = `Analyze this chat screenshot and extract the visible conversation.

Return exactly one JSON object with this structure:
{
  "chat_text": "the full visible conversation text",
  "phone_number": "a phone number found in the image, or null",
  "date": "a date found in the image in DD/MM/YYYY format, or null",
  "messages": [
    {
      "sender": "sender name, or \"Unknown\" if not visible",
      "message": "full message text",
      "timestamp": "message time if visible, or null"
    }
  ]
}

If no chat is visible, use an empty string for chat_text and an empty
array for messages. Use null for any missing value.
IMPORTANT: return only the JSON object, without markdown or extra text.`

// ExtractionPrompt returns the prompt sent alongside every screenshot.
func ExtractionPrompt() string {
	return extractionPrompt
}
