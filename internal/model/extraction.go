package model

import "time"

// Extraction is one normalized extraction result for one uploaded
// screenshot.
type Extraction struct {
	ID          int64
	BatchID     string
	Filename    string
	ChatText    string
	PhoneNumber *string
	ChatDate    *string
	Messages    []ChatMessage
	Provider    string
	Model       string
	CreatedAt   time.Time
}

// ChatMessage is a single message the model identified in a screenshot.
type ChatMessage struct {
	Sender    string  `json:"sender"`
	Message   string  `json:"message"`
	Timestamp *string `json:"timestamp,omitempty"`
}
