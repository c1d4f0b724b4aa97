package advisory

import "krishisaathi/internal/model"

// ChatInput is one inbound dialogue turn.
type ChatInput struct {
	Message        string
	Language       model.LanguageCode
	ImageData      string // base64 data URI of a crop photo, optional
	ConversationID string // empty for a fresh conversation
	FarmerID       string // optional; enables profile extraction and context
}

// ChatOutput is the engine's reply for one turn.
type ChatOutput struct {
	Reply          string
	Language       model.LanguageCode
	ConversationID string
}

// HistoryInput requests stored turns for a conversation.
type HistoryInput struct {
	ConversationID string
}

// HistoryOutput returns the conversation turns in order.
type HistoryOutput struct {
	Turns []model.Turn
}
