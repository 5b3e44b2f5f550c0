package models

import (
	"time"

	"github.com/google/uuid"
)

type MessageSender string

const (
	SenderBot  MessageSender = "bot"
	SenderUser MessageSender = "user"
)

type ChatMessage struct {
	Sender MessageSender `json:"sender"`
	Text   string        `json:"text"`
	SentAt time.Time     `json:"sent_at"`
}

// Conversation is one assistant chat session.
type Conversation struct {
	ID        uuid.UUID     `json:"id"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
}
