package domain

import (
	"time"

	"github.com/google/uuid"
)

const MessageTypeText = "text"

// ChatPayload is the inbound body of a sendText event.
// Language is filled by the relay after moderation, never by clients.
type ChatPayload struct {
	RoomID          RoomID         `json:"roomId" validate:"required,max=128"`
	Content         string         `json:"content" validate:"required"`
	MessageType     string         `json:"messageType,omitempty"`
	ClientMessageID string         `json:"clientMessageId,omitempty" validate:"omitempty,max=128"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	Language        string         `json:"-"`
}

// Message represents an immutable persisted chat message.
type Message struct {
	ID              uuid.UUID      `json:"id"`
	RoomID          RoomID         `json:"roomId"`
	SenderID        string         `json:"senderId"`
	SenderModel     UserModel      `json:"senderModel"`
	Content         string         `json:"content"`
	MessageType     string         `json:"messageType"`
	Language        string         `json:"language,omitempty"`
	ClientMessageID string         `json:"clientMessageId,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// ModeratedContent is what a content filter returns for a chat message.
type ModeratedContent struct {
	Content       string
	Language      string
	CensoredWords []string
}
