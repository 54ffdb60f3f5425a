package entities

import "time"

type MessageType string

const (
	MessageTypeText   MessageType = "text"
	MessageTypeFile   MessageType = "file"
	MessageTypeImage  MessageType = "image"
	MessageTypeSystem MessageType = "system"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeText, MessageTypeFile, MessageTypeImage, MessageTypeSystem:
		return true
	}
	return false
}

// Message is an append-only order conversation entry. Never mutated or
// deleted.
type Message struct {
	MessageID  string
	OrderID    string
	SenderID   string
	Body       string
	Type       MessageType
	IsInternal bool
	CreatedAt  time.Time
}
