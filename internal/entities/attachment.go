package entities

import "time"

// Attachment is an append-only file reference on an order. FileURL always
// points at a durable location by the time the row exists.
type Attachment struct {
	AttachmentID string
	OrderID      string
	FileName     string
	FileURL      string
	FileSize     int64
	FileType     string
	Description  string
	IsPublic     bool
	CreatedAt    time.Time
}
