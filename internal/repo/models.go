package repo

import (
	"database/sql"
	"time"

	"github.com/gigcampus/order-service/internal/entities"
)

type Order struct {
	OrderID      string         `db:"order_id"`
	OrderNumber  string         `db:"order_number"`
	ClientID     string         `db:"client_id"`
	SellerID     string         `db:"seller_id"`
	ServiceID    string         `db:"service_id"`
	Requirements sql.NullString `db:"requirements"`
	Notes        sql.NullString `db:"notes"`
	TotalPrice   int64          `db:"total_price"`
	Status       string         `db:"status"`
	Progress     int            `db:"progress"`
	DeliveryDate sql.NullTime   `db:"delivery_date"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type Milestone struct {
	MilestoneID   string         `db:"milestone_id"`
	OrderID       string         `db:"order_id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	Status        string         `db:"status"`
	EstimatedDate sql.NullTime   `db:"estimated_date"`
	CompletedDate sql.NullTime   `db:"completed_date"`
	Position      int            `db:"position"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type Message struct {
	MessageID  string    `db:"message_id"`
	OrderID    string    `db:"order_id"`
	SenderID   string    `db:"sender_id"`
	Body       string    `db:"body"`
	Type       string    `db:"message_type"`
	IsInternal bool      `db:"is_internal"`
	CreatedAt  time.Time `db:"created_at"`
}

type Attachment struct {
	AttachmentID string         `db:"attachment_id"`
	OrderID      string         `db:"order_id"`
	FileName     string         `db:"file_name"`
	FileURL      string         `db:"file_url"`
	FileSize     int64          `db:"file_size"`
	FileType     sql.NullString `db:"file_type"`
	Description  sql.NullString `db:"description"`
	IsPublic     bool           `db:"is_public"`
	CreatedAt    time.Time      `db:"created_at"`
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		OrderID:      o.OrderID,
		OrderNumber:  o.OrderNumber,
		ClientID:     o.ClientID,
		SellerID:     o.SellerID,
		ServiceID:    o.ServiceID,
		Requirements: nullStringToString(o.Requirements),
		Notes:        nullStringToString(o.Notes),
		TotalPrice:   o.TotalPrice,
		Status:       entities.OrderStatus(o.Status),
		Progress:     o.Progress,
		DeliveryDate: nullTimeToTime(o.DeliveryDate),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func MilestoneToEntity(m Milestone) entities.Milestone {
	out := entities.Milestone{
		MilestoneID:   m.MilestoneID,
		OrderID:       m.OrderID,
		Title:         m.Title,
		Description:   nullStringToString(m.Description),
		Status:        entities.MilestoneStatus(m.Status),
		EstimatedDate: nullTimeToTime(m.EstimatedDate),
		Position:      m.Position,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.CompletedDate.Valid {
		t := m.CompletedDate.Time
		out.CompletedDate = &t
	}
	return out
}

func MessageToEntity(m Message) entities.Message {
	return entities.Message{
		MessageID:  m.MessageID,
		OrderID:    m.OrderID,
		SenderID:   m.SenderID,
		Body:       m.Body,
		Type:       entities.MessageType(m.Type),
		IsInternal: m.IsInternal,
		CreatedAt:  m.CreatedAt,
	}
}

func AttachmentToEntity(a Attachment) entities.Attachment {
	return entities.Attachment{
		AttachmentID: a.AttachmentID,
		OrderID:      a.OrderID,
		FileName:     a.FileName,
		FileURL:      a.FileURL,
		FileSize:     a.FileSize,
		FileType:     nullStringToString(a.FileType),
		Description:  nullStringToString(a.Description),
		IsPublic:     a.IsPublic,
		CreatedAt:    a.CreatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time
	}
	return time.Time{}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
