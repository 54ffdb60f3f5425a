// Package views maps persisted records into the display-ready shapes the
// page handlers render. Transformers are pure: no I/O, no side effects.
package views

import (
	"time"

	"github.com/gigcampus/order-service/internal/entities"
)

var statusLabels = map[entities.OrderStatus]string{
	entities.OrderStatusPending:    "Pending",
	entities.OrderStatusInProgress: "In Progress",
	entities.OrderStatusDone:       "Done",
	entities.OrderStatusCancelled:  "Cancelled",
}

var milestoneLabels = map[entities.MilestoneStatus]string{
	entities.MilestonePending:    "Pending",
	entities.MilestoneInProgress: "In Progress",
	entities.MilestoneCompleted:  "Completed",
	entities.MilestoneCancelled:  "Cancelled",
}

type OrderOverview struct {
	OrderID      string `json:"order_id"`
	OrderNumber  string `json:"order_number"`
	ClientID     string `json:"client_id"`
	SellerID     string `json:"seller_id"`
	ServiceID    string `json:"service_id"`
	Requirements string `json:"requirements,omitempty"`
	Notes        string `json:"notes,omitempty"`
	TotalPrice   int64  `json:"total_price"`
	Status       string `json:"status"`
	StatusLabel  string `json:"status_label"`
	// Progress is derived from milestones on every read.
	Progress     int        `json:"progress"`
	Terminal     bool       `json:"terminal"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type MilestoneItem struct {
	MilestoneID   string     `json:"milestone_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status"`
	StatusLabel   string     `json:"status_label"`
	EstimatedDate *time.Time `json:"estimated_date,omitempty"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	Position      int        `json:"position"`
}

type MilestoneTimeline struct {
	OrderID    string          `json:"order_id"`
	Progress   int             `json:"progress"`
	Milestones []MilestoneItem `json:"milestones"`
}

type MessageItem struct {
	MessageID string    `json:"message_id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type AttachmentItem struct {
	AttachmentID string    `json:"attachment_id"`
	FileName     string    `json:"file_name"`
	FileURL      string    `json:"file_url"`
	FileSize     int64     `json:"file_size"`
	FileType     string    `json:"file_type,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type DeliveryView struct {
	OrderID     string           `json:"order_id"`
	Status      string           `json:"status"`
	StatusLabel string           `json:"status_label"`
	Messages    []MessageItem    `json:"messages"`
	Attachments []AttachmentItem `json:"attachments"`
}

func Overview(order entities.Order, milestones []entities.Milestone) OrderOverview {
	return OrderOverview{
		OrderID:      order.OrderID,
		OrderNumber:  order.OrderNumber,
		ClientID:     order.ClientID,
		SellerID:     order.SellerID,
		ServiceID:    order.ServiceID,
		Requirements: order.Requirements,
		Notes:        order.Notes,
		TotalPrice:   order.TotalPrice,
		Status:       string(order.Status),
		StatusLabel:  StatusLabel(order.Status),
		Progress:     entities.MilestoneProgress(milestones),
		Terminal:     order.Status.Terminal(),
		DeliveryDate: optionalTime(order.DeliveryDate),
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

func MilestoneView(m entities.Milestone) MilestoneItem {
	return MilestoneItem{
		MilestoneID:   m.MilestoneID,
		Title:         m.Title,
		Description:   m.Description,
		Status:        string(m.Status),
		StatusLabel:   MilestoneLabel(m.Status),
		EstimatedDate: optionalTime(m.EstimatedDate),
		CompletedDate: m.CompletedDate,
		Position:      m.Position,
	}
}

func Timeline(order entities.Order, milestones []entities.Milestone) MilestoneTimeline {
	items := make([]MilestoneItem, 0, len(milestones))
	for _, m := range milestones {
		items = append(items, MilestoneView(m))
	}

	return MilestoneTimeline{
		OrderID:    order.OrderID,
		Progress:   entities.MilestoneProgress(milestones),
		Milestones: items,
	}
}

func MessageView(m entities.Message) MessageItem {
	return MessageItem{
		MessageID: m.MessageID,
		SenderID:  m.SenderID,
		Body:      m.Body,
		Type:      string(m.Type),
		CreatedAt: m.CreatedAt,
	}
}

// Delivery hides internal messages: they are operator-only notes.
func Delivery(order entities.Order, messages []entities.Message, attachments []entities.Attachment) DeliveryView {
	msgs := make([]MessageItem, 0, len(messages))
	for _, m := range messages {
		if m.IsInternal {
			continue
		}
		msgs = append(msgs, MessageView(m))
	}

	atts := make([]AttachmentItem, 0, len(attachments))
	for _, a := range attachments {
		atts = append(atts, AttachmentItem{
			AttachmentID: a.AttachmentID,
			FileName:     a.FileName,
			FileURL:      a.FileURL,
			FileSize:     a.FileSize,
			FileType:     a.FileType,
			Description:  a.Description,
			CreatedAt:    a.CreatedAt,
		})
	}

	return DeliveryView{
		OrderID:     order.OrderID,
		Status:      string(order.Status),
		StatusLabel: StatusLabel(order.Status),
		Messages:    msgs,
		Attachments: atts,
	}
}

func StatusLabel(s entities.OrderStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

func MilestoneLabel(s entities.MilestoneStatus) string {
	if label, ok := milestoneLabels[s]; ok {
		return label
	}
	return "Unknown"
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
