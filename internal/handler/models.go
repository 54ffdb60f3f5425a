package handler

import (
	"time"

	"github.com/gigcampus/order-service/internal/entities"
	"github.com/gigcampus/order-service/internal/service"
)

// CheckoutOrder is the wire shape of orders created by the external
// checkout flow and consumed from Kafka.
type CheckoutOrder struct {
	OrderID      string     `json:"order_id" validate:"required"`
	OrderNumber  string     `json:"order_number,omitempty"`
	ClientID     string     `json:"client_id" validate:"required"`
	SellerID     string     `json:"seller_id" validate:"required"`
	ServiceID    string     `json:"service_id,omitempty"`
	Requirements string     `json:"requirements,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	TotalPrice   int64      `json:"total_price" validate:"gte=0"`
	Status       string     `json:"status,omitempty"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func CheckoutOrderToEntity(o CheckoutOrder) entities.Order {
	order := entities.Order{
		OrderID:      o.OrderID,
		OrderNumber:  o.OrderNumber,
		ClientID:     o.ClientID,
		SellerID:     o.SellerID,
		ServiceID:    o.ServiceID,
		Requirements: o.Requirements,
		Notes:        o.Notes,
		TotalPrice:   o.TotalPrice,
		Status:       entities.OrderStatus(o.Status),
		CreatedAt:    o.CreatedAt,
	}
	if o.DeliveryDate != nil {
		order.DeliveryDate = *o.DeliveryDate
	}
	return order
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type SendMessageRequest struct {
	Body string `json:"body" validate:"required"`
	Type string `json:"type,omitempty"`
}

type CreateMilestoneRequest struct {
	Title         string     `json:"title" validate:"required"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status,omitempty"`
	EstimatedDate *time.Time `json:"estimated_date,omitempty"`
	Position      int        `json:"position" validate:"gte=0"`
}

func (r CreateMilestoneRequest) ToEntity(orderID string) entities.Milestone {
	m := entities.Milestone{
		OrderID:     orderID,
		Title:       r.Title,
		Description: r.Description,
		Status:      entities.MilestoneStatus(r.Status),
		Position:    r.Position,
	}
	if r.EstimatedDate != nil {
		m.EstimatedDate = *r.EstimatedDate
	}
	return m
}

type UpdateMilestoneRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Status        *string    `json:"status,omitempty"`
	EstimatedDate *time.Time `json:"estimated_date,omitempty"`
	Position      *int       `json:"position,omitempty" validate:"omitempty,gte=0"`
}

func (r UpdateMilestoneRequest) ToPatch() entities.MilestonePatch {
	patch := entities.MilestonePatch{
		Title:         r.Title,
		Description:   r.Description,
		EstimatedDate: r.EstimatedDate,
		Position:      r.Position,
	}
	if r.Status != nil {
		status := entities.MilestoneStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

type MilestoneStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// DeliveryFileJSON carries either inline base64 content to upload or the
// URL of an already hosted file.
type DeliveryFileJSON struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type,omitempty"`
	Size int64  `json:"size,omitempty" validate:"gte=0"`
	URL  string `json:"url,omitempty"`
	Data []byte `json:"data,omitempty"`
}

type SubmitDeliveryRequest struct {
	Message      string             `json:"message,omitempty"`
	MarkComplete bool               `json:"mark_complete,omitempty"`
	Files        []DeliveryFileJSON `json:"files,omitempty" validate:"dive"`
}

func (r SubmitDeliveryRequest) ToFiles() []service.DeliveryFile {
	files := make([]service.DeliveryFile, 0, len(r.Files))
	for _, f := range r.Files {
		size := f.Size
		if size == 0 {
			size = int64(len(f.Data))
		}
		files = append(files, service.DeliveryFile{
			Name: f.Name,
			Type: f.Type,
			Size: size,
			URL:  f.URL,
			Data: f.Data,
		})
	}
	return files
}

type SubmitDeliveryResponse struct {
	MessageID     string   `json:"message_id"`
	Attachments   []string `json:"attachment_ids"`
	Completed     bool     `json:"completed"`
	CompletionErr string   `json:"completion_error,omitempty"`
}

func DeliveryResultToJSON(res service.DeliveryResult) SubmitDeliveryResponse {
	ids := make([]string, 0, len(res.Attachments))
	for _, a := range res.Attachments {
		ids = append(ids, a.AttachmentID)
	}
	out := SubmitDeliveryResponse{
		MessageID:   res.Message.MessageID,
		Attachments: ids,
		Completed:   res.Completed,
	}
	if res.CompletionErr != nil {
		out.CompletionErr = res.CompletionErr.Error()
	}
	return out
}
