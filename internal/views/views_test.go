package views_test

import (
	"testing"
	"time"

	"github.com/gigcampus/order-service/internal/entities"
	"github.com/gigcampus/order-service/internal/views"

	"github.com/stretchr/testify/assert"
)

func TestOverview(t *testing.T) {
	order := entities.Order{
		OrderID:     "o1",
		OrderNumber: "ORD-001",
		ClientID:    "client",
		SellerID:    "seller",
		Status:      entities.OrderStatusInProgress,
		TotalPrice:  25000,
	}
	milestones := []entities.Milestone{
		{Status: entities.MilestoneCompleted},
		{Status: entities.MilestonePending},
		{Status: entities.MilestonePending},
	}

	view := views.Overview(order, milestones)

	assert.Equal(t, "o1", view.OrderID)
	assert.Equal(t, "in_progress", view.Status)
	assert.Equal(t, "In Progress", view.StatusLabel)
	assert.Equal(t, 33, view.Progress)
	assert.False(t, view.Terminal)
	assert.Nil(t, view.DeliveryDate)
}

func TestOverview_TerminalAndZeroMilestones(t *testing.T) {
	view := views.Overview(entities.Order{Status: entities.OrderStatusDone}, nil)

	assert.True(t, view.Terminal)
	assert.Equal(t, 0, view.Progress)
	assert.Equal(t, "Done", view.StatusLabel)
}

func TestTimeline(t *testing.T) {
	completed := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	order := entities.Order{OrderID: "o1"}
	milestones := []entities.Milestone{
		{MilestoneID: "m1", Title: "Draft", Status: entities.MilestoneCompleted, Position: 0, CompletedDate: &completed},
		{MilestoneID: "m2", Title: "Final", Status: entities.MilestoneInProgress, Position: 1},
	}

	view := views.Timeline(order, milestones)

	assert.Equal(t, 50, view.Progress)
	assert.Len(t, view.Milestones, 2)
	assert.Equal(t, "Completed", view.Milestones[0].StatusLabel)
	assert.Equal(t, &completed, view.Milestones[0].CompletedDate)
	assert.Nil(t, view.Milestones[1].CompletedDate)
}

func TestDelivery_HidesInternalMessages(t *testing.T) {
	order := entities.Order{OrderID: "o1", Status: entities.OrderStatusDone}
	messages := []entities.Message{
		{MessageID: "m1", Body: "delivered", Type: entities.MessageTypeFile},
		{MessageID: "m2", Body: "ops note", Type: entities.MessageTypeSystem, IsInternal: true},
	}
	attachments := []entities.Attachment{
		{AttachmentID: "a1", FileName: "final.zip", FileURL: "http://files/final.zip"},
	}

	view := views.Delivery(order, messages, attachments)

	assert.Len(t, view.Messages, 1)
	assert.Equal(t, "m1", view.Messages[0].MessageID)
	assert.Len(t, view.Attachments, 1)
	assert.Equal(t, "http://files/final.zip", view.Attachments[0].FileURL)
}
