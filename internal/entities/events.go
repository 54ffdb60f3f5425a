package entities

import "time"

// StatusChangedEvent is published after every committed status change so
// downstream listing pages can revalidate what they rendered.
type StatusChangedEvent struct {
	OrderID    string      `json:"order_id"`
	SellerID   string      `json:"seller_id"`
	ClientID   string      `json:"client_id"`
	From       OrderStatus `json:"from"`
	To         OrderStatus `json:"to"`
	OccurredAt time.Time   `json:"occurred_at"`
}
