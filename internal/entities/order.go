package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

type Order struct {
	OrderID      string `json:"order_id"`
	OrderNumber  string `json:"order_number"`
	ClientID     string `json:"client_id"`
	SellerID     string `json:"seller_id"`
	ServiceID    string `json:"service_id"`
	Requirements string `json:"requirements,omitempty"`
	Notes        string `json:"notes,omitempty"`
	// TotalPrice is in minor currency units.
	TotalPrice   int64       `json:"total_price"`
	Status       OrderStatus `json:"status"`
	Progress     int         `json:"progress"`
	DeliveryDate time.Time   `json:"delivery_date"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// IsParticipant reports whether userID is either side of the order.
func (o Order) IsParticipant(userID string) bool {
	return userID == o.ClientID || userID == o.SellerID
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
}
