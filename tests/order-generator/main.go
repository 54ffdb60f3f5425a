package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type CheckoutOrder struct {
	OrderID      string    `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	ClientID     string    `json:"client_id"`
	SellerID     string    `json:"seller_id"`
	ServiceID    string    `json:"service_id"`
	Requirements string    `json:"requirements"`
	TotalPrice   int64     `json:"total_price"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRandomOrder() CheckoutOrder {
	return CheckoutOrder{
		OrderID:      randomString(16),
		OrderNumber:  fmt.Sprintf("ORD-%06d", rand.Intn(999999)),
		ClientID:     "client_" + randomString(5),
		SellerID:     "seller_" + randomString(5),
		ServiceID:    "service_" + randomString(5),
		Requirements: "Requirements " + randomString(8),
		TotalPrice:   int64(rand.Intn(50000) + 1000),
		Status:       "pending",
		CreatedAt:    time.Now().UTC(),
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "checkout.orders",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, _ := json.Marshal(order)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("order generated", order.OrderID)
		case <-ctx.Done():
			return
		}
	}
}
