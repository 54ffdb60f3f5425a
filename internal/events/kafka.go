package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gigcampus/order-service/internal/config"
	"github.com/gigcampus/order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher emits committed status changes so listing pages rendered
// elsewhere can revalidate. Messages are keyed by order id to keep one
// order's events in a single partition.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *KafkaPublisher {
	return &KafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.EventsTopic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *KafkaPublisher) PublishStatusChanged(ctx context.Context, event entities.StatusChangedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write status event: %w", err)
	}

	p.logger.Debug("status event published", "order_id", event.OrderID, "to", string(event.To))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
