package repo

import (
	"context"
	"fmt"

	"github.com/gigcampus/order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) SaveMessage(ctx context.Context, m entities.Message) error {
	query, args := r.qb.Insert("order_messages").
		Columns("message_id", "order_id", "sender_id", "body", "message_type", "is_internal", "created_at").
		Values(m.MessageID, m.OrderID, m.SenderID, m.Body, string(m.Type), m.IsInternal, m.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListMessages(ctx context.Context, orderID string) ([]entities.Message, error) {
	query, args := r.qb.Select("message_id", "order_id", "sender_id", "body", "message_type", "is_internal", "created_at").
		From("order_messages").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at ASC").
		MustSql()

	var rows []Message
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select messages: %w", err)
	}

	result := make([]entities.Message, 0, len(rows))
	for _, m := range rows {
		result = append(result, MessageToEntity(m))
	}
	return result, nil
}
