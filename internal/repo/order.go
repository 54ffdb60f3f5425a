package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gigcampus/order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return OrderToEntity(order), nil
}

// SaveOrder is idempotent: checkout events can be redelivered.
func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.OrderID, o.OrderNumber, o.ClientID, o.SellerID, o.ServiceID,
			nullString(o.Requirements), nullString(o.Notes), o.TotalPrice,
			string(o.Status), o.Progress, nullTime(o.DeliveryDate),
			o.CreatedAt, o.UpdatedAt,
		).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

// UpdateOrderStatus applies the change conditionally on the status the
// caller validated against. A false return means another writer won the
// race (or the order vanished) and nothing was changed.
func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.OrderStatus) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"order_id": orderID, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected == 1, nil
}

// UpdateOrderProgress stores the recomputed milestone progress snapshot on
// the order row for listing pages.
func (r *postgresRepo) UpdateOrderProgress(ctx context.Context, orderID string, progress int) error {
	query, args := r.qb.Update("orders").
		Set("progress", progress).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update order progress: %w", err)
	}
	return nil
}

func (r *postgresRepo) SellerOrders(ctx context.Context, sellerID string, limit int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"seller_id": sellerID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select seller orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o))
	}
	return result, nil
}
