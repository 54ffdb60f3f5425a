package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/gigcampus/order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

// SellerStats aggregates straight off the order rows so the dashboard can
// never drift from what is stored.
func (r *postgresRepo) SellerStats(ctx context.Context, sellerID string) (entities.SellerStats, error) {
	query, args := r.qb.Select("status", "count(*) AS orders", "coalesce(sum(total_price), 0) AS revenue").
		From("orders").
		Where(sq.Eq{"seller_id": sellerID}).
		GroupBy("status").
		MustSql()

	var rows []struct {
		Status  string `db:"status"`
		Orders  int    `db:"orders"`
		Revenue int64  `db:"revenue"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return entities.SellerStats{}, fmt.Errorf("failed to select seller stats: %w", err)
	}

	stats := entities.SellerStats{
		SellerID:     sellerID,
		StatusCounts: make(map[entities.OrderStatus]int, len(rows)),
	}
	for _, row := range rows {
		status := entities.OrderStatus(row.Status)
		stats.StatusCounts[status] = row.Orders
		if status == entities.OrderStatusDone {
			stats.TotalRevenue = row.Revenue
		}
	}
	return stats, nil
}

func (r *postgresRepo) MonthlyRevenue(ctx context.Context, sellerID string, months int) ([]entities.MonthlyRevenue, error) {
	query, args := r.qb.Select(
		"date_trunc('month', updated_at) AS month",
		"coalesce(sum(total_price), 0) AS revenue",
		"count(*) AS orders",
	).
		From("orders").
		Where(sq.Eq{"seller_id": sellerID, "status": string(entities.OrderStatusDone)}).
		Where(sq.Expr("updated_at >= date_trunc('month', now()) - make_interval(months := ?)", months)).
		GroupBy("1").
		OrderBy("1 ASC").
		MustSql()

	var rows []struct {
		Month   time.Time `db:"month"`
		Revenue int64     `db:"revenue"`
		Orders  int       `db:"orders"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select monthly revenue: %w", err)
	}

	result := make([]entities.MonthlyRevenue, 0, len(rows))
	for _, row := range rows {
		result = append(result, entities.MonthlyRevenue{Month: row.Month, Revenue: row.Revenue, Orders: row.Orders})
	}
	return result, nil
}
