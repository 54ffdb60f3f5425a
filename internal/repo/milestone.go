package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gigcampus/order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) CreateMilestone(ctx context.Context, m entities.Milestone) error {
	var completed sql.NullTime
	if m.CompletedDate != nil {
		completed = sql.NullTime{Time: *m.CompletedDate, Valid: true}
	}

	query, args := r.qb.Insert("milestones").
		Columns(milestoneColumns...).
		Values(
			m.MilestoneID, m.OrderID, m.Title, nullString(m.Description),
			string(m.Status), nullTime(m.EstimatedDate), completed,
			m.Position, m.CreatedAt, m.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create milestone: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetMilestoneByID(ctx context.Context, milestoneID string) (entities.Milestone, error) {
	query, args := r.qb.Select(milestoneColumns...).
		From("milestones").
		Where(sq.Eq{"milestone_id": milestoneID}).
		MustSql()

	var m Milestone
	err := r.getContext(ctx, &m, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Milestone{}, entities.ErrMilestoneNotFound
	}
	if err != nil {
		return entities.Milestone{}, fmt.Errorf("failed to get milestone: %w", err)
	}
	return MilestoneToEntity(m), nil
}

func (r *postgresRepo) UpdateMilestone(ctx context.Context, milestoneID string, patch entities.MilestonePatch) error {
	q := r.qb.Update("milestones").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"milestone_id": milestoneID})

	if patch.Title != nil {
		q = q.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		q = q.Set("description", nullString(*patch.Description))
	}
	if patch.Status != nil {
		q = q.Set("status", string(*patch.Status))
	}
	if patch.EstimatedDate != nil {
		q = q.Set("estimated_date", nullTime(*patch.EstimatedDate))
	}
	if patch.Position != nil {
		q = q.Set("position", *patch.Position)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update milestone: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrMilestoneNotFound
	}
	return nil
}

func (r *postgresRepo) UpdateMilestoneStatus(ctx context.Context, milestoneID string, status entities.MilestoneStatus, completedDate *time.Time) error {
	var completed sql.NullTime
	if completedDate != nil {
		completed = sql.NullTime{Time: *completedDate, Valid: true}
	}

	query, args := r.qb.Update("milestones").
		Set("status", string(status)).
		Set("completed_date", completed).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"milestone_id": milestoneID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update milestone status: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrMilestoneNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteMilestone(ctx context.Context, milestoneID string) error {
	query, args := r.qb.Delete("milestones").
		Where(sq.Eq{"milestone_id": milestoneID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete milestone: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrMilestoneNotFound
	}
	return nil
}

func (r *postgresRepo) ListMilestones(ctx context.Context, orderID string) ([]entities.Milestone, error) {
	query, args := r.qb.Select(milestoneColumns...).
		From("milestones").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position ASC").
		MustSql()

	var rows []Milestone
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select milestones: %w", err)
	}

	result := make([]entities.Milestone, 0, len(rows))
	for _, m := range rows {
		result = append(result, MilestoneToEntity(m))
	}
	return result, nil
}

// MilestonePositionTaken backs the write-time uniqueness check; excludeID
// lets an update keep its own position.
func (r *postgresRepo) MilestonePositionTaken(ctx context.Context, orderID string, position int, excludeID string) (bool, error) {
	q := r.qb.Select("count(*)").
		From("milestones").
		Where(sq.Eq{"order_id": orderID, "position": position})
	if excludeID != "" {
		q = q.Where(sq.NotEq{"milestone_id": excludeID})
	}

	query, args := q.MustSql()
	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("failed to check milestone position: %w", err)
	}
	return count > 0, nil
}
