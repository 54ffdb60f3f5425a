package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/gigcampus/order-service/internal/entities"
	"github.com/gigcampus/order-service/pkg/trm"

	"github.com/google/uuid"
)

type MilestoneRepo interface {
	CreateMilestone(ctx context.Context, m entities.Milestone) error
	GetMilestoneByID(ctx context.Context, milestoneID string) (entities.Milestone, error)
	UpdateMilestone(ctx context.Context, milestoneID string, patch entities.MilestonePatch) error
	UpdateMilestoneStatus(ctx context.Context, milestoneID string, status entities.MilestoneStatus, completedDate *time.Time) error
	DeleteMilestone(ctx context.Context, milestoneID string) error
	ListMilestones(ctx context.Context, orderID string) ([]entities.Milestone, error)
	MilestonePositionTaken(ctx context.Context, orderID string, position int, excludeID string) (bool, error)
}

// MilestoneService manages the ordered milestone list nested under an
// order. Milestone status is deliberately unconstrained within its enum;
// only the parent order has a transition table.
type MilestoneService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      MilestoneRepo
	orders    OrderRepo
	cache     Cache
}

func NewMilestoneService(logger *slog.Logger, txManager trm.Manager, repo MilestoneRepo, orders OrderRepo, cache Cache) *MilestoneService {
	return &MilestoneService{
		logger:    logger.With(slog.String("service", "milestone")),
		txManager: txManager,
		repo:      repo,
		orders:    orders,
		cache:     cache,
	}
}

// sellerOrder loads the order and confirms the acting user is its seller.
// Outsiders and clients get ErrOrderNotFound: milestone management is the
// seller's surface.
func (s *MilestoneService) sellerOrder(ctx context.Context, orderID, actingUserID string) (entities.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if actingUserID != order.SellerID {
		s.logger.Warn("milestone access denied", "order_id", orderID, "user_id", actingUserID)
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func (s *MilestoneService) CreateMilestone(ctx context.Context, actingUserID string, m entities.Milestone) (entities.Milestone, error) {
	order, err := s.sellerOrder(ctx, m.OrderID, actingUserID)
	if err != nil {
		return entities.Milestone{}, err
	}

	if m.Status == "" {
		m.Status = entities.MilestonePending
	}
	if !m.Status.Valid() {
		return entities.Milestone{}, entities.ErrInvalidStatus
	}

	now := time.Now().UTC()
	m.MilestoneID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.Status == entities.MilestoneCompleted {
		m.CompletedDate = &now
	} else {
		m.CompletedDate = nil
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		taken, err := s.repo.MilestonePositionTaken(ctx, m.OrderID, m.Position, "")
		if err != nil {
			return err
		}
		if taken {
			return entities.ErrPositionTaken
		}
		if err := s.repo.CreateMilestone(ctx, m); err != nil {
			return err
		}
		return s.recomputeProgress(ctx, m.OrderID)
	})
	if err != nil {
		return entities.Milestone{}, err
	}

	s.invalidateViews(m.OrderID, order.SellerID)
	s.logger.Info("milestone created", "order_id", m.OrderID, "milestone_id", m.MilestoneID)
	return m, nil
}

func (s *MilestoneService) UpdateMilestone(ctx context.Context, actingUserID, milestoneID string, patch entities.MilestonePatch) (entities.Milestone, error) {
	milestone, err := s.repo.GetMilestoneByID(ctx, milestoneID)
	if err != nil {
		return entities.Milestone{}, err
	}
	order, err := s.sellerOrder(ctx, milestone.OrderID, actingUserID)
	if err != nil {
		return entities.Milestone{}, err
	}

	if patch.Status != nil && !patch.Status.Valid() {
		return entities.Milestone{}, entities.ErrInvalidStatus
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if patch.Position != nil {
			taken, err := s.repo.MilestonePositionTaken(ctx, milestone.OrderID, *patch.Position, milestoneID)
			if err != nil {
				return err
			}
			if taken {
				return entities.ErrPositionTaken
			}
		}

		if err := s.repo.UpdateMilestone(ctx, milestoneID, patch); err != nil {
			return err
		}

		if patch.Status != nil && *patch.Status != milestone.Status {
			if err := s.repo.UpdateMilestoneStatus(ctx, milestoneID, *patch.Status, completionDate(*patch.Status)); err != nil {
				return err
			}
			return s.recomputeProgress(ctx, milestone.OrderID)
		}
		return nil
	})
	if err != nil {
		return entities.Milestone{}, err
	}

	updated, err := s.repo.GetMilestoneByID(ctx, milestoneID)
	if err != nil {
		return entities.Milestone{}, err
	}

	s.invalidateViews(milestone.OrderID, order.SellerID)
	return updated, nil
}

// UpdateMilestoneStatus sets any status directly, no transition graph.
func (s *MilestoneService) UpdateMilestoneStatus(ctx context.Context, actingUserID, milestoneID string, status entities.MilestoneStatus) (entities.Milestone, error) {
	if !status.Valid() {
		return entities.Milestone{}, entities.ErrInvalidStatus
	}

	milestone, err := s.repo.GetMilestoneByID(ctx, milestoneID)
	if err != nil {
		return entities.Milestone{}, err
	}
	order, err := s.sellerOrder(ctx, milestone.OrderID, actingUserID)
	if err != nil {
		return entities.Milestone{}, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateMilestoneStatus(ctx, milestoneID, status, completionDate(status)); err != nil {
			return err
		}
		return s.recomputeProgress(ctx, milestone.OrderID)
	})
	if err != nil {
		return entities.Milestone{}, err
	}

	updated, err := s.repo.GetMilestoneByID(ctx, milestoneID)
	if err != nil {
		return entities.Milestone{}, err
	}

	s.invalidateViews(milestone.OrderID, order.SellerID)
	return updated, nil
}

func (s *MilestoneService) DeleteMilestone(ctx context.Context, actingUserID, milestoneID string) error {
	milestone, err := s.repo.GetMilestoneByID(ctx, milestoneID)
	if err != nil {
		return err
	}
	order, err := s.sellerOrder(ctx, milestone.OrderID, actingUserID)
	if err != nil {
		return err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteMilestone(ctx, milestoneID); err != nil {
			return err
		}
		return s.recomputeProgress(ctx, milestone.OrderID)
	})
	if err != nil {
		return err
	}

	s.invalidateViews(milestone.OrderID, order.SellerID)
	s.logger.Info("milestone deleted", "order_id", milestone.OrderID, "milestone_id", milestoneID)
	return nil
}

// ListMilestones returns the ordered list for either participant.
func (s *MilestoneService) ListMilestones(ctx context.Context, orderID, actingUserID string) ([]entities.Milestone, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.IsParticipant(actingUserID) {
		s.logger.Warn("milestone list denied", "order_id", orderID, "user_id", actingUserID)
		return nil, entities.ErrOrderNotFound
	}
	return s.repo.ListMilestones(ctx, orderID)
}

// recomputeProgress rederives the order progress snapshot from the
// milestone rows inside the caller's transaction.
func (s *MilestoneService) recomputeProgress(ctx context.Context, orderID string) error {
	milestones, err := s.repo.ListMilestones(ctx, orderID)
	if err != nil {
		return err
	}
	return s.orders.UpdateOrderProgress(ctx, orderID, entities.MilestoneProgress(milestones))
}

func (s *MilestoneService) invalidateViews(orderID, sellerID string) {
	s.cache.Invalidate(orderViewKey(orderID))
	s.cache.Invalidate(sellerViewKey(sellerID))
}

func completionDate(status entities.MilestoneStatus) *time.Time {
	if status != entities.MilestoneCompleted {
		return nil
	}
	now := time.Now().UTC()
	return &now
}
