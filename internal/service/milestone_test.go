package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gigcampus/order-service/internal/entities"
	"github.com/gigcampus/order-service/internal/service"
	mocks "github.com/gigcampus/order-service/internal/service/mocks"
	txMocks "github.com/gigcampus/order-service/pkg/trm/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMilestoneService(t *testing.T) (*service.MilestoneService, *mocks.MockMilestoneRepo, *mocks.MockOrderRepo, *mocks.MockCache) {
	t.Helper()

	repo := mocks.NewMockMilestoneRepo(t)
	orders := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()

	return service.NewMilestoneService(logger, tx, repo, orders, cache), repo, orders, cache
}

func testMilestone(status entities.MilestoneStatus) entities.Milestone {
	return entities.Milestone{
		MilestoneID: "m-1",
		OrderID:     "order-1",
		Title:       "Draft",
		Status:      status,
		Position:    0,
	}
}

func expectSellerOrder(orders *mocks.MockOrderRepo) {
	orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
		Return(testOrder(entities.OrderStatusInProgress), nil).Once()
}

func TestMilestoneService_CreateMilestone(t *testing.T) {
	t.Run("success with pending default and progress recompute", func(t *testing.T) {
		svc, repo, orders, cache := newMilestoneService(t)
		expectSellerOrder(orders)
		repo.EXPECT().MilestonePositionTaken(mock.Anything, "order-1", 0, "").Return(false, nil).Once()
		repo.EXPECT().CreateMilestone(mock.Anything, mock.MatchedBy(func(m entities.Milestone) bool {
			return m.Status == entities.MilestonePending && m.MilestoneID != "" && m.CompletedDate == nil
		})).Return(nil).Once()
		repo.EXPECT().ListMilestones(mock.Anything, "order-1").
			Return([]entities.Milestone{testMilestone(entities.MilestonePending)}, nil).Once()
		orders.EXPECT().UpdateOrderProgress(mock.Anything, "order-1", 0).Return(nil).Once()
		cache.EXPECT().Invalidate("order:order-1").Once()
		cache.EXPECT().Invalidate("seller:" + sellerID).Once()

		got, err := svc.CreateMilestone(context.Background(), sellerID, entities.Milestone{OrderID: "order-1", Title: "Draft"})
		require.NoError(t, err)
		assert.Equal(t, entities.MilestonePending, got.Status)
		assert.NotEmpty(t, got.MilestoneID)
	})

	t.Run("completed status gets a completion date", func(t *testing.T) {
		svc, repo, orders, cache := newMilestoneService(t)
		expectSellerOrder(orders)
		repo.EXPECT().MilestonePositionTaken(mock.Anything, "order-1", 0, "").Return(false, nil).Once()
		repo.EXPECT().CreateMilestone(mock.Anything, mock.MatchedBy(func(m entities.Milestone) bool {
			return m.Status == entities.MilestoneCompleted && m.CompletedDate != nil
		})).Return(nil).Once()
		repo.EXPECT().ListMilestones(mock.Anything, "order-1").
			Return([]entities.Milestone{testMilestone(entities.MilestoneCompleted)}, nil).Once()
		orders.EXPECT().UpdateOrderProgress(mock.Anything, "order-1", 100).Return(nil).Once()
		cache.EXPECT().Invalidate(mock.Anything).Twice()

		got, err := svc.CreateMilestone(context.Background(), sellerID, entities.Milestone{
			OrderID: "order-1",
			Title:   "Draft",
			Status:  entities.MilestoneCompleted,
		})
		require.NoError(t, err)
		assert.NotNil(t, got.CompletedDate)
	})

	t.Run("position taken", func(t *testing.T) {
		svc, repo, orders, _ := newMilestoneService(t)
		expectSellerOrder(orders)
		repo.EXPECT().MilestonePositionTaken(mock.Anything, "order-1", 2, "").Return(true, nil).Once()

		_, err := svc.CreateMilestone(context.Background(), sellerID, entities.Milestone{OrderID: "order-1", Position: 2})
		assert.ErrorIs(t, err, entities.ErrPositionTaken)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc, _, orders, _ := newMilestoneService(t)
		expectSellerOrder(orders)

		_, err := svc.CreateMilestone(context.Background(), sellerID, entities.Milestone{
			OrderID: "order-1",
			Status:  entities.MilestoneStatus("blocked"),
		})
		assert.ErrorIs(t, err, entities.ErrInvalidStatus)
	})

	t.Run("client denied", func(t *testing.T) {
		svc, _, orders, _ := newMilestoneService(t)
		orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
			Return(testOrder(entities.OrderStatusInProgress), nil).Once()

		_, err := svc.CreateMilestone(context.Background(), clientID, entities.Milestone{OrderID: "order-1"})
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestMilestoneService_UpdateMilestone(t *testing.T) {
	title := "Final draft"
	position := 3
	completedStatus := entities.MilestoneCompleted

	t.Run("title only patch skips recompute", func(t *testing.T) {
		svc, repo, orders, cache := newMilestoneService(t)
		repo.EXPECT().GetMilestoneByID(mock.Anything, "m-1").
			Return(testMilestone(entities.MilestonePending), nil).Once()
		expectSellerOrder(orders)
		patch := entities.MilestonePatch{Title: &title}
		repo.EXPECT().UpdateMilestone(mock.Anything, "m-1", patch).Return(nil).Once()
		updated := testMilestone(entities.MilestonePending)
		updated.Title = title
		repo.EXPECT().GetMilestoneByID(mock.Anything, "m-1").Return(updated, nil).Once()
		cache.EXPECT().Invalidate(mock.Anything).Twice()

		got, err := svc.UpdateMilestone(context.Background(), sellerID, "m-1", patch)
		require.NoError(t, err)
		assert.Equal(t, title, got.Title)
	})

	t.Run("status change recomputes progress", func(t *testing.T) {
		svc, repo, orders, cache := newMilestoneService(t)
		repo.EXPECT().GetMilestoneByID(mock.Anything, "m-1").
			Return(testMilestone(entities.MilestonePending), nil).Once()
		expectSellerOrder(orders)
		patch := entities.MilestonePatch{Status: &completedStatus}
		repo.EXPECT().UpdateMilestone(mock.Anything, "m-1", patch).Return(nil).Once()
		repo.EXPECT().UpdateMilestoneStatus(mock.Anything, "m-1", entities.MilestoneCompleted, mock.AnythingOfType("*time.Time")).
			Return(nil).Once()
		repo.EXPECT().ListMilestones(mock.Anything, "order-1").
			Return([]entities.Milestone{
				testMilestone(entities.MilestoneCompleted),
				{MilestoneID: "m-2", OrderID: "order-1", Status: entities.MilestonePending},
			}, nil).Once()
		orders.EXPECT().UpdateOrderProgress(mock.Anything, "order-1", 50).Return(nil).Once()
		repo.EXPECT().GetMilestoneByID(mock.Anything, "m-1").
			Return(testMilestone(entities.MilestoneCompleted), nil).Once()
		cache.EXPECT().Invalidate(mock.Anything).Twice()

		got, err := svc.UpdateMilestone(context.Background(), sellerID, "m-1", patch)
		require.NoError(t, err)
		assert.Equal(t, entities.MilestoneCompleted, got.Status)
	})

	t.Run("position conflict excluding self", func(t *testing.T) {
		svc, repo, orders, _ := newMilestoneService(t)
		repo.EXPECT().GetMilestoneByID(mock.Anything, "m-1").
			Return(testMilestone(entities.MilestonePending), nil).Once()
		expectSellerOrder(orders)
		repo.EXPECT().MilestonePositionTaken(mock.Anything, "order-1", position, "m-1").Return(true, nil).Once()

		_, err := svc.UpdateMilestone(context.Background(), sellerID, "m-1", entities.MilestonePatch{Position: &position})
		assert.ErrorIs(t, err, entities.ErrPositionTaken)
	})

	t.Run("milestone not found", func(t *testing.T) {
		svc, repo, _, _ := newMilestoneService(t)
		repo.EXPECT().GetMilestoneByID(mock.Anything, "missing").
			Return(entities.Milestone{}, entities.ErrMilestoneNotFound).Once()

		_, err := svc.UpdateMilestone(context.Background(), sellerID, "missing", entities.MilestonePatch{Title: &title})
		assert.ErrorIs(t, err, entities.ErrMilestoneNotFound)
	})
}

func TestMilestoneService_UpdateMilestoneStatus(t *testing.T) {
	// the milestone enum has no transition table: completed back to pending
	// is allowed and clears the completion date
	t.Run("completed back to pending", func(t *testing.T) {
		svc, repo, orders, cache := newMilestoneService(t)
		repo.EXPECT().GetMilestoneByID(mock.Anything, "m-1").
			Return(testMilestone(entities.MilestoneCompleted), nil).Once()
		expectSellerOrder(orders)
		repo.EXPECT().UpdateMilestoneStatus(mock.Anything, "m-1", entities.MilestonePending, (*time.Time)(nil)).
			Return(nil).Once()
		repo.EXPECT().ListMilestones(mock.Anything, "order-1").
			Return([]entities.Milestone{testMilestone(entities.MilestonePending)}, nil).Once()
		orders.EXPECT().UpdateOrderProgress(mock.Anything, "order-1", 0).Return(nil).Once()
		repo.EXPECT().GetMilestoneByID(mock.Anything, "m-1").
			Return(testMilestone(entities.MilestonePending), nil).Once()
		cache.EXPECT().Invalidate(mock.Anything).Twice()

		got, err := svc.UpdateMilestoneStatus(context.Background(), sellerID, "m-1", entities.MilestonePending)
		require.NoError(t, err)
		assert.Equal(t, entities.MilestonePending, got.Status)
	})

	t.Run("unknown status rejected before any read", func(t *testing.T) {
		svc, _, _, _ := newMilestoneService(t)

		_, err := svc.UpdateMilestoneStatus(context.Background(), sellerID, "m-1", entities.MilestoneStatus("archived"))
		assert.ErrorIs(t, err, entities.ErrInvalidStatus)
	})
}

func TestMilestoneService_DeleteMilestone(t *testing.T) {
	t.Run("delete recomputes progress", func(t *testing.T) {
		svc, repo, orders, cache := newMilestoneService(t)
		repo.EXPECT().GetMilestoneByID(mock.Anything, "m-1").
			Return(testMilestone(entities.MilestoneCompleted), nil).Once()
		expectSellerOrder(orders)
		repo.EXPECT().DeleteMilestone(mock.Anything, "m-1").Return(nil).Once()
		repo.EXPECT().ListMilestones(mock.Anything, "order-1").Return(nil, nil).Once()
		orders.EXPECT().UpdateOrderProgress(mock.Anything, "order-1", 0).Return(nil).Once()
		cache.EXPECT().Invalidate(mock.Anything).Twice()

		err := svc.DeleteMilestone(context.Background(), sellerID, "m-1")
		assert.NoError(t, err)
	})

	t.Run("client denied", func(t *testing.T) {
		svc, repo, orders, _ := newMilestoneService(t)
		repo.EXPECT().GetMilestoneByID(mock.Anything, "m-1").
			Return(testMilestone(entities.MilestonePending), nil).Once()
		orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
			Return(testOrder(entities.OrderStatusInProgress), nil).Once()

		err := svc.DeleteMilestone(context.Background(), clientID, "m-1")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestMilestoneService_ListMilestones(t *testing.T) {
	milestones := []entities.Milestone{
		testMilestone(entities.MilestoneCompleted),
		{MilestoneID: "m-2", OrderID: "order-1", Position: 1},
	}

	t.Run("client reads the list", func(t *testing.T) {
		svc, repo, orders, _ := newMilestoneService(t)
		orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
			Return(testOrder(entities.OrderStatusInProgress), nil).Once()
		repo.EXPECT().ListMilestones(mock.Anything, "order-1").Return(milestones, nil).Once()

		got, err := svc.ListMilestones(context.Background(), "order-1", clientID)
		require.NoError(t, err)
		assert.Equal(t, milestones, got)
	})

	t.Run("stranger denied", func(t *testing.T) {
		svc, _, orders, _ := newMilestoneService(t)
		orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
			Return(testOrder(entities.OrderStatusInProgress), nil).Once()

		_, err := svc.ListMilestones(context.Background(), "order-1", strangerID)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}
