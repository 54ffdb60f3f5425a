package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gigcampus/order-service/internal/entities"
	"github.com/gigcampus/order-service/internal/service"
	mocks "github.com/gigcampus/order-service/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAnalyticsService(t *testing.T) (*service.AnalyticsService, *mocks.MockAnalyticsRepo, *mocks.MockCache) {
	t.Helper()

	repo := mocks.NewMockAnalyticsRepo(t)
	cache := mocks.NewMockCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewAnalyticsService(logger, repo, cache), repo, cache
}

func TestAnalyticsService_SellerDashboard(t *testing.T) {
	stats := entities.SellerStats{
		SellerID:     sellerID,
		TotalRevenue: 50000,
		StatusCounts: map[entities.OrderStatus]int{
			entities.OrderStatusDone:       4,
			entities.OrderStatusInProgress: 2,
		},
	}
	monthly := []entities.MonthlyRevenue{{
		Month:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Revenue: 25000,
		Orders:  2,
	}}
	recent := []entities.Order{{OrderID: "order-1", SellerID: sellerID}}

	t.Run("builds from repo and caches", func(t *testing.T) {
		svc, repo, cache := newAnalyticsService(t)
		cache.EXPECT().Get("seller:" + sellerID).Return(nil, false).Once()
		repo.EXPECT().SellerStats(mock.Anything, sellerID).Return(stats, nil).Once()
		repo.EXPECT().MonthlyRevenue(mock.Anything, sellerID, 6).Return(monthly, nil).Once()
		repo.EXPECT().SellerOrders(mock.Anything, sellerID, 10).Return(recent, nil).Once()
		cache.EXPECT().Set("seller:"+sellerID, mock.Anything).Once()

		dashboard, err := svc.SellerDashboard(context.Background(), sellerID)
		require.NoError(t, err)
		assert.Equal(t, stats, dashboard.Stats)
		assert.Equal(t, monthly, dashboard.Monthly)
		assert.Equal(t, recent, dashboard.RecentOrders)
	})

	t.Run("served from cache", func(t *testing.T) {
		svc, _, cache := newAnalyticsService(t)
		cached, err := json.Marshal(service.SellerDashboard{Stats: stats, Monthly: monthly, RecentOrders: recent})
		require.NoError(t, err)
		cache.EXPECT().Get("seller:" + sellerID).Return(cached, true).Once()

		dashboard, err := svc.SellerDashboard(context.Background(), sellerID)
		require.NoError(t, err)
		assert.Equal(t, stats, dashboard.Stats)
	})

	t.Run("corrupt cache entry is dropped and rebuilt", func(t *testing.T) {
		svc, repo, cache := newAnalyticsService(t)
		cache.EXPECT().Get("seller:" + sellerID).Return([]byte("{not json"), true).Once()
		cache.EXPECT().Invalidate("seller:" + sellerID).Once()
		repo.EXPECT().SellerStats(mock.Anything, sellerID).Return(stats, nil).Once()
		repo.EXPECT().MonthlyRevenue(mock.Anything, sellerID, 6).Return(monthly, nil).Once()
		repo.EXPECT().SellerOrders(mock.Anything, sellerID, 10).Return(recent, nil).Once()
		cache.EXPECT().Set("seller:"+sellerID, mock.Anything).Once()

		dashboard, err := svc.SellerDashboard(context.Background(), sellerID)
		require.NoError(t, err)
		assert.Equal(t, stats, dashboard.Stats)
	})

	t.Run("repo failure propagates", func(t *testing.T) {
		svc, repo, cache := newAnalyticsService(t)
		cache.EXPECT().Get("seller:" + sellerID).Return(nil, false).Once()
		repo.EXPECT().SellerStats(mock.Anything, sellerID).
			Return(entities.SellerStats{}, errors.New("db down")).Once()

		_, err := svc.SellerDashboard(context.Background(), sellerID)
		assert.Error(t, err)
	})
}
