package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gigcampus/order-service/internal/entities"
)

type AnalyticsRepo interface {
	SellerStats(ctx context.Context, sellerID string) (entities.SellerStats, error)
	MonthlyRevenue(ctx context.Context, sellerID string, months int) ([]entities.MonthlyRevenue, error)
	SellerOrders(ctx context.Context, sellerID string, limit int) ([]entities.Order, error)
}

const (
	dashboardMonths       = 6
	dashboardRecentOrders = 10
)

// SellerDashboard is the read-only reporting shape behind the seller
// dashboard page.
type SellerDashboard struct {
	Stats        entities.SellerStats      `json:"stats"`
	Monthly      []entities.MonthlyRevenue `json:"monthly"`
	RecentOrders []entities.Order          `json:"recent_orders"`
}

// AnalyticsService serves grouped sums and counts; it never writes. The
// dashboard is cached under the seller view key, which every order
// mutation invalidates.
type AnalyticsService struct {
	logger *slog.Logger
	repo   AnalyticsRepo
	cache  Cache
}

func NewAnalyticsService(logger *slog.Logger, repo AnalyticsRepo, cache Cache) *AnalyticsService {
	return &AnalyticsService{
		logger: logger.With(slog.String("service", "analytics")),
		repo:   repo,
		cache:  cache,
	}
}

func (s *AnalyticsService) SellerDashboard(ctx context.Context, sellerID string) (SellerDashboard, error) {
	if data, ok := s.cache.Get(sellerViewKey(sellerID)); ok {
		var dashboard SellerDashboard
		if err := json.Unmarshal(data, &dashboard); err == nil {
			return dashboard, nil
		}
		s.cache.Invalidate(sellerViewKey(sellerID))
	}

	stats, err := s.repo.SellerStats(ctx, sellerID)
	if err != nil {
		return SellerDashboard{}, err
	}
	monthly, err := s.repo.MonthlyRevenue(ctx, sellerID, dashboardMonths)
	if err != nil {
		return SellerDashboard{}, err
	}
	recent, err := s.repo.SellerOrders(ctx, sellerID, dashboardRecentOrders)
	if err != nil {
		return SellerDashboard{}, err
	}

	dashboard := SellerDashboard{Stats: stats, Monthly: monthly, RecentOrders: recent}
	if data, err := json.Marshal(dashboard); err == nil {
		s.cache.Set(sellerViewKey(sellerID), data)
	}
	return dashboard, nil
}
