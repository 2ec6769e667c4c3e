package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"restaurant_ordering/internal/models"
	"restaurant_ordering/internal/redis"
	"restaurant_ordering/internal/repository"
)

type StatisticsService interface {
	ComputeStats(ctx context.Context) (*models.OrderStats, error)
}

type statisticsService struct {
	orderRepo repository.OrderRepository
	cache     Cache
	cacheTTL  time.Duration
}

func NewStatisticsService(orderRepo repository.OrderRepository, cache Cache, cacheTTL time.Duration) StatisticsService {
	return &statisticsService{orderRepo: orderRepo, cache: cache, cacheTTL: cacheTTL}
}

// ComputeStats reads count and revenue in one statement, so the pair always
// describes the same set of order lines.
func (s *statisticsService) ComputeStats(ctx context.Context) (*models.OrderStats, error) {
	if s.cache != nil {
		var cached models.OrderStats
		err := s.cache.GetJSON(ctx, redis.StatsKey(), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			slog.Warn("Stats cache read failed", "error", err)
		}
	}

	count, revenue, err := s.orderRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.OrderStats{TotalOrders: count, TotalRevenue: revenue}
	if count > 0 {
		stats.AverageOrderValue = revenue / float64(count)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, redis.StatsKey(), stats, s.cacheTTL); err != nil {
			slog.Warn("Stats cache write failed", "error", err)
		}
	}
	return stats, nil
}
