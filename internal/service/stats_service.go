package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/phrazzld/enroll-api/internal/store"
)

// ProductStats is the per-product reporting row: raw counts plus the two
// derived percentages, both rounded to two decimal places.
type ProductStats struct {
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	StudentCount int64   `json:"student_count"`
	GroupCount   int64   `json:"group_count"`
	// OccupancyPercent is how full the product's groups are on average:
	// mean members per group over the group capacity, as a percentage.
	// Zero when the product has no groups yet.
	OccupancyPercent float64 `json:"occupancy_percent"`
	// PurchasePercent is the share of all registered students who bought
	// the product. Zero when the system has no students.
	PurchasePercent float64 `json:"purchase_percent"`
}

// StatsPage is one page of the per-product statistics report.
type StatsPage struct {
	Stats    []*ProductStats `json:"stats"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// StatsCache caches computed stats pages. Any Get error is treated as a
// cache miss, so a degraded cache never breaks the report.
type StatsCache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
}

// StatsService computes the per-product enrollment report.
type StatsService interface {
	// ProductStats returns the page of per-product statistics ordered by
	// product ID. Page is 1-based; invalid page or pageSize values fall
	// back to the catalog defaults.
	ProductStats(ctx context.Context, page, pageSize int) (*StatsPage, error)
}

// statsServiceImpl implements the StatsService interface
type statsServiceImpl struct {
	statsStore store.StatsStore
	cache      StatsCache // nil when caching is disabled
	logger     *slog.Logger
}

// NewStatsService creates a new StatsService. The cache is optional; pass
// nil to compute every request from the database.
// It returns an error if the stats store is nil.
func NewStatsService(
	statsStore store.StatsStore,
	cache StatsCache,
	logger *slog.Logger,
) (StatsService, error) {
	if statsStore == nil {
		return nil, &EnrollmentError{
			Operation: "create_service",
			Message:   "statsStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &statsServiceImpl{
		statsStore: statsStore,
		cache:      cache,
		logger:     logger.With("component", "stats_service"),
	}, nil
}

// ProductStats implements StatsService.ProductStats.
func (s *statsServiceImpl) ProductStats(
	ctx context.Context,
	page, pageSize int,
) (*StatsPage, error) {
	page, pageSize = normalizePage(page, pageSize)
	cacheKey := fmt.Sprintf("stats:products:%d:%d", page, pageSize)

	if s.cache != nil {
		var cached StatsPage
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			s.logger.Debug("served stats page from cache", "key", cacheKey)
			return &cached, nil
		}
	}

	result, err := s.computePage(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, result); err != nil {
			// Stale-cache writes are best effort.
			s.logger.Warn("failed to cache stats page",
				"key", cacheKey,
				"error", err)
		}
	}

	return result, nil
}

func (s *statsServiceImpl) computePage(
	ctx context.Context,
	page, pageSize int,
) (*StatsPage, error) {
	total, err := s.statsStore.CountProducts(ctx)
	if err != nil {
		return nil, NewEnrollmentError("product_stats", "failed to count products", err)
	}

	totalStudents, err := s.statsStore.CountStudents(ctx)
	if err != nil {
		return nil, NewEnrollmentError("product_stats", "failed to count students", err)
	}

	offset := (page - 1) * pageSize
	rows, err := s.statsStore.ProductStats(ctx, offset, pageSize)
	if err != nil {
		return nil, NewEnrollmentError("product_stats", "failed to aggregate stats", err)
	}

	stats := make([]*ProductStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, &ProductStats{
			ProductID:        row.ProductID,
			ProductName:      row.ProductName,
			StudentCount:     row.StudentCount,
			GroupCount:       row.GroupCount,
			OccupancyPercent: occupancyPercent(row),
			PurchasePercent:  purchasePercent(row.StudentCount, totalStudents),
		})
	}

	return &StatsPage{
		Stats:    stats,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// occupancyPercent computes how full the product's groups are: students
// per group averaged over the groups, relative to the group capacity.
func occupancyPercent(row *store.ProductStatsRow) float64 {
	if row.GroupCount == 0 || row.MaxGroupSize == 0 {
		return 0
	}
	avgMembers := float64(row.StudentCount) / float64(row.GroupCount)
	return round2(avgMembers / float64(row.MaxGroupSize) * 100)
}

// purchasePercent computes the share of all students who bought the
// product.
func purchasePercent(studentCount, totalStudents int64) float64 {
	if totalStudents == 0 {
		return 0
	}
	return round2(float64(studentCount) / float64(totalStudents) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
