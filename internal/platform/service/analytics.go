package service

import (
	"context"
	"fmt"
	"time"

	"github.com/harvestnet/platform/internal/platform/domain"
	"github.com/harvestnet/platform/internal/platform/store"
)

type AnalyticsService struct {
	Store store.Store
}

// Dashboard returns live counts over active users plus the fixed growth
// strings.
func (s *AnalyticsService) Dashboard(ctx context.Context) (domain.DashboardSummary, error) {
	counts, err := s.Store.Users().CountActive(ctx)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("count users: %w", err)
	}
	return domain.DashboardSummary{
		UserCounts:    counts,
		GrowthMetrics: domain.StaticGrowthMetrics,
	}, nil
}

// recalculateMetrics overwrites the stored metrics with live counts. It runs
// against st so the cleanup job can use its tx.
func recalculateMetrics(ctx context.Context, st store.Store, at time.Time) (domain.UserCounts, error) {
	counts, err := st.Users().CountActive(ctx)
	if err != nil {
		return domain.UserCounts{}, fmt.Errorf("count users: %w", err)
	}

	for name, value := range map[string]int64{
		domain.MetricTotalUsers:      counts.TotalUsers,
		domain.MetricActiveFarmers:   counts.ActiveFarmers,
		domain.MetricDataAmbassadors: counts.DataAmbassadors,
	} {
		m := domain.AnalyticsMetric{Name: name, Value: value, RecordedAt: at}
		if err := st.Analytics().UpsertMetric(ctx, m); err != nil {
			return domain.UserCounts{}, fmt.Errorf("store metric %s: %w", name, err)
		}
	}
	return counts, nil
}
