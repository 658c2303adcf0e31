package sqlite

import (
	"context"
	"time"

	"github.com/harvestnet/platform/internal/platform/domain"
	"github.com/harvestnet/platform/internal/platform/store/drivers/sqlite/gen"
)

type analyticsRepo struct {
	q *gen.Queries
}

func (r *analyticsRepo) GetMetric(ctx context.Context, name string) (domain.AnalyticsMetric, error) {
	row, err := r.q.GetMetric(ctx, name)
	if err != nil {
		return domain.AnalyticsMetric{}, mapNotFound(err)
	}
	return mapMetric(row), nil
}

func (r *analyticsRepo) ListMetrics(ctx context.Context) ([]domain.AnalyticsMetric, error) {
	rows, err := r.q.ListMetrics(ctx)
	if err != nil {
		return nil, err
	}
	metrics := make([]domain.AnalyticsMetric, len(rows))
	for i, row := range rows {
		metrics[i] = mapMetric(row)
	}
	return metrics, nil
}

func (r *analyticsRepo) UpsertMetric(ctx context.Context, m domain.AnalyticsMetric) error {
	recordedAt := m.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}
	return r.q.UpsertMetric(ctx, gen.UpsertMetricParams{
		Name:       m.Name,
		Value:      m.Value,
		RecordedAt: recordedAt.UTC(),
	})
}
