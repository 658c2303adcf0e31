package sqlite

import (
	"context"
	"time"

	"github.com/harvestnet/platform/internal/platform/domain"
	"github.com/harvestnet/platform/internal/platform/store/drivers/sqlite/gen"
)

type weatherCacheRepo struct {
	q *gen.Queries
}

func (r *weatherCacheRepo) GetFreshEntry(
	ctx context.Context,
	latKey, lonKey int64,
	since time.Time,
) (domain.WeatherCacheEntry, error) {
	row, err := r.q.GetFreshWeatherEntry(ctx, gen.GetFreshWeatherEntryParams{
		LatKey:   latKey,
		LonKey:   lonKey,
		CachedAt: since.UTC(),
	})
	if err != nil {
		return domain.WeatherCacheEntry{}, mapNotFound(err)
	}
	return mapWeatherEntry(row), nil
}

func (r *weatherCacheRepo) CreateEntry(ctx context.Context, e domain.WeatherCacheEntry) error {
	err := r.q.CreateWeatherEntry(ctx, gen.CreateWeatherEntryParams{
		ID:        e.ID,
		Latitude:  e.Latitude,
		Longitude: e.Longitude,
		LatKey:    e.LatKey,
		LonKey:    e.LonKey,
		Payload:   e.Payload,
		CachedAt:  e.CachedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *weatherCacheRepo) ListEntries(ctx context.Context) ([]domain.WeatherCacheEntry, error) {
	rows, err := r.q.ListWeatherEntries(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.WeatherCacheEntry, len(rows))
	for i, row := range rows {
		entries[i] = mapWeatherEntry(row)
	}
	return entries, nil
}

func (r *weatherCacheRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.q.DeleteWeatherEntriesBefore(ctx, cutoff.UTC())
}
