package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/harvestnet/platform/internal/platform/domain"
	"github.com/harvestnet/platform/internal/platform/store"
	"github.com/harvestnet/platform/internal/platform/weather"
	"github.com/harvestnet/platform/pkg/idx"
	"github.com/harvestnet/platform/pkg/slogx"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheWindow is how long a cached forecast is served.
const DefaultCacheWindow = time.Hour

// WeatherService serves forecasts from the cache table, fetching from the
// upstream on a miss.
type WeatherService struct {
	Store   store.Store
	Fetcher weather.Fetcher
	Window  time.Duration
	Now     func() time.Time

	group singleflight.Group
}

// GetWeather returns the forecast for (lat, lon). A fresh cache row is
// returned verbatim; otherwise one upstream call is made and its payload
// appended to the cache. Concurrent misses for the same key share a fetch.
func (s *WeatherService) GetWeather(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	latKey, lonKey := weather.Quantize(lat), weather.Quantize(lon)

	if payload, ok, err := s.lookup(ctx, latKey, lonKey); err != nil || ok {
		return payload, err
	}

	key := fmt.Sprintf("%d:%d", latKey, lonKey)
	v, err, shared := s.group.Do(key, func() (any, error) {
		// The fetch outlives a single caller hanging up; the client timeout bounds it.
		fctx := context.WithoutCancel(ctx)

		if payload, ok, err := s.lookup(fctx, latKey, lonKey); err != nil || ok {
			return payload, err
		}
		return s.fetchAndStore(fctx, lat, lon, latKey, lonKey)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		slogx.FromContext(ctx).Debug("weather fetch shared", slog.String("key", key))
	}
	return v.(json.RawMessage), nil
}

func (s *WeatherService) lookup(ctx context.Context, latKey, lonKey int64) (json.RawMessage, bool, error) {
	since := now(s.Now).Add(-s.window())
	entry, err := s.Store.WeatherCache().GetFreshEntry(ctx, latKey, lonKey, since)
	if errors.Is(err, store.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("weather cache lookup: %w", err)
	}
	return json.RawMessage(entry.Payload), true, nil
}

func (s *WeatherService) fetchAndStore(ctx context.Context, lat, lon float64, latKey, lonKey int64) (json.RawMessage, error) {
	l := slogx.FromContext(ctx)

	start := time.Now()
	payload, err := s.Fetcher.Fetch(ctx, lat, lon)
	if err != nil {
		l.Warn("weather upstream failed", slog.Any("error", err), slog.Duration("took", time.Since(start)))
		return nil, err
	}

	at := now(s.Now)
	entry := domain.WeatherCacheEntry{
		ID:        idx.NewAt(at).String(),
		Latitude:  lat,
		Longitude: lon,
		LatKey:    latKey,
		LonKey:    lonKey,
		Payload:   payload,
		CachedAt:  at,
	}
	if err := s.Store.WeatherCache().CreateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("weather cache insert: %w", err)
	}

	l.Info("weather cached",
		slog.Float64("lat", lat),
		slog.Float64("lon", lon),
		slog.Int("bytes", len(payload)),
		slog.Duration("took", time.Since(start)),
	)
	return json.RawMessage(payload), nil
}

func (s *WeatherService) window() time.Duration {
	if s.Window <= 0 {
		return DefaultCacheWindow
	}
	return s.Window
}
