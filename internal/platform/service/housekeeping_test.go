package service

import (
	"context"
	"testing"
	"time"

	"github.com/harvestnet/platform/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingPruneOnce(t *testing.T) {
	st := newTestStore(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	addCache(t, st, now.Add(-3*time.Hour), `{}`)
	addCache(t, st, now.Add(-90*time.Minute), `{}`)
	addCache(t, st, now.Add(-5*time.Minute), `{}`)

	hk := NewHousekeepingService(st, slogx.Discard(), time.Hour, 0)
	hk.Now = func() time.Time { return now }

	require.EqualValues(t, 2, hk.PruneOnce(context.Background()))
	require.EqualValues(t, 0, hk.PruneOnce(context.Background()))
}

func TestHousekeepingStartStop(t *testing.T) {
	st := newTestStore(t)
	addCache(t, st, time.Now().Add(-2*time.Hour), `{}`)

	hk := NewHousekeepingService(st, slogx.Discard(), time.Hour, time.Hour)
	hk.Start()

	require.Eventually(t, func() bool {
		entries, err := st.WeatherCache().ListEntries(context.Background())
		return err == nil && len(entries) == 0
	}, time.Second, 10*time.Millisecond)

	hk.Stop()
}

func TestNewHousekeepingServiceDefaults(t *testing.T) {
	st := newTestStore(t)

	hk := NewHousekeepingService(st, slogx.Discard(), 0, -time.Minute)
	require.Equal(t, DefaultHousekeepingInterval, hk.Interval)
	require.Equal(t, DefaultCacheWindow, hk.MaxAge)

	hk.Start()
	hk.Stop()
}
