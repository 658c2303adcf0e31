package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/harvestnet/platform/internal/platform/domain"
	"github.com/harvestnet/platform/internal/platform/store"
	"github.com/harvestnet/platform/internal/platform/store/drivers/sqlite"
	"github.com/harvestnet/platform/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func ptr[T any](v T) *T { return &v }

func createUser(t *testing.T, st store.Store, email, name string, role domain.Role, active bool, createdAt time.Time) domain.User {
	t.Helper()
	u := domain.User{
		ID:           idx.NewAt(createdAt).String(),
		Email:        email,
		PasswordHash: "hash",
		Name:         name,
		Role:         role,
		CreatedAt:    createdAt,
		IsActive:     active,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func TestMigrationsAreIdempotentAndSeedMetrics(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())

	metrics, err := st.Analytics().ListMetrics(context.Background())
	require.NoError(t, err)
	got := map[string]int64{}
	for _, m := range metrics {
		got[m.Name] = m.Value
	}
	require.Equal(t, map[string]int64{
		domain.MetricActiveFarmers:   892,
		domain.MetricDataAmbassadors: 45,
		domain.MetricTotalUsers:      1247,
	}, got)
}

func TestUsersRepo(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	older := createUser(t, st, "old@harvestnet.com", "Old Farmer", domain.RoleFarmer, true, base)
	newer := createUser(t, st, "new@harvestnet.com", "New Buyer", domain.RoleBuyer, true, base.Add(time.Hour))

	t.Run("duplicate email", func(t *testing.T) {
		dup := older
		dup.ID = idx.New().String()
		require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("lookup", func(t *testing.T) {
		u, err := st.Users().GetUserByEmail(ctx, "old@harvestnet.com")
		require.NoError(t, err)
		require.Equal(t, older.ID, u.ID)
		require.Equal(t, domain.RoleFarmer, u.Role)
		require.True(t, u.IsActive)
		require.Nil(t, u.LastLogin)
		require.True(t, base.Equal(u.CreatedAt))

		_, err = st.Users().GetUserByEmail(ctx, "nobody@harvestnet.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		users, err := st.Users().ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.Equal(t, newer.ID, users[0].ID)
		require.Equal(t, older.ID, users[1].ID)
	})

	t.Run("touch last login", func(t *testing.T) {
		at := base.Add(2 * time.Hour)
		require.NoError(t, st.Users().TouchLastLogin(ctx, older.ID, at))

		u, err := st.Users().GetUserByID(ctx, older.ID)
		require.NoError(t, err)
		require.NotNil(t, u.LastLogin)
		require.True(t, at.Equal(*u.LastLogin))

		require.ErrorIs(t, st.Users().TouchLastLogin(ctx, "missing", at), store.ErrNotFound)
	})
}

func TestUsersRepo_OptionalFields(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u := domain.User{
		ID:           idx.New().String(),
		Email:        "amina@harvestnet.com",
		PasswordHash: "hash",
		Name:         "Amina",
		Role:         domain.RoleDataAmbassador,
		Location:     ptr("Nakuru"),
		Phone:        ptr("+254712345678"),
		IsActive:     true,
	}
	require.NoError(t, st.Users().CreateUser(ctx, u))

	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Nakuru", *got.Location)
	require.Equal(t, "+254712345678", *got.Phone)
}

func TestUsersRepo_CountActive(t *testing.T) {
	st := newTestStore(t)
	now := time.Now()

	createUser(t, st, "f1@x.io", "Farmer One", domain.RoleFarmer, true, now)
	createUser(t, st, "f2@x.io", "Farmer Two", domain.RoleFarmer, false, now)
	createUser(t, st, "a1@x.io", "Amb One", domain.RoleDataAmbassador, true, now)
	createUser(t, st, "b1@x.io", "Buyer One", domain.RoleBuyer, true, now)
	createUser(t, st, "x1@x.io", "Odd Role", domain.Role("superuser"), true, now)

	counts, err := st.Users().CountActive(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.UserCounts{TotalUsers: 4, ActiveFarmers: 1, DataAmbassadors: 1}, counts)

	all, err := st.Users().CountUsers(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 5, all)
}

func TestUsersRepo_ExportUsers(t *testing.T) {
	st := newTestStore(t)
	createUser(t, st, "f1@x.io", "Farmer One", domain.RoleFarmer, true, time.Now())
	createUser(t, st, "f2@x.io", "Farmer Two", domain.RoleFarmer, false, time.Now())

	cols, records, err := st.Users().ExportUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{
		"id", "email", "password_hash", "name", "role",
		"location", "phone", "created_at", "last_login", "is_active",
	}, cols)
	require.Len(t, records, 2)

	for _, rec := range records {
		require.Equal(t, "hash", rec["password_hash"])
		require.Nil(t, rec["location"])
		require.IsType(t, true, rec["is_active"])
	}
}

func TestUsersRepo_DeletePlaceholderUsers(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	createUser(t, st, domain.SeedAdminEmail, "Admin test User", domain.RoleAdministrator, true, now)
	createUser(t, st, "t@x.io", "my test account", domain.RoleFarmer, true, now)
	createUser(t, st, "d@x.io", "dummy", domain.RoleFarmer, true, now)
	createUser(t, st, "s@x.io", "Sample Farm", domain.RoleFarmer, true, now) // capitalised, kept
	createUser(t, st, "r@x.io", "Real Farmer", domain.RoleFarmer, true, now)

	n, err := st.Users().DeletePlaceholderUsers(ctx, []string{"test", "dummy", "sample"})
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	users, err := st.Users().ListUsers(ctx)
	require.NoError(t, err)
	var emails []string
	for _, u := range users {
		emails = append(emails, u.Email)
	}
	require.ElementsMatch(t, []string{domain.SeedAdminEmail, "s@x.io", "r@x.io"}, emails)
}

func TestWeatherCacheRepo(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	add := func(at time.Time, payload string) domain.WeatherCacheEntry {
		e := domain.WeatherCacheEntry{
			ID:        idx.NewAt(at).String(),
			Latitude:  -1.2921,
			Longitude: 36.8219,
			LatKey:    -12921,
			LonKey:    368219,
			Payload:   []byte(payload),
			CachedAt:  at,
		}
		require.NoError(t, st.WeatherCache().CreateEntry(ctx, e))
		return e
	}

	add(now.Add(-3*time.Hour), `{"v":1}`)
	add(now.Add(-30*time.Minute), `{"v":2}`)
	add(now.Add(-10*time.Minute), `{"v":3}`)

	got, err := st.WeatherCache().GetFreshEntry(ctx, -12921, 368219, now.Add(-time.Hour))
	require.NoError(t, err)
	require.JSONEq(t, `{"v":3}`, string(got.Payload))

	_, err = st.WeatherCache().GetFreshEntry(ctx, -12921, 368220, now.Add(-time.Hour))
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.WeatherCache().GetFreshEntry(ctx, -12921, 368219, now)
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err := st.WeatherCache().DeleteOlderThan(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	entries, err := st.WeatherCache().ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestAnalyticsRepo_Upsert(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, st.Analytics().UpsertMetric(ctx, domain.AnalyticsMetric{
		Name: domain.MetricTotalUsers, Value: 7, RecordedAt: at,
	}))

	m, err := st.Analytics().GetMetric(ctx, domain.MetricTotalUsers)
	require.NoError(t, err)
	require.EqualValues(t, 7, m.Value)
	require.True(t, at.Equal(m.RecordedAt))

	_, err = st.Analytics().GetMetric(ctx, "nope")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBack(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	err := st.WithTx(ctx, func(tx store.Tx) error {
		createUser(t, tx, "tx@x.io", "Tx User", domain.RoleFarmer, true, time.Now())
		return store.ErrNotFound
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Users().GetUserByEmail(ctx, "tx@x.io")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.WithTx(ctx, func(tx store.Tx) error {
		createUser(t, tx, "tx@x.io", "Tx User", domain.RoleFarmer, true, time.Now())
		return nil
	}))
	_, err = st.Users().GetUserByEmail(ctx, "tx@x.io")
	require.NoError(t, err)
}
