package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/harvestnet/platform/internal/platform/domain"
	"github.com/harvestnet/platform/internal/platform/store/drivers/sqlite"
	"github.com/harvestnet/platform/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestValidPhone(t *testing.T) {
	for _, ok := range []string{"+254712345678", "254112345678", "0712345678", "712345678", "+254 712 345 678", "(0712) 345-678"} {
		require.True(t, ValidPhone(ok), ok)
	}
	for _, bad := range []string{"", "+254812345678", "071234567", "+15551234567", "phone"} {
		require.False(t, ValidPhone(bad), bad)
	}
}

func TestValidateUsers(t *testing.T) {
	st := seededStore(t)
	addUser(t, st, "not-an-email", "Bad Email", domain.RoleFarmer)
	addUser(t, st, "phone@harvestnet.com", "Bad Phone", domain.RoleBuyer, withPhone("12345"))
	addUser(t, st, "name@harvestnet.com", " J ", domain.RoleBuyer)
	addUser(t, st, "role@harvestnet.com", "Odd Role", domain.Role("superuser"))
	addUser(t, st, "many@x", "X", domain.Role(""))
	addUser(t, st, "good@harvestnet.com", "Good Buyer", domain.RoleBuyer, withPhone("+254712345678"))

	svc := &ValidationService{Store: st}
	res, err := svc.ValidateUsers(context.Background())
	require.NoError(t, err)

	require.Equal(t, 8, res.TotalUsers)
	require.Equal(t, 3, res.ValidUsers) // two seeds plus good@
	require.Equal(t, 2, res.Count(domain.IssueInvalidEmail))
	require.Equal(t, 1, res.Count(domain.IssueInvalidPhone))
	require.Equal(t, 2, res.Count(domain.IssueInvalidName))
	require.Equal(t, 2, res.Count(domain.IssueInvalidRole))
}

func TestNewValidatorRegistersCustomTags(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Var("farmer@harvestnet.com", "harvest_email"))
	require.Error(t, v.Var("farmer@", "harvest_email"))
	require.NoError(t, v.Var("0712345678", "kenyan_phone"))
	require.Error(t, v.Var("12345", "kenyan_phone"))
}

func TestValidateUsers_SharedService(t *testing.T) {
	st := seededStore(t)
	svc := &ValidationService{Store: st}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ValidateUsers(context.Background())
			require.NoError(t, err)
		}()
	}
	wg.Wait()
	require.Nil(t, svc.Validate, "the shared validator is not stored on the service")
}

func TestCleanup(t *testing.T) {
	st := seededStore(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	addUser(t, st, "t@harvestnet.com", "test user", domain.RoleFarmer)
	addUser(t, st, "d@harvestnet.com", "a dummy", domain.RoleDataAmbassador)
	addUser(t, st, "s@harvestnet.com", "Sample Farms", domain.RoleFarmer) // case-sensitive, kept
	addUser(t, st, "r@harvestnet.com", "Real Buyer", domain.RoleBuyer)

	addCache(t, st, now.Add(-2*time.Hour), `{"properties":{"timeseries":[{"time":"t","data":{}}]}}`)
	addCache(t, st, now.Add(-10*time.Minute), `{"broken":true}`)

	svc := &ValidationService{Store: st, Now: func() time.Time { return now }}
	res, err := svc.Cleanup(ctx)
	require.NoError(t, err)

	require.EqualValues(t, 2, res.DeletedUsers)
	require.EqualValues(t, 1, res.DeletedCacheEntries)
	require.Equal(t, 1, res.InvalidForecasts)
	require.Equal(t, domain.UserCounts{TotalUsers: 4, ActiveFarmers: 2, DataAmbassadors: 0}, res.Metrics)

	m, err := st.Analytics().GetMetric(ctx, domain.MetricTotalUsers)
	require.NoError(t, err)
	require.EqualValues(t, 4, m.Value)

	entries, err := st.WeatherCache().ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestCleanup_DryRunChangesNothing(t *testing.T) {
	st := seededStore(t)
	ctx := context.Background()
	addUser(t, st, "t@harvestnet.com", "test user", domain.RoleFarmer)

	svc := &ValidationService{Store: st, DryRun: true}
	res, err := svc.Cleanup(ctx)
	require.NoError(t, err)
	require.True(t, res.DryRun)
	require.EqualValues(t, 1, res.DeletedUsers)

	n, err := st.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	m, err := st.Analytics().GetMetric(ctx, domain.MetricTotalUsers)
	require.NoError(t, err)
	require.EqualValues(t, 1247, m.Value)
}

func TestReport(t *testing.T) {
	st := seededStore(t)
	addUser(t, st, "bad-email", "dummy account", domain.RoleFarmer)

	svc := &ValidationService{Store: st}
	now := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	report, err := svc.Report(context.Background(), now)
	require.NoError(t, err)

	require.Contains(t, report, "# HarvestNet Data Validation Report")
	require.Contains(t, report, "Generated: 2025-03-01 12:30:00 UTC")
	require.Contains(t, report, "- Total Users: 3")
	require.Contains(t, report, "- Valid Users: 2")
	require.Contains(t, report, "- Validation Success Rate: 66.7%")
	require.Contains(t, report, "- Invalid Emails: 1")
	require.Contains(t, report, "- Dummy Users Removed: 1")
	require.Contains(t, report, "total_users=2")
	require.NotContains(t, report, "dry run")
}

func addCache(t *testing.T, st *sqlite.Store, at time.Time, payload string) {
	t.Helper()
	require.NoError(t, st.WeatherCache().CreateEntry(context.Background(), domain.WeatherCacheEntry{
		ID:        idx.NewAt(at).String(),
		Latitude:  -1.2921,
		Longitude: 36.8219,
		LatKey:    -12921,
		LonKey:    368219,
		Payload:   []byte(payload),
		CachedAt:  at,
	}))
}
