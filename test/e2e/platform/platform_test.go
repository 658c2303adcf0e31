package platform_test

import (
	"net/http"
	"testing"

	"github.com/harvestnet/platform/pkg/platformsdk"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	s := setupContainer(t, false)

	health, err := platformsdk.NewClient(s.baseURL).Health(t.Context())
	require.NoError(t, err)
	require.Equal(t, "healthy", health.Status)
	require.Equal(t, "connected", health.Database)
}

func TestSeedAdminLogin(t *testing.T) {
	s := setupContainer(t, false)
	client := platformsdk.NewClient(s.baseURL)

	resp, err := client.Login(t.Context(), adminEmail, seedPassword)
	require.NoError(t, err)
	require.Equal(t, "administrator", resp.User.Role)

	users, err := client.ListUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, users.Users, 2)
}

func TestLoginFailures(t *testing.T) {
	s := setupContainer(t, false)
	client := platformsdk.NewClient(s.baseURL)

	_, err := client.Login(t.Context(), adminEmail, "wrong")
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = client.Login(t.Context(), adminEmail, "")
	requireStatus(t, err, http.StatusBadRequest)
}

func TestProtectedEndpointsNeedToken(t *testing.T) {
	s := setupContainer(t, false)
	client := platformsdk.NewClient(s.baseURL)

	_, err := client.ListUsers(t.Context())
	requireStatus(t, err, http.StatusUnauthorized)

	client.Token = "not-a-token"
	_, err = client.Dashboard(t.Context())
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestDashboardAndExport(t *testing.T) {
	s := setupContainer(t, false)
	client := loggedIn(t, s, farmerEmail)

	dash, err := client.Dashboard(t.Context())
	require.NoError(t, err)
	require.EqualValues(t, 2, dash.TotalUsers)
	require.EqualValues(t, 1, dash.ActiveFarmers)

	exp, err := client.Export(t.Context(), "users")
	require.NoError(t, err)
	require.Len(t, exp.Data, int(dash.TotalUsers))

	xlsx, err := client.ExportXLSX(t.Context(), "users")
	require.NoError(t, err)
	require.Equal(t, "PK", string(xlsx[:2]), "xlsx is a zip container")

	_, err = client.Export(t.Context(), "orders")
	apiErr := requireStatus(t, err, http.StatusBadRequest)
	require.Equal(t, "unsupported export type", apiErr.Description)
}

func TestWeatherIsCached(t *testing.T) {
	s := setupContainer(t, false)
	client := loggedIn(t, s, adminEmail)

	for range 2 {
		doc, err := client.Weather(t.Context(), -1.2921, 36.8219)
		require.NoError(t, err)
		require.JSONEq(t, forecastDoc, string(doc))
	}
	require.EqualValues(t, 1, s.upstream.calls.Load())
}

func TestLoginRateLimited(t *testing.T) {
	s := setupContainer(t, true)
	client := platformsdk.NewClient(s.baseURL)

	// Strict profile: 5 per minute per IP.
	for range 5 {
		_, err := client.Login(t.Context(), adminEmail, "wrong")
		requireStatus(t, err, http.StatusUnauthorized)
	}
	_, err := client.Login(t.Context(), adminEmail, seedPassword)
	apiErr := requireStatus(t, err, http.StatusTooManyRequests)
	require.Equal(t, platformsdk.ErrorCodeRateLimitExceeded, apiErr.Code)
}
