package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/harvestnet/platform/internal/platform/weather"
	"github.com/stretchr/testify/require"
)

const sampleForecast = `{"type":"Feature","properties":{"timeseries":[{"time":"2025-03-01T12:00:00Z","data":{"instant":{"details":{"air_temperature":24.1}}}}]}}`

func TestClientFetch(t *testing.T) {
	var gotUA, gotLat, gotLon string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotLat = r.URL.Query().Get("lat")
		gotLon = r.URL.Query().Get("lon")
		_, _ = w.Write([]byte(sampleForecast))
	}))
	defer srv.Close()

	c := weather.NewClient(srv.URL, "", 0)
	body, err := c.Fetch(context.Background(), -1.29214, 36.8219)
	require.NoError(t, err)
	require.JSONEq(t, sampleForecast, string(body))
	require.Equal(t, weather.DefaultUserAgent, gotUA)
	require.Equal(t, "-1.2921", gotLat)
	require.Equal(t, "36.8219", gotLon)
}

func TestClientFetchErrors(t *testing.T) {
	t.Run("non-200 is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "forbidden", http.StatusForbidden)
		}))
		defer srv.Close()

		_, err := weather.NewClient(srv.URL, "", 0).Fetch(context.Background(), 0, 0)
		require.ErrorIs(t, err, weather.ErrUnavailable)
	})

	t.Run("non-JSON body is a decode error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>maintenance</html>"))
		}))
		defer srv.Close()

		_, err := weather.NewClient(srv.URL, "", 0).Fetch(context.Background(), 0, 0)
		require.ErrorIs(t, err, weather.ErrDecode)
	})

	t.Run("timeout is a transport error", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		_, err := weather.NewClient(srv.URL, "", 50*time.Millisecond).Fetch(context.Background(), 0, 0)
		require.ErrorIs(t, err, weather.ErrTransport)
	})

	t.Run("unreachable host is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := weather.NewClient(url, "", time.Second).Fetch(context.Background(), 0, 0)
		require.ErrorIs(t, err, weather.ErrTransport)
	})
}

func TestQuantize(t *testing.T) {
	require.Equal(t, int64(-12921), weather.Quantize(-1.2921))
	require.Equal(t, weather.Quantize(-1.2921), weather.Quantize(-1.29210000001))
	require.Equal(t, int64(368219), weather.Quantize(36.8219))
	require.NotEqual(t, weather.Quantize(36.8219), weather.Quantize(36.8220))
}

func TestParseCoordinates(t *testing.T) {
	lat, lon, err := weather.ParseCoordinates("", "")
	require.NoError(t, err)
	require.Equal(t, weather.DefaultLatitude, lat)
	require.Equal(t, weather.DefaultLongitude, lon)

	lat, lon, err = weather.ParseCoordinates(" 0.5 ", "-120")
	require.NoError(t, err)
	require.Equal(t, 0.5, lat)
	require.Equal(t, -120.0, lon)

	for _, in := range [][2]string{{"abc", "1"}, {"91", "1"}, {"1", "-181"}, {"NaN", "1"}, {"1", "Inf"}} {
		_, _, err := weather.ParseCoordinates(in[0], in[1])
		require.ErrorIs(t, err, weather.ErrInvalidCoordinates, "input %v", in)
	}
}

func TestValidateForecast(t *testing.T) {
	require.NoError(t, weather.ValidateForecast([]byte(sampleForecast)))

	require.ErrorIs(t, weather.ValidateForecast([]byte(`not json`)), weather.ErrDecode)
	for _, bad := range []string{
		`{}`,
		`{"properties":{}}`,
		`{"properties":{"timeseries":[]}}`,
		`{"properties":{"timeseries":[{"time":"2025-03-01T12:00:00Z"}]}}`,
		`{"properties":{"timeseries":[{"data":{}}]}}`,
	} {
		require.ErrorIs(t, weather.ValidateForecast([]byte(bad)), weather.ErrInvalidForecast, bad)
	}
}
