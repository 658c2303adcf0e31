package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL   = "https://api.met.no/weatherapi/locationforecast/2.0/compact"
	DefaultUserAgent = "HarvestNet/1.0 (contact@harvestnet.com)"
	DefaultTimeout   = 10 * time.Second

	// maxPayloadBytes bounds what we read from the upstream.
	maxPayloadBytes = 8 << 20
)

var (
	// ErrUnavailable means the upstream answered with a non-200 status.
	ErrUnavailable = errors.New("weather: upstream unavailable")

	// ErrTransport means the request never got a response (DNS, timeout, reset).
	ErrTransport = errors.New("weather: transport failure")

	// ErrDecode means a 200 response whose body is not JSON.
	ErrDecode = errors.New("weather: invalid upstream payload")
)

// Fetcher fetches a forecast document for a coordinate pair.
type Fetcher interface {
	Fetch(ctx context.Context, lat, lon float64) ([]byte, error)
}

// Client calls the met.no locationforecast API.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// NewClient returns a client with the given base URL and timeout. Empty
// values fall back to the defaults.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		UserAgent:  userAgent,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Fetch performs one GET for (lat, lon) and returns the raw JSON body.
// Coordinates are sent with at most four decimals.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) ([]byte, error) {
	q := url.Values{}
	q.Set("lat", formatCoord(lat))
	q.Set("lon", formatCoord(lon))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxPayloadBytes))
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	if !json.Valid(body) {
		return nil, ErrDecode
	}
	return body, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(float64(Quantize(v))/quantScale, 'f', -1, 64)
}
