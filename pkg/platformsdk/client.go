package platformsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the HarvestNet API. The zero Token means unauthenticated;
// Login fills it in.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

// NewClient creates a client for baseURL (e.g. "http://localhost:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Health calls GET /api/health. The response is returned even when the
// service reports itself unhealthy, alongside an *APIError.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/health", nil, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &health, &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: health.Error,
		}
	}
	return &health, nil
}

// Login exchanges credentials for a bearer token and stores it on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body, err := json.Marshal(LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/auth/login", bytes.NewReader(body), false)
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	c.Token = out.Token
	return &out, nil
}

// ListUsers calls GET /api/users.
func (c *Client) ListUsers(ctx context.Context) (*ListUsersResponse, error) {
	var out ListUsersResponse
	if err := c.getJSON(ctx, "/api/users", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dashboard calls GET /api/analytics/dashboard.
func (c *Client) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	var out DashboardResponse
	if err := c.getJSON(ctx, "/api/analytics/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Weather calls GET /api/weather for the given coordinates.
func (c *Client) Weather(ctx context.Context, lat, lon float64) (WeatherResponse, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	var out WeatherResponse
	if err := c.getJSON(ctx, "/api/weather?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Export calls GET /api/data/export in JSON format.
func (c *Client) Export(ctx context.Context, exportType string) (*ExportResponse, error) {
	q := url.Values{}
	q.Set("type", exportType)

	var out ExportResponse
	if err := c.getJSON(ctx, "/api/data/export?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportXLSX downloads the export as an Excel workbook.
func (c *Client) ExportXLSX(ctx context.Context, exportType string) ([]byte, error) {
	q := url.Values{}
	q.Set("type", exportType)
	q.Set("format", "xlsx")

	resp, err := c.do(ctx, http.MethodGet, "/api/data/export?"+q.Encode(), nil, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if err := parseErrorResponse(resp, body); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, auth bool) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth && c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// decodeJSON decodes a 200 response into target, or returns the typed error.
func decodeJSON(resp *http.Response, target any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return parseErrorResponse(resp, body)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
