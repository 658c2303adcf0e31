package platformsdk

import (
	"encoding/json"
	"time"
)

// ErrorResponse is the JSON body of every non-2xx response except health.
type ErrorResponse struct {
	// Error is a machine readable code (e.g. "invalid_request").
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error.
	ErrorDescription string `json:"error_description"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	// Status is "healthy" or "unhealthy".
	Status string `json:"status"`

	// Database is "connected" when the store answered a ping.
	Database string `json:"database,omitempty"`

	// Error carries the ping failure when unhealthy.
	Error string `json:"error,omitempty"`

	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserSummary is the user block embedded in a login response.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// UserInfo is one entry of the users listing.
type UserInfo struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	Location  *string    `json:"location"`
	Phone     *string    `json:"phone"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
	IsActive  bool       `json:"is_active"`
}

// ListUsersResponse is returned by GET /api/users.
type ListUsersResponse struct {
	Users []UserInfo `json:"users"`
}

// GrowthMetrics are display strings shown next to the dashboard counters.
type GrowthMetrics struct {
	UsersGrowth       string `json:"users_growth"`
	FarmersGrowth     string `json:"farmers_growth"`
	AmbassadorsGrowth string `json:"ambassadors_growth"`
}

// DashboardResponse is returned by GET /api/analytics/dashboard.
type DashboardResponse struct {
	TotalUsers      int64         `json:"total_users"`
	ActiveFarmers   int64         `json:"active_farmers"`
	DataAmbassadors int64         `json:"data_ambassadors"`
	GrowthMetrics   GrowthMetrics `json:"growth_metrics"`
}

// ExportResponse is returned by GET /api/data/export in JSON format.
type ExportResponse struct {
	Type       string           `json:"type"`
	Data       []map[string]any `json:"data"`
	ExportedAt time.Time        `json:"exported_at"`
}

// WeatherResponse is the upstream forecast document, passed through untouched.
type WeatherResponse = json.RawMessage
