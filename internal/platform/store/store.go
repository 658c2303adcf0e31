package store

import (
	"context"
	"errors"
	"time"

	"github.com/harvestnet/platform/internal/platform/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Drivers implement it and expose
// sub-repositories, which keeps nested transactions out of reach.
type Store interface {
	Users() Users
	WeatherCache() WeatherCache
	Analytics() Analytics

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// CreateUser inserts a user. A duplicate email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns all users, newest first.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// ExportUsers returns every users row as column -> value, plus the
	// column order.
	ExportUsers(ctx context.Context) ([]string, []map[string]any, error)

	// TouchLastLogin sets last_login to at.
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error

	// CountActive returns live counts over active users by role.
	CountActive(ctx context.Context) (domain.UserCounts, error)

	// CountUsers counts every row, active or not.
	CountUsers(ctx context.Context) (int64, error)

	// DeletePlaceholderUsers removes non-seed users whose name contains any
	// of markers (case-sensitive) and returns how many were removed.
	DeletePlaceholderUsers(ctx context.Context, markers []string) (int64, error)
}

type WeatherCache interface {
	// GetFreshEntry returns the newest entry for the key cached after since.
	GetFreshEntry(ctx context.Context, latKey, lonKey int64, since time.Time) (domain.WeatherCacheEntry, error)

	// CreateEntry appends a cache row. Rows are never updated in place.
	CreateEntry(ctx context.Context, e domain.WeatherCacheEntry) error

	// ListEntries returns every cached row, newest first.
	ListEntries(ctx context.Context) ([]domain.WeatherCacheEntry, error)

	// DeleteOlderThan prunes rows cached before cutoff.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type Analytics interface {
	GetMetric(ctx context.Context, name string) (domain.AnalyticsMetric, error)

	ListMetrics(ctx context.Context) ([]domain.AnalyticsMetric, error)

	// UpsertMetric overwrites the value and bumps recorded_at.
	UpsertMetric(ctx context.Context, m domain.AnalyticsMetric) error
}
