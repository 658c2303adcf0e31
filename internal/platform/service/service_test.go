package service

import (
	"context"
	"testing"
	"time"

	"github.com/harvestnet/platform/internal/platform/domain"
	"github.com/harvestnet/platform/internal/platform/store/drivers/sqlite"
	"github.com/harvestnet/platform/pkg/cryptox"
	"github.com/harvestnet/platform/pkg/idx"
	"github.com/stretchr/testify/require"
)

var testHasher = cryptox.NewPasswordHasher("test-pepper")

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// seededStore is a fresh store with the two seed accounts.
func seededStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st := newTestStore(t)
	seed := &SeedService{Store: st, Hasher: testHasher}
	n, err := seed.EnsureSeedUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)
	return st
}

type userOpt func(*domain.User)

func withPhone(p string) userOpt { return func(u *domain.User) { u.Phone = &p } }
func inactive() userOpt          { return func(u *domain.User) { u.IsActive = false } }

func addUser(t *testing.T, st *sqlite.Store, email, name string, role domain.Role, opts ...userOpt) domain.User {
	t.Helper()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Name:         name,
		Role:         role,
		CreatedAt:    time.Now(),
		IsActive:     true,
	}
	for _, o := range opts {
		o(&u)
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

// fakeClock is a settable clock for window tests.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
