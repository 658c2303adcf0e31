package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/harvestnet/platform/internal/platform/domain"
	"github.com/harvestnet/platform/internal/platform/store"
	"github.com/harvestnet/platform/pkg/cryptox"
	"github.com/harvestnet/platform/pkg/idx"
	"github.com/harvestnet/platform/pkg/slogx"
)

// DefaultSeedPassword is the seed accounts' password unless configured.
const DefaultSeedPassword = "password123"

type seedAccount struct {
	Email string
	Name  string
	Role  domain.Role
}

var seedAccounts = []seedAccount{
	{Email: domain.SeedAdminEmail, Name: "Admin User", Role: domain.RoleAdministrator},
	{Email: domain.SeedFarmerEmail, Name: "Farmer User", Role: domain.RoleFarmer},
}

// SeedService provisions the administrator and farmer accounts.
type SeedService struct {
	Store    store.Store
	Hasher   *cryptox.PasswordHasher
	Password string
	Now      func() time.Time
}

// EnsureSeedUsers creates missing seed accounts. Existing ones, including
// changed passwords, are left alone. Returns how many were created.
func (s *SeedService) EnsureSeedUsers(ctx context.Context) (int, error) {
	l := slogx.FromContext(ctx)

	password := s.Password
	if password == "" {
		password = DefaultSeedPassword
	}

	created := 0
	for _, acct := range seedAccounts {
		_, err := s.Store.Users().GetUserByEmail(ctx, acct.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return created, fmt.Errorf("lookup seed %s: %w", acct.Email, err)
		}

		hash, err := s.Hasher.Hash(password)
		if err != nil {
			return created, fmt.Errorf("hash seed password: %w", err)
		}

		at := now(s.Now)
		err = s.Store.Users().CreateUser(ctx, domain.User{
			ID:           idx.NewAt(at).String(),
			Email:        acct.Email,
			PasswordHash: hash,
			Name:         acct.Name,
			Role:         acct.Role,
			CreatedAt:    at,
			IsActive:     true,
		})
		if errors.Is(err, store.ErrAlreadyExists) {
			continue // another process won the race
		}
		if err != nil {
			return created, fmt.Errorf("create seed %s: %w", acct.Email, err)
		}

		l.Info("seed user created", slog.String("email", acct.Email), slog.String("role", string(acct.Role)))
		created++
	}
	return created, nil
}
