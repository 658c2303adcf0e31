package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/harvestnet/platform/internal/platform/domain"
	"github.com/harvestnet/platform/internal/platform/store"
	"github.com/harvestnet/platform/pkg/cryptox"
	"github.com/harvestnet/platform/pkg/slogx"
)

type AuthService struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher
	Tokens *TokenService
	Now    func() time.Time
}

// Login checks email and password and returns a signed token plus the user.
// Unknown email, inactive account and wrong password all yield
// ErrInvalidCredentials so callers cannot tell them apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", domain.User{}, ErrInvalidRequest
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		l.Info("login failed", slog.String("reason", "unknown_email"))
		return "", domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", domain.User{}, fmt.Errorf("lookup user: %w", err)
	}

	if !u.IsActive {
		l.Info("login failed", slog.String("reason", "inactive"), slog.String("user_id", u.ID))
		return "", domain.User{}, ErrInvalidCredentials
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Info("login failed", slog.String("reason", "password_mismatch"), slog.String("user_id", u.ID))
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, fmt.Errorf("verify password for %s: %w", u.ID, err)
	}

	at := now(s.Now)
	if err := s.Store.Users().TouchLastLogin(ctx, u.ID, at); err != nil {
		return "", domain.User{}, fmt.Errorf("update last login: %w", err)
	}
	u.LastLogin = &at

	token, err := s.Tokens.Issue(u)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("sign token: %w", err)
	}

	l.Info("login succeeded", slog.String("user_id", u.ID), slog.String("role", string(u.Role)))
	return token, u, nil
}
