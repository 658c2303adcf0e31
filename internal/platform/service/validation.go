package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/harvestnet/platform/internal/platform/domain"
	"github.com/harvestnet/platform/internal/platform/store"
	"github.com/harvestnet/platform/internal/platform/weather"
	"github.com/harvestnet/platform/pkg/slogx"
)

var (
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneStrip     = regexp.MustCompile(`[^\d+]`)
	kenyanPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\+254[17]\d{8}$`),
		regexp.MustCompile(`^254[17]\d{8}$`),
		regexp.MustCompile(`^0[17]\d{8}$`),
		regexp.MustCompile(`^[17]\d{8}$`),
	}
)

// PlaceholderMarkers are the case-sensitive name fragments that mark a
// non-seed user as throwaway data.
var PlaceholderMarkers = []string{"test", "dummy", "sample"}

// NewValidator returns a validator with the platform's custom tags:
// harvest_email and kenyan_phone. It panics if a tag fails to register.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "harvest_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "kenyan_phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// sharedValidator backs services built without their own validator.
var sharedValidator = sync.OnceValue(NewValidator)

// ValidPhone strips everything but digits and '+' and matches the Kenyan
// mobile formats.
func ValidPhone(phone string) bool {
	clean := phoneStrip.ReplaceAllString(phone, "")
	for _, p := range kenyanPatterns {
		if p.MatchString(clean) {
			return true
		}
	}
	return false
}

var roleTag = "oneof=" + strings.Join(roleNames(), " ")

func roleNames() []string {
	out := make([]string, len(domain.Roles))
	for i, r := range domain.Roles {
		out[i] = string(r)
	}
	return out
}

// ValidationService is the offline data-quality job: it checks user rows,
// removes placeholder data, refreshes the stored metrics and prunes the
// weather cache.
type ValidationService struct {
	Store    store.Store
	Validate *validator.Validate

	// CacheMaxAge is how old a weather row may get before cleanup drops it.
	CacheMaxAge time.Duration

	// DryRun rolls the cleanup transaction back after counting.
	DryRun bool

	Now func() time.Time
}

func (s *ValidationService) validate() *validator.Validate {
	if s.Validate != nil {
		return s.Validate
	}
	return sharedValidator()
}

// ValidateUsers checks every user's email, phone, name and role.
func (s *ValidationService) ValidateUsers(ctx context.Context) (domain.UserValidation, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return domain.UserValidation{}, fmt.Errorf("list users: %w", err)
	}

	v := s.validate()
	res := domain.UserValidation{TotalUsers: len(users)}
	for _, u := range users {
		issues := checkUser(v, u)
		if len(issues) == 0 {
			res.ValidUsers++
		}
		res.Issues = append(res.Issues, issues...)
	}
	return res, nil
}

func checkUser(v *validator.Validate, u domain.User) []domain.UserIssue {
	var issues []domain.UserIssue
	flag := func(kind, value string) {
		issues = append(issues, domain.UserIssue{UserID: u.ID, Email: u.Email, Kind: kind, Value: value})
	}

	if v.Var(u.Email, "required,harvest_email") != nil {
		flag(domain.IssueInvalidEmail, u.Email)
	}
	if u.Phone != nil && *u.Phone != "" && v.Var(*u.Phone, "kenyan_phone") != nil {
		flag(domain.IssueInvalidPhone, *u.Phone)
	}
	if v.Var(strings.TrimSpace(u.Name), "required,min=2") != nil {
		flag(domain.IssueInvalidName, u.Name)
	}
	if v.Var(string(u.Role), roleTag) != nil {
		flag(domain.IssueInvalidRole, string(u.Role))
	}
	return issues
}

// Cleanup removes placeholder users, recomputes the metrics and prunes old
// weather rows in one transaction.
func (s *ValidationService) Cleanup(ctx context.Context) (domain.CleanupResult, error) {
	return s.cleanupAt(ctx, now(s.Now))
}

var errDryRun = errors.New("dry run")

func (s *ValidationService) cleanupAt(ctx context.Context, at time.Time) (domain.CleanupResult, error) {
	l := slogx.FromContext(ctx)
	res := domain.CleanupResult{DryRun: s.DryRun}

	maxAge := s.CacheMaxAge
	if maxAge <= 0 {
		maxAge = DefaultCacheWindow
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if res.DeletedUsers, err = tx.Users().DeletePlaceholderUsers(ctx, PlaceholderMarkers); err != nil {
			return fmt.Errorf("delete placeholder users: %w", err)
		}
		if res.Metrics, err = recalculateMetrics(ctx, tx, at); err != nil {
			return err
		}

		entries, err := tx.WeatherCache().ListEntries(ctx)
		if err != nil {
			return fmt.Errorf("list weather cache: %w", err)
		}
		for _, e := range entries {
			if weather.ValidateForecast(e.Payload) != nil {
				res.InvalidForecasts++
			}
		}

		if res.DeletedCacheEntries, err = tx.WeatherCache().DeleteOlderThan(ctx, at.Add(-maxAge)); err != nil {
			return fmt.Errorf("prune weather cache: %w", err)
		}

		if s.DryRun {
			return errDryRun
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		return domain.CleanupResult{}, err
	}

	l.Info("data cleanup completed",
		"deleted_users", res.DeletedUsers,
		"deleted_cache_entries", res.DeletedCacheEntries,
		"invalid_forecasts", res.InvalidForecasts,
		"dry_run", res.DryRun,
	)
	return res, nil
}
