package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/harvestnet/platform/internal/platform/domain"
	"github.com/harvestnet/platform/internal/platform/store"
	"github.com/harvestnet/platform/internal/platform/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q  *gen.Queries
	db gen.DBTX // raw access for the column-agnostic export
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Role:         string(u.Role),
		Location:     mapOptionalString(u.Location),
		Phone:        mapOptionalString(u.Phone),
		CreatedAt:    createdAt.UTC(),
		IsActive:     u.IsActive,
	})
	return mapConstraint(err)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = mapUser(row)
	}
	return users, nil
}

const exportUsersQuery = `SELECT * FROM users ORDER BY created_at DESC, id DESC`

func (r *usersRepo) ExportUsers(ctx context.Context) ([]string, []map[string]any, error) {
	rows, err := r.db.QueryContext(ctx, exportUsersQuery)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	records := []map[string]any{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		rec := make(map[string]any, len(cols))
		for i, c := range cols {
			rec[c] = exportValue(c, vals[i])
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return cols, records, nil
}

// exportValue turns driver values into JSON-friendly ones.
func exportValue(col string, v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case time.Time:
		return x.UTC()
	case int64:
		if col == "is_active" {
			return x != 0
		}
	}
	return v
}

func (r *usersRepo) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	n, err := r.q.UpdateUserLastLogin(ctx, gen.UpdateUserLastLoginParams{
		LastLogin: sql.NullTime{Time: at.UTC(), Valid: true},
		ID:        userID,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) CountActive(ctx context.Context) (domain.UserCounts, error) {
	row, err := r.q.CountActiveUsers(ctx)
	if err != nil {
		return domain.UserCounts{}, err
	}
	return domain.UserCounts{
		TotalUsers:      row.TotalUsers,
		ActiveFarmers:   row.ActiveFarmers,
		DataAmbassadors: row.DataAmbassadors,
	}, nil
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.q.CountUsers(ctx)
}

func (r *usersRepo) DeletePlaceholderUsers(ctx context.Context, markers []string) (int64, error) {
	rows, err := r.q.ListUsers(ctx)
	if err != nil {
		return 0, err
	}

	var deleted int64
	for _, u := range rows {
		if domain.IsSeedEmail(u.Email) || !containsAny(u.Name, markers) {
			continue
		}
		n, err := r.q.DeleteUser(ctx, u.ID)
		if err != nil {
			return deleted, fmt.Errorf("delete user %s: %w", u.ID, err)
		}
		deleted += n
	}
	return deleted, nil
}

// containsAny is a case-sensitive substring match, so "Testy" is kept.
func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.Contains(s, m) {
			return true
		}
	}
	return false
}
