package domain_test

import (
	"testing"

	"github.com/harvestnet/platform/internal/platform/domain"
	"github.com/stretchr/testify/require"
)

func TestRoleValid(t *testing.T) {
	for _, r := range domain.Roles {
		require.True(t, r.Valid(), r)
	}
	for _, r := range []domain.Role{"", "Administrator", "admin", "superuser"} {
		require.False(t, r.Valid(), r)
	}
}

func TestUserValidationRates(t *testing.T) {
	require.Zero(t, domain.UserValidation{}.SuccessRate())

	v := domain.UserValidation{
		TotalUsers: 4,
		ValidUsers: 3,
		Issues: []domain.UserIssue{
			{Kind: domain.IssueInvalidEmail},
			{Kind: domain.IssueInvalidPhone},
			{Kind: domain.IssueInvalidEmail},
		},
	}
	require.InDelta(t, 75.0, v.SuccessRate(), 0.001)
	require.Equal(t, 2, v.Count(domain.IssueInvalidEmail))
	require.Equal(t, 0, v.Count(domain.IssueInvalidRole))
}
