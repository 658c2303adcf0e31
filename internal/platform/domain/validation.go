package domain

// Issue categories reported by the user validator.
const (
	IssueInvalidEmail = "invalid_email"
	IssueInvalidPhone = "invalid_phone"
	IssueInvalidName  = "invalid_name"
	IssueInvalidRole  = "invalid_role"
)

// UserIssue is one problem found on one user.
type UserIssue struct {
	UserID string
	Email  string
	Kind   string
	Value  string
}

type UserValidation struct {
	TotalUsers int
	ValidUsers int
	Issues     []UserIssue
}

// Count returns how many issues of kind were found.
func (v UserValidation) Count(kind string) int {
	n := 0
	for _, is := range v.Issues {
		if is.Kind == kind {
			n++
		}
	}
	return n
}

// SuccessRate is the share of fully valid users in percent. Zero users
// count as 0%.
func (v UserValidation) SuccessRate() float64 {
	if v.TotalUsers == 0 {
		return 0
	}
	return float64(v.ValidUsers) / float64(v.TotalUsers) * 100
}

type CleanupResult struct {
	DeletedUsers        int64
	DeletedCacheEntries int64
	InvalidForecasts    int
	Metrics             UserCounts
	DryRun              bool
}
