package service

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/harvestnet/platform/internal/platform/domain"
)

var reportTemplate = template.Must(template.New("report").Parse(`# HarvestNet Data Validation Report
Generated: {{ .Generated.Format "2006-01-02 15:04:05" }} UTC

## User Data Validation
- Total Users: {{ .Validation.TotalUsers }}
- Valid Users: {{ .Validation.ValidUsers }}
- Validation Success Rate: {{ printf "%.1f" .Validation.SuccessRate }}%

### Issues Found:
- Invalid Emails: {{ .Validation.Count "invalid_email" }}
- Invalid Phone Numbers: {{ .Validation.Count "invalid_phone" }}
- Missing Names: {{ .Validation.Count "invalid_name" }}
- Invalid Roles: {{ .Validation.Count "invalid_role" }}
{{- range .Validation.Issues }}
  * {{ .Kind }}: {{ .Email }} ({{ .UserID }}) value={{ printf "%q" .Value }}
{{- end }}

## Data Cleanup Results{{ if .Cleanup.DryRun }} (dry run, nothing was changed){{ end }}
- Dummy Users Removed: {{ .Cleanup.DeletedUsers }}
- Analytics Updated: 3 metrics (total_users={{ .Cleanup.Metrics.TotalUsers }}, active_farmers={{ .Cleanup.Metrics.ActiveFarmers }}, data_ambassadors={{ .Cleanup.Metrics.DataAmbassadors }})
- Weather Cache Cleared: {{ .Cleanup.DeletedCacheEntries }} old entries
- Cached Forecasts Failing Validation: {{ .Cleanup.InvalidForecasts }}
`))

type reportData struct {
	Generated  time.Time
	Validation domain.UserValidation
	Cleanup    domain.CleanupResult
}

// Report validates users, runs the cleanup as of now and renders the
// plain-text report.
func (s *ValidationService) Report(ctx context.Context, now time.Time) (string, error) {
	validation, err := s.ValidateUsers(ctx)
	if err != nil {
		return "", err
	}
	cleanup, err := s.cleanupAt(ctx, now.UTC())
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, reportData{
		Generated:  now.UTC(),
		Validation: validation,
		Cleanup:    cleanup,
	}); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}
