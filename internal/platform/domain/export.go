package domain

import "time"

// ExportUsers is the only export type.
const ExportUsers = "users"

// Export is a point-in-time dump of a table. Columns keeps the column order
// of Records so tabular renderings are stable.
type Export struct {
	Type       string
	Columns    []string
	Records    []map[string]any
	ExportedAt time.Time
}
