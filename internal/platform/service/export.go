package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/harvestnet/platform/internal/platform/domain"
	"github.com/harvestnet/platform/internal/platform/store"
	"github.com/xuri/excelize/v2"
)

// Export formats.
const (
	ExportFormatJSON = "json"
	ExportFormatXLSX = "xlsx"
)

// XLSXContentType is the media type of WriteXLSX output.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportService struct {
	Store store.Store
	Now   func() time.Time
}

// Export dumps the table named by typ. An empty type means users. Records
// are full rows, password hashes included.
func (s *ExportService) Export(ctx context.Context, typ string) (domain.Export, error) {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		typ = domain.ExportUsers
	}
	if typ != domain.ExportUsers {
		return domain.Export{}, fmt.Errorf("%w: %q", ErrUnsupportedExport, typ)
	}

	cols, records, err := s.Store.Users().ExportUsers(ctx)
	if err != nil {
		return domain.Export{}, fmt.Errorf("export users: %w", err)
	}
	return domain.Export{
		Type:       typ,
		Columns:    cols,
		Records:    records,
		ExportedAt: now(s.Now),
	}, nil
}

// ParseExportFormat normalises the format query value. Empty means JSON.
func ParseExportFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "", ExportFormatJSON:
		return ExportFormatJSON, nil
	case ExportFormatXLSX:
		return ExportFormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteXLSX renders exp as a workbook with one sheet named after the export
// type: a header row of column names, then one row per record.
func WriteXLSX(w io.Writer, exp domain.Export) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := exp.Type
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}

	header := make([]any, len(exp.Columns))
	for i, c := range exp.Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for r, rec := range exp.Records {
		row := make([]any, len(exp.Columns))
		for i, c := range exp.Columns {
			row[i] = xlsxValue(rec[c])
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d: %w", r+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}
	_, err = f.WriteTo(w)
	return err
}

// xlsxValue keeps timestamps readable without a custom number format.
func xlsxValue(v any) any {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	default:
		return v
	}
}
