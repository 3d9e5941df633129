package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/balkashynov/crewlog/internal/exporter"
)

// CSV headers are a fixed contract with the payroll spreadsheet. Keep the
// names and order bit-stable.
var (
	EntryFields    = []string{"employee", "date", "hours", "project", "notes"}
	MaterialFields = []string{"date", "job", "category", "quantity", "unit", "notes"}
	LaborFields    = []string{"date", "job", "activity", "quantity", "unit", "notes"}
)

// ExportCSV renders the timesheet entries in insertion order.
func (s *Session) ExportCSV() string {
	rows := make([]map[string]any, 0, len(s.Entries))
	for _, e := range s.Entries {
		rows = append(rows, e.Row())
	}
	return exporter.Render(rows, EntryFields)
}

// ExportMaterialsCSV renders the material records in insertion order.
func (s *Session) ExportMaterialsCSV() string {
	rows := make([]map[string]any, 0, len(s.Materials))
	for _, m := range s.Materials {
		row := map[string]any{
			"date":     m.Date,
			"job":      m.Job,
			"category": m.Category,
			"quantity": m.Quantity,
			"unit":     m.Unit,
		}
		if m.Notes != nil {
			row["notes"] = *m.Notes
		}
		rows = append(rows, row)
	}
	return exporter.Render(rows, MaterialFields)
}

// ExportLaborCSV renders the labor records in insertion order.
func (s *Session) ExportLaborCSV() string {
	rows := make([]map[string]any, 0, len(s.Labor))
	for _, l := range s.Labor {
		row := map[string]any{
			"date":     l.Date,
			"job":      l.Job,
			"activity": l.Activity,
		}
		if l.Quantity != nil {
			row["quantity"] = *l.Quantity
		}
		if l.Unit != nil {
			row["unit"] = *l.Unit
		}
		if l.Notes != nil {
			row["notes"] = *l.Notes
		}
		rows = append(rows, row)
	}
	return exporter.Render(rows, LaborFields)
}

// SaveCSV writes text to path, creating parent directories as needed. An
// empty path is a no-op so callers can pass the configured save path
// through unconditionally.
func SaveCSV(path, text string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}
