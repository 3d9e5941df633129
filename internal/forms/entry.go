// Package forms defines the canonical timesheet record and the field
// checks every entry must pass before it joins a session.
package forms

import (
	"strings"

	"github.com/balkashynov/crewlog/internal/parser"
)

// TimesheetEntry is one validated day of work for one person. Project and
// Notes are genuinely optional; nil means the user never supplied them,
// which matters for upsert merging and CSV rendering.
type TimesheetEntry struct {
	Employee string  `json:"employee"`
	Date     string  `json:"date"`
	Hours    float64 `json:"hours"`
	Project  *string `json:"project,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// FromCandidate coerces a loose extraction into the canonical shape. It
// never fails: absent hours become zero and absent strings stay empty so
// Validate can name each missing field.
func FromCandidate(c parser.Candidate) TimesheetEntry {
	entry := TimesheetEntry{
		Employee: c.Employee,
		Date:     c.Date,
	}
	if c.Hours != nil {
		entry.Hours = *c.Hours
	}
	if c.Project != nil {
		project := *c.Project
		entry.Project = &project
	}
	if c.Notes != nil {
		notes := *c.Notes
		entry.Notes = &notes
	}
	return entry
}

// Validate returns every problem with the entry, not just the first, so
// the user can fix a whole line in one go. An empty result means the entry
// is ready to submit.
func Validate(e TimesheetEntry) []string {
	var problems []string
	if strings.TrimSpace(e.Employee) == "" {
		problems = append(problems, "Employee is required.")
	}
	if strings.TrimSpace(e.Date) == "" {
		problems = append(problems, "Date is required.")
	}
	if e.Hours <= 0 {
		problems = append(problems, "Hours must be greater than zero.")
	}
	return problems
}

// Row shapes the entry for CSV export, keyed by the export header names.
// Optional fields are left out entirely; the exporter renders absent keys
// as empty cells.
func (e TimesheetEntry) Row() map[string]any {
	row := map[string]any{
		"employee": e.Employee,
		"date":     e.Date,
		"hours":    e.Hours,
	}
	if e.Project != nil {
		row["project"] = *e.Project
	}
	if e.Notes != nil {
		row["notes"] = *e.Notes
	}
	return row
}
