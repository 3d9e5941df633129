package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/balkashynov/crewlog/internal/forms"
	"github.com/balkashynov/crewlog/internal/hours"
	"github.com/balkashynov/crewlog/internal/notes"
)

// NoteOverride pins a specific note to one employee in a bulk submission,
// replacing the shared note for that person only.
type NoteOverride struct {
	Employee string
	Note     string
}

// PartialOverride carries per-person partial-day details. The composed
// note always leads with the reason, then the other-site stint, so bulk
// output reads consistently.
type PartialOverride struct {
	Employee       string
	Reason         *string
	OtherSiteHours *float64
	OtherSiteName  *string
}

// note renders the standardized partial-day note, e.g.
// "Partial day — Reason: left early | Other site: 2h at M567".
func (p PartialOverride) note() *string {
	var parts []string
	if p.Reason != nil && *p.Reason != "" {
		parts = append(parts, "Reason: "+*p.Reason)
	}
	if p.OtherSiteHours != nil {
		amount := strconv.FormatFloat(*p.OtherSiteHours, 'f', -1, 64)
		if p.OtherSiteName != nil && *p.OtherSiteName != "" {
			parts = append(parts, fmt.Sprintf("Other site: %sh at %s", amount, *p.OtherSiteName))
		} else {
			parts = append(parts, fmt.Sprintf("Other site: %sh", amount))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	note := "Partial day — " + strings.Join(parts, " | ")
	return &note
}

// BulkRequest submits one day's entries for several employees sharing the
// same hours and project.
type BulkRequest struct {
	Employees        []string
	Date             string
	Hours            float64
	Project          *string
	Notes            *string
	NoteOverrides    []NoteOverride
	PartialOverrides []PartialOverride
}

// BulkIssue pairs an employee with the problems that kept their entry out.
type BulkIssue struct {
	Employee string
	Problems []string
}

// BulkResult reports a bulk submission. Status is "ok" when every
// employee went in, "partial" when only some did, "error" when none did.
type BulkResult struct {
	Status string
	Added  int
	Count  int
	Issues []BulkIssue
}

// BulkSubmit validates and upserts one entry per employee. Each entry's
// notes are assembled in a fixed order: the shared or overridden note
// first, then the partial-day note, then the hour classification. A
// failing employee never blocks the others.
func (s *Session) BulkSubmit(req BulkRequest) BulkResult {
	noteByEmployee := make(map[string]string)
	for _, o := range req.NoteOverrides {
		if o.Employee != "" && o.Note != "" {
			noteByEmployee[o.Employee] = o.Note
		}
	}
	partialByEmployee := make(map[string]PartialOverride)
	for _, p := range req.PartialOverrides {
		if p.Employee != "" {
			partialByEmployee[p.Employee] = p
		}
	}

	classification := hours.Classify(req.Hours, s.fullDay)

	var result BulkResult
	for _, employee := range req.Employees {
		base := req.Notes
		if override, ok := noteByEmployee[employee]; ok {
			base = &override
		}
		var partial *string
		if p, ok := partialByEmployee[employee]; ok {
			partial = p.note()
		}

		entry := forms.TimesheetEntry{
			Employee: employee,
			Date:     req.Date,
			Hours:    req.Hours,
			Project:  req.Project,
			Notes:    notes.Merge(base, partial, classification),
		}
		if problems := s.ValidateEntry(entry); len(problems) > 0 {
			result.Issues = append(result.Issues, BulkIssue{Employee: employee, Problems: problems})
			continue
		}
		Upsert(&s.Entries, entry.Employee, entry.Date, entry.Hours, entry.Project, entry.Notes)
		result.Added++
	}

	result.Count = len(s.Entries)
	switch {
	case result.Added > 0 && len(result.Issues) == 0:
		result.Status = "ok"
	case result.Added > 0:
		result.Status = "partial"
	default:
		result.Status = "error"
	}
	return result
}
