package session

import (
	"github.com/balkashynov/crewlog/internal/forms"
	"github.com/balkashynov/crewlog/internal/notes"
)

// Upsert inserts or updates the entry matching (employee, date) exactly,
// in place. On update: hours always take the new value, the project is
// only overwritten by a non-empty one, and notes go through Merge so a
// resubmission cannot duplicate an annotation. Untouched entries keep
// their slice positions, which keeps CSV export order stable.
func Upsert(entries *[]forms.TimesheetEntry, employee, date string, worked float64, project, note *string) {
	for i := range *entries {
		existing := &(*entries)[i]
		if existing.Employee != employee || existing.Date != date {
			continue
		}
		existing.Hours = worked
		if project != nil && *project != "" {
			existing.Project = cloneString(project)
		}
		existing.Notes = notes.Merge(existing.Notes, note)
		return
	}

	*entries = append(*entries, forms.TimesheetEntry{
		Employee: employee,
		Date:     date,
		Hours:    worked,
		Project:  cloneString(project),
		Notes:    cloneString(note),
	})
}

// cloneString copies an optional string so stored entries never alias
// caller memory.
func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
