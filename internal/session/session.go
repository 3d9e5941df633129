// Package session owns the state of one assistant run: the validated
// timesheet entries plus any material and labor records, all kept in
// memory in insertion order until they are exported.
package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/balkashynov/crewlog/internal/company"
	"github.com/balkashynov/crewlog/internal/forms"
	"github.com/balkashynov/crewlog/internal/hours"
	"github.com/balkashynov/crewlog/internal/notes"
)

// Directory is the slice of company config submissions are checked
// against. It is satisfied by *company.Config; sessions run fine with a
// nil Directory, they just skip these checks.
type Directory interface {
	EmployeeExists(name string) bool
	FindJobsite(value string) (company.JobSite, bool)
	JobsitesConfigured() bool
	MaterialExists(value string) bool
	FindLaborActivity(value string) (company.LaborActivity, bool)
}

// Session collects one run's records. Entries stay unique per
// (employee, date) through upsert; everything else appends.
type Session struct {
	ID        string
	Entries   []forms.TimesheetEntry
	Materials []MaterialRecord
	Labor     []LaborRecord

	dir     Directory
	fullDay float64
}

// New creates an empty session. dir may be nil when no company config is
// loaded. A non-positive fullDay falls back to the standard threshold.
func New(dir Directory, fullDay float64) *Session {
	if fullDay <= 0 {
		fullDay = hours.DefaultFullDay
	}
	return &Session{
		ID:      uuid.NewString(),
		dir:     dir,
		fullDay: fullDay,
	}
}

// FullDay returns the threshold used for partial/overtime classification.
func (s *Session) FullDay() float64 {
	return s.fullDay
}

// HasDirectory reports whether company checks are active.
func (s *Session) HasDirectory() bool {
	return s.dir != nil
}

// ValidateEntry runs the base field checks plus the roster and jobsite
// checks when a company directory is loaded. All checks run; the result
// names every problem at once.
func (s *Session) ValidateEntry(e forms.TimesheetEntry) []string {
	problems := forms.Validate(e)
	if s.dir == nil {
		return problems
	}

	if strings.TrimSpace(e.Employee) != "" && !s.dir.EmployeeExists(e.Employee) {
		problems = append(problems, fmt.Sprintf("Unknown employee: %s (not in roster)", e.Employee))
	}
	project := ""
	if e.Project != nil {
		project = *e.Project
	}
	if s.dir.JobsitesConfigured() && project == "" {
		problems = append(problems, "Project is required (company has configured jobsites).")
	}
	if project != "" {
		if _, ok := s.dir.FindJobsite(project); !ok {
			problems = append(problems, fmt.Sprintf("Unknown jobsite/project: %s (not in config)", project))
		}
	}
	return problems
}

// SubmitEntry runs the full pipeline for one entry: validation, hour
// classification, note merging, then upsert into the session. On success
// it returns the entry as committed, with the classification already
// folded into its notes. On failure nothing is committed and the problems
// come back instead.
func (s *Session) SubmitEntry(employee, date string, worked float64, project, note *string) (forms.TimesheetEntry, []string) {
	entry := forms.TimesheetEntry{
		Employee: employee,
		Date:     date,
		Hours:    worked,
		Project:  project,
		Notes:    note,
	}
	if problems := s.ValidateEntry(entry); len(problems) > 0 {
		return forms.TimesheetEntry{}, problems
	}

	classification := hours.Classify(entry.Hours, s.fullDay)
	entry.Notes = notes.Merge(entry.Notes, classification)
	Upsert(&s.Entries, entry.Employee, entry.Date, entry.Hours, entry.Project, entry.Notes)
	return entry, nil
}
