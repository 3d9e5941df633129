// Package agent drives the assistant loop around one session:
// ask, parse, validate, confirm or revise, finalize. Every outcome is an
// event the caller renders; the agent itself never prints or errors.
package agent

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/balkashynov/crewlog/internal/forms"
	"github.com/balkashynov/crewlog/internal/parser"
	"github.com/balkashynov/crewlog/internal/session"
)

// Event is a simple typed payload suitable for streaming to a UI.
type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Agent collects entries through conversation. It keeps at most one
// pending entry; Confirm commits it to the session and clears it.
type Agent struct {
	sess     *session.Session
	resolver parser.Resolver
	pending  *forms.TimesheetEntry
}

// New wires an agent to a session. The resolver decides what relative
// date phrases like "yesterday" mean.
func New(sess *session.Session, resolver parser.Resolver) *Agent {
	return &Agent{sess: sess, resolver: resolver}
}

// Session exposes the underlying session for export and counts.
func (a *Agent) Session() *session.Session {
	return a.sess
}

// Pending returns a copy of the entry awaiting confirmation, if any.
func (a *Agent) Pending() (forms.TimesheetEntry, bool) {
	if a.pending == nil {
		return forms.TimesheetEntry{}, false
	}
	return *a.pending, true
}

// Start opens the session and requests initial input.
func (a *Agent) Start() Event {
	return Event{
		Type: "started",
		Payload: map[string]any{
			"message": "Hello! Let's record a timesheet entry. Who worked, on what date, and for how many hours?",
			"session": a.sess.ID,
		},
	}
}

// Input advances the flow with one user utterance. While an entry is
// pending, a line the date resolver understands ("yesterday", "next
// friday") just sets the pending date; the freeform extractor would read
// those words as an employee name. Everything else is parsed and merged
// into the pending entry, non-empty values winning, so follow-up lines
// like "on 2025-09-01" fill gaps instead of wiping what was said before.
func (a *Agent) Input(text string) []Event {
	events := []Event{{Type: "user_input", Payload: map[string]any{"text": text}}}

	if a.pending != nil {
		if iso := a.resolver.Resolve(text); iso != "" {
			a.pending.Date = iso
			events = append(events, Event{Type: "parsed", Payload: map[string]any{"entry": entryPayload(*a.pending)}})
			return append(events, a.review())
		}
	}

	entry := forms.FromCandidate(parser.Extract(text))
	if a.pending == nil {
		a.pending = &entry
	} else {
		mergeInto(a.pending, entry)
	}

	events = append(events, Event{Type: "parsed", Payload: map[string]any{"entry": entryPayload(*a.pending)}})
	return append(events, a.review())
}

// Revise applies a single-field correction to the pending entry. Field is
// one of employee, date, hours, project or notes. Date values go through
// the phrase resolver, so "date yesterday" or "date next friday" work the
// same as a literal ISO date. Revising with no pending entry starts one.
func (a *Agent) Revise(field, value string) []Event {
	if a.pending == nil {
		a.pending = &forms.TimesheetEntry{}
	}
	value = strings.TrimSpace(value)

	switch strings.ToLower(strings.TrimSpace(field)) {
	case "employee":
		a.pending.Employee = value
	case "date":
		iso := a.resolver.Resolve(value)
		if iso == "" {
			return []Event{errorEvent(fmt.Sprintf("Could not understand the date %q.", value))}
		}
		a.pending.Date = iso
	case "hours":
		worked, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return []Event{errorEvent(fmt.Sprintf("Could not read %q as hours.", value))}
		}
		a.pending.Hours = worked
	case "project":
		if value == "" {
			a.pending.Project = nil
		} else {
			a.pending.Project = &value
		}
	case "notes":
		if value == "" {
			a.pending.Notes = nil
		} else {
			a.pending.Notes = &value
		}
	default:
		return []Event{errorEvent(fmt.Sprintf("Unknown field %q.", field))}
	}

	return []Event{
		{Type: "parsed", Payload: map[string]any{"entry": entryPayload(*a.pending)}},
		a.review(),
	}
}

// Confirm commits the pending entry through the session's submission
// pipeline. Validation can still fail here when a company directory is
// loaded; the entry stays pending in that case so the user can revise it.
func (a *Agent) Confirm() []Event {
	if a.pending == nil {
		return []Event{errorEvent("Nothing to confirm yet.")}
	}

	entry, problems := a.sess.SubmitEntry(
		a.pending.Employee, a.pending.Date, a.pending.Hours, a.pending.Project, a.pending.Notes,
	)
	if len(problems) > 0 {
		return []Event{{
			Type: "needs_revision",
			Payload: map[string]any{
				"message":  "I need a bit more detail.",
				"problems": problems,
			},
		}}
	}

	a.pending = nil
	return []Event{
		{Type: "confirmed", Payload: map[string]any{"entry": entryPayload(entry)}},
		{
			Type: "ready_for_next",
			Payload: map[string]any{
				"message": "Recorded. Add another entry or say 'done' to finish.",
				"count":   len(a.sess.Entries),
			},
		},
	}
}

// Finalize closes the session and summarizes what was collected.
func (a *Agent) Finalize() Event {
	entries := make([]map[string]any, 0, len(a.sess.Entries))
	for _, e := range a.sess.Entries {
		entries = append(entries, entryPayload(e))
	}
	return Event{
		Type: "finalized",
		Payload: map[string]any{
			"message": "Session complete.",
			"session": a.sess.ID,
			"count":   len(entries),
			"entries": entries,
		},
	}
}

// review validates the pending entry and emits either a confirmation
// request or the list of problems still in the way.
func (a *Agent) review() Event {
	problems := a.sess.ValidateEntry(*a.pending)
	if len(problems) == 0 {
		return Event{
			Type: "needs_confirmation",
			Payload: map[string]any{
				"message":  "Please confirm this entry.",
				"proposed": entryPayload(*a.pending),
			},
		}
	}
	return Event{
		Type: "needs_revision",
		Payload: map[string]any{
			"message":  "I need a bit more detail.",
			"problems": problems,
		},
	}
}

// mergeInto overlays src onto dst, non-empty values winning.
func mergeInto(dst *forms.TimesheetEntry, src forms.TimesheetEntry) {
	if src.Employee != "" {
		dst.Employee = src.Employee
	}
	if src.Date != "" {
		dst.Date = src.Date
	}
	if src.Hours > 0 {
		dst.Hours = src.Hours
	}
	if src.Project != nil {
		dst.Project = src.Project
	}
	if src.Notes != nil {
		dst.Notes = src.Notes
	}
}

// entryPayload shapes an entry for event payloads and SSE data frames.
func entryPayload(e forms.TimesheetEntry) map[string]any {
	payload := map[string]any{
		"employee": e.Employee,
		"date":     e.Date,
		"hours":    e.Hours,
	}
	if e.Project != nil {
		payload["project"] = *e.Project
	}
	if e.Notes != nil {
		payload["notes"] = *e.Notes
	}
	return payload
}

func errorEvent(message string) Event {
	return Event{Type: "error", Payload: map[string]any{"message": message}}
}
