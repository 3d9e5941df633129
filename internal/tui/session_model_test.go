package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/crewlog/internal/agent"
	"github.com/balkashynov/crewlog/internal/parser"
	"github.com/balkashynov/crewlog/internal/session"
)

func newTestModel(t *testing.T) SessionModel {
	t.Helper()
	sess := session.New(nil, 8)
	resolver := parser.Resolver{BaseDate: "2025-09-09"}
	return NewSessionModel(agent.New(sess, resolver))
}

func submit(t *testing.T, m SessionModel, line string) SessionModel {
	t.Helper()
	m.input.SetValue(line)
	m, _ = m.handleSubmit()
	return m
}

// ============================================================
// Conversation flow
// ============================================================

func TestNewSessionModelGreets(t *testing.T) {
	m := newTestModel(t)
	if m.assistantMsg != "Hello! Let's record a timesheet entry. Who worked, on what date, and for how many hours?" {
		t.Fatalf("unexpected greeting: %q", m.assistantMsg)
	}
	if _, hasPending := m.assistant.Pending(); hasPending {
		t.Fatal("no entry should be pending at start")
	}
}

func TestSubmitFreeformLine(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "Alex Doe 7.5 hours on 2025-09-01 for Project A")

	pending, hasPending := m.assistant.Pending()
	if !hasPending {
		t.Fatal("freeform line should create a pending entry")
	}
	if pending.Employee != "Alex Doe" || pending.Date != "2025-09-01" || pending.Hours != 7.5 {
		t.Fatalf("unexpected pending entry: %+v", pending)
	}
	if len(m.problems) != 0 {
		t.Fatalf("complete entry should have no problems, got %v", m.problems)
	}
	if m.assistantMsg != "Please confirm this entry." {
		t.Fatalf("unexpected prompt: %q", m.assistantMsg)
	}
	if len(m.transcript) != 1 || m.transcript[0] != "› Alex Doe 7.5 hours on 2025-09-01 for Project A" {
		t.Fatalf("unexpected transcript: %v", m.transcript)
	}
	if m.input.Value() != "" {
		t.Fatal("input should be cleared after submit")
	}
}

func TestSubmitIncompleteLineListsProblems(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "Alex Doe")

	if m.assistantMsg != "I need a bit more detail." {
		t.Fatalf("unexpected prompt: %q", m.assistantMsg)
	}
	if len(m.problems) != 2 {
		t.Fatalf("expected missing date and hours, got %v", m.problems)
	}
}

func TestSubmitConfirmCommits(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "Alex Doe 8h on 2025-09-01")
	m = submit(t, m, "confirm")

	if got := len(m.assistant.Session().Entries); got != 1 {
		t.Fatalf("expected 1 committed entry, got %d", got)
	}
	if _, hasPending := m.assistant.Pending(); hasPending {
		t.Fatal("pending entry should be cleared after confirm")
	}
	last := m.transcript[len(m.transcript)-1]
	if last != "✓ Alex Doe 2025-09-01 8h" {
		t.Fatalf("unexpected transcript line: %q", last)
	}
	if m.assistantMsg != "Recorded. Add another entry or say 'done' to finish." {
		t.Fatalf("unexpected prompt: %q", m.assistantMsg)
	}
}

func TestSubmitConfirmWithNothingPending(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "yes")

	if m.validationErr != "Nothing to confirm yet." {
		t.Fatalf("unexpected error: %q", m.validationErr)
	}
}

func TestSubmitDoneQuits(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("done")
	m, cmd := m.handleSubmit()

	if !m.finished {
		t.Fatal("done should finish the session")
	}
	if cmd == nil {
		t.Fatal("done should quit the program")
	}
}

func TestSubmitEmptyLineIsNoop(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "   ")

	if len(m.transcript) != 0 {
		t.Fatal("blank line should not reach the assistant")
	}
}

// ============================================================
// Directives
// ============================================================

func TestSetDirectiveRevisesField(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "Alex Doe 8h on 2025-09-01")
	m = submit(t, m, "set hours 9")

	pending, _ := m.assistant.Pending()
	if pending.Hours != 9 {
		t.Fatalf("expected hours 9, got %v", pending.Hours)
	}
}

func TestSetDirectiveUsage(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "set hours")

	if m.validationErr != "Usage: set <field> <value>" {
		t.Fatalf("unexpected error: %q", m.validationErr)
	}
}

func TestDateDirectiveResolvesPhrase(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "Alex Doe 8h")
	m = submit(t, m, "date yesterday")

	pending, _ := m.assistant.Pending()
	if pending.Date != "2025-09-08" {
		t.Fatalf("expected 2025-09-08, got %q", pending.Date)
	}
}

func TestDateDirectiveUnknownPhrase(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "date whenever")

	if m.validationErr != `Could not understand the date "whenever".` {
		t.Fatalf("unexpected error: %q", m.validationErr)
	}
}

// ============================================================
// Keys and quit modal
// ============================================================

func TestEscWithoutPendingFinishes(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	m = updated.(SessionModel)
	if !m.finished {
		t.Fatal("esc with nothing pending should finish")
	}
	if cmd == nil {
		t.Fatal("esc should quit the program")
	}
}

func TestEscWithPendingShowsModal(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "Alex Doe 8h on 2025-09-01")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(SessionModel)
	if !m.showQuitModal {
		t.Fatal("esc with a pending entry should show the quit modal")
	}
	if !m.quitModalChoice {
		t.Fatal("modal should default to Finish")
	}
	if m.finished {
		t.Fatal("session should not finish until the modal is answered")
	}
}

func TestQuitModalStay(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "Alex Doe 8h on 2025-09-01")
	m.showQuitModal = true
	m.quitModalChoice = true

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	m = updated.(SessionModel)
	if m.showQuitModal {
		t.Fatal("answering should close the modal")
	}
	if m.finished {
		t.Fatal("choosing Stay should not finish")
	}
	if _, hasPending := m.assistant.Pending(); !hasPending {
		t.Fatal("pending entry should survive Stay")
	}
}

func TestQuitModalFinish(t *testing.T) {
	m := newTestModel(t)
	m = submit(t, m, "Alex Doe 8h on 2025-09-01")
	m.showQuitModal = true
	m.quitModalChoice = false

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m = updated.(SessionModel)
	if !m.finished {
		t.Fatal("choosing Finish should finish")
	}
	if cmd == nil {
		t.Fatal("choosing Finish should quit the program")
	}
}

func TestQuitModalArrowsToggle(t *testing.T) {
	m := newTestModel(t)
	m.showQuitModal = true
	m.quitModalChoice = true

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(SessionModel)
	if m.quitModalChoice {
		t.Fatal("arrow key should toggle the modal choice")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(SessionModel)
	if !m.quitModalChoice {
		t.Fatal("arrow key should toggle back")
	}
}

func TestCtrlCCancels(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	m = updated.(SessionModel)
	if !m.cancelled {
		t.Fatal("ctrl+c should cancel")
	}
	if cmd == nil {
		t.Fatal("ctrl+c should quit the program")
	}
}

func TestWindowSizeClampsInputWidth(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	m = updated.(SessionModel)
	if m.input.Width != 30 {
		t.Fatalf("narrow terminal should clamp input to 30, got %d", m.input.Width)
	}

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 300, Height: 60})
	m = updated.(SessionModel)
	if m.input.Width != 80 {
		t.Fatalf("wide terminal should clamp input to 80, got %d", m.input.Width)
	}
}

// ============================================================
// Rendering
// ============================================================

func TestViewRendersBothPanels(t *testing.T) {
	m := newTestModel(t)
	m.width = 120
	m.height = 40
	m = submit(t, m, "Alex Doe 7.5h on 2025-09-01 for Project A")

	view := m.View()
	if view == "" {
		t.Fatal("view should not be empty")
	}
	if !strings.Contains(view, "Alex Doe") {
		t.Fatal("view should show the pending employee")
	}
	if !strings.Contains(view, "2025-09-01") {
		t.Fatal("view should show the pending date")
	}
}

func TestViewListeningStatus(t *testing.T) {
	m := newTestModel(t)
	m.width = 120
	m.height = 40

	if !strings.Contains(stripANSI(m.View()), "● listening") {
		t.Fatal("idle preview should show the listening status")
	}
}

func TestViewShowsPartialDayFlag(t *testing.T) {
	m := newTestModel(t)
	m.width = 120
	m.height = 40
	m = submit(t, m, "Alex Doe 6.5h on 2025-09-01")

	if !strings.Contains(m.View(), "Partial day — 1.5h short of 8h") {
		t.Fatal("preview should flag a short day")
	}
}

func TestViewSmallLayout(t *testing.T) {
	m := newTestModel(t)
	m.width = 60
	m.height = 20

	if m.View() == "" {
		t.Fatal("small layout should render")
	}
}

func TestViewAfterExitIsEmpty(t *testing.T) {
	m := newTestModel(t)
	m.width = 120
	m.height = 40
	m.finished = true

	if m.View() != "" {
		t.Fatal("finished model should render nothing")
	}
}

// ============================================================
// Helpers
// ============================================================

func TestSummarizeEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry map[string]any
		want  string
	}{
		{
			name:  "full entry",
			entry: map[string]any{"employee": "Alex Doe", "date": "2025-09-01", "hours": 7.5, "project": "Project A"},
			want:  "Alex Doe 2025-09-01 7.5h for Project A",
		},
		{
			name:  "whole hours drop the decimal",
			entry: map[string]any{"employee": "Sam Lee", "date": "2025-09-02", "hours": 8.0},
			want:  "Sam Lee 2025-09-02 8h",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summarizeEntry(tt.entry); got != tt.want {
				t.Fatalf("summarizeEntry() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("123e4567-e89b-12d3-a456-426614174000"); got != "123e4567" {
		t.Fatalf("shortID() = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Fatalf("short input should pass through, got %q", got)
	}
}

func TestPushTranscriptCaps(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < maxTranscriptLines+5; i++ {
		m.pushTranscript("line")
	}
	if len(m.transcript) != maxTranscriptLines {
		t.Fatalf("transcript should cap at %d lines, got %d", maxTranscriptLines, len(m.transcript))
	}
}
