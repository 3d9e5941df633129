package parser

import "testing"

// ============================================================
// Extract
// ============================================================

func TestExtractFullLine(t *testing.T) {
	got := Extract("Alex Doe 7.5 hours on 2025-09-01 for Project A")

	if got.Employee != "Alex Doe" {
		t.Fatalf("employee = %q, want Alex Doe", got.Employee)
	}
	if got.Date != "2025-09-01" {
		t.Fatalf("date = %q, want 2025-09-01", got.Date)
	}
	if got.Hours == nil || *got.Hours != 7.5 {
		t.Fatalf("hours = %v, want 7.5", got.Hours)
	}
	if got.Project == nil || *got.Project != "Project A" {
		t.Fatalf("project = %v, want Project A", got.Project)
	}
	if got.Notes != nil {
		t.Fatalf("notes = %v, want nil", got.Notes)
	}
}

func TestExtractNotesAndProject(t *testing.T) {
	got := Extract("Sam Lee 8h on 2025-09-02 for HQ Plaza notes: night shift, extra anchors")

	if got.Project == nil || *got.Project != "HQ Plaza" {
		t.Fatalf("project = %v, want HQ Plaza", got.Project)
	}
	if got.Notes == nil || *got.Notes != "night shift, extra anchors" {
		t.Fatalf("notes = %v, want night shift text", got.Notes)
	}
}

func TestExtractNotesNotSwallowedByProject(t *testing.T) {
	// The project capture runs on the notes-stripped text, otherwise
	// "for X notes: Y" would yield project "X notes: Y".
	got := Extract("Bob for M567 notes: stored the lift")

	if got.Project == nil || *got.Project != "M567" {
		t.Fatalf("project = %v, want M567", got.Project)
	}
	if got.Notes == nil || *got.Notes != "stored the lift" {
		t.Fatalf("notes = %v, want 'stored the lift'", got.Notes)
	}
}

func TestExtractHourUnits(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"Alex 8 on 2025-09-01", 8},
		{"Alex 8h on 2025-09-01", 8},
		{"Alex 8 hr on 2025-09-01", 8},
		{"Alex 7.5 hrs on 2025-09-01", 7.5},
		{"Alex 10 hours on 2025-09-01", 10},
		{"Alex 0.25 hour on 2025-09-01", 0.25},
	}

	for _, tt := range tests {
		got := Extract(tt.input)
		if got.Hours == nil {
			t.Errorf("Extract(%q).Hours = nil, want %v", tt.input, tt.want)
			continue
		}
		if *got.Hours != tt.want {
			t.Errorf("Extract(%q).Hours = %v, want %v", tt.input, *got.Hours, tt.want)
		}
	}
}

func TestExtractDateYearIsNotHours(t *testing.T) {
	// The first number in the line is the date's year; it must not be
	// read as 2025 worked hours. The scan does not retry, so hours stay
	// unset until the user supplies them explicitly.
	got := Extract("Crew meeting on 2025-09-01")

	if got.Date != "2025-09-01" {
		t.Fatalf("date = %q, want 2025-09-01", got.Date)
	}
	if got.Hours != nil {
		t.Fatalf("hours = %v, want nil", *got.Hours)
	}
}

func TestExtractDateFirstThenHours(t *testing.T) {
	got := Extract("2025-09-01 8h for HQ Plaza")

	if got.Date != "2025-09-01" {
		t.Fatalf("date = %q, want 2025-09-01", got.Date)
	}
	if got.Hours != nil {
		t.Fatalf("hours = %v, want nil when the date leads the line", *got.Hours)
	}
}

func TestExtractEmployeeStopsAtKeyword(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Alex Doe 7.5 hours on 2025-09-01", "Alex Doe"},
		{"Alex at the yard 8h", "Alex"},
		{"Maria for HQ Plaza 8h", "Maria"},
		{"Sam Lee hours 8", "Sam Lee"},
		{"On 2025-09-01 Alex worked", ""},
		{"8h Alex", ""},
	}

	for _, tt := range tests {
		got := Extract(tt.input)
		if got.Employee != tt.want {
			t.Errorf("Extract(%q).Employee = %q, want %q", tt.input, got.Employee, tt.want)
		}
	}
}

func TestExtractEmployeeTokenCap(t *testing.T) {
	got := Extract("Juan Carlos De La Cruz 8h on 2025-09-01")

	if got.Employee != "Juan Carlos De" {
		t.Fatalf("employee = %q, want the first %d tokens", got.Employee, MaxNameTokens)
	}
}

func TestExtractEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\n"} {
		got := Extract(input)
		if got.Employee != "" || got.Date != "" || got.Hours != nil || got.Project != nil || got.Notes != nil {
			t.Errorf("Extract(%q) = %+v, want zero candidate", input, got)
		}
	}
}

func TestExtractProseOnly(t *testing.T) {
	got := Extract("hello there")

	if got.Employee != "hello there" {
		t.Fatalf("employee = %q, want the raw words", got.Employee)
	}
	if got.Date != "" || got.Hours != nil || got.Project != nil || got.Notes != nil {
		t.Fatalf("got %+v, want only employee set", got)
	}
}

func TestExtractBlankNotesDropped(t *testing.T) {
	got := Extract("Alex Doe 8h on 2025-09-01 notes:   ")

	if got.Notes != nil {
		t.Fatalf("notes = %q, want nil for blank notes", *got.Notes)
	}
}
