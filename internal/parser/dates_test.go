package parser

import "testing"

// Anchor every relative phrase on a known Tuesday so results are stable.
const anchorTuesday = "2025-09-09"

func testResolver() Resolver {
	return Resolver{BaseDate: anchorTuesday}
}

// ============================================================
// Literal and relative days
// ============================================================

func TestResolveISOPassthrough(t *testing.T) {
	got := testResolver().Resolve("2025-12-31")
	if got != "2025-12-31" {
		t.Fatalf("got %q, want 2025-12-31", got)
	}
}

func TestResolveRelativeDays(t *testing.T) {
	tests := []struct {
		phrase string
		want   string
	}{
		{"today", "2025-09-09"},
		{"Today", "2025-09-09"},
		{"todays date", "2025-09-09"},
		{"today's date", "2025-09-09"},
		{"yesterday", "2025-09-08"},
		{"tomorrow", "2025-09-10"},
	}

	r := testResolver()
	for _, tt := range tests {
		got := r.Resolve(tt.phrase)
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.phrase, got, tt.want)
		}
	}
}

func TestResolveAcrossMonthBoundary(t *testing.T) {
	got := ResolvePhrase("yesterday", "", "2025-03-01")
	if got != "2025-02-28" {
		t.Fatalf("got %q, want 2025-02-28", got)
	}
}

// ============================================================
// Spelled-out and numeric dates
// ============================================================

func TestResolveMonthNameDates(t *testing.T) {
	tests := []struct {
		phrase string
		want   string
	}{
		{"September 9 2025", "2025-09-09"},
		{"september 9, 2025", "2025-09-09"},
		{"Sept 9th, 2025", "2025-09-09"},
		{"9 September 2025", "2025-09-09"},
		{"9th Sep 2025", "2025-09-09"},
		{"December 31 2025", "2025-12-31"},
		{"1 January 2026", "2026-01-01"},
	}

	r := testResolver()
	for _, tt := range tests {
		got := r.Resolve(tt.phrase)
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.phrase, got, tt.want)
		}
	}
}

func TestResolveNumericDates(t *testing.T) {
	tests := []struct {
		phrase string
		want   string
	}{
		{"09/09/2025", "2025-09-09"},
		{"9/30/2025", "2025-09-30"},
		{"12/1/2025", "2025-12-01"},
		{"13/01/2025", ""}, // month out of range
	}

	r := testResolver()
	for _, tt := range tests {
		got := r.Resolve(tt.phrase)
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.phrase, got, tt.want)
		}
	}
}

func TestResolveDoesNotValidateCalendar(t *testing.T) {
	// Range checks are per-field only; impossible calendar dates pass
	// through and get caught by whoever consumes the entry downstream.
	got := testResolver().Resolve("February 30 2026")
	if got != "2026-02-30" {
		t.Fatalf("got %q, want 2026-02-30", got)
	}
}

// ============================================================
// Weekday phrases
// ============================================================

func TestResolveWeekdayPhrases(t *testing.T) {
	// The anchor 2025-09-09 is a Tuesday.
	tests := []struct {
		phrase string
		want   string
	}{
		{"this tuesday", "2025-09-09"},
		{"this friday", "2025-09-12"},
		{"next friday", "2025-09-19"},
		{"last friday", "2025-09-05"},
		{"next tuesday", "2025-09-16"},
		{"last tuesday", "2025-09-02"},
		{"this monday", "2025-09-15"},
		{"last monday", "2025-09-08"},
		{"this sunday", "2025-09-14"},
	}

	r := testResolver()
	for _, tt := range tests {
		got := r.Resolve(tt.phrase)
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.phrase, got, tt.want)
		}
	}
}

// ============================================================
// Fallbacks
// ============================================================

func TestResolveUnrecognized(t *testing.T) {
	r := testResolver()
	for _, phrase := range []string{"", "   ", "someday", "the 9th", "foober 9 2025"} {
		if got := r.Resolve(phrase); got != "" {
			t.Errorf("Resolve(%q) = %q, want empty", phrase, got)
		}
	}
}

func TestResolveBadTimezoneStillAnchors(t *testing.T) {
	r := Resolver{Timezone: "Not/AZone", BaseDate: anchorTuesday}
	if got := r.Resolve("tomorrow"); got != "2025-09-10" {
		t.Fatalf("got %q, want 2025-09-10", got)
	}
}
