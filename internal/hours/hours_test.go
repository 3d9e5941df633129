package hours

import "testing"

// ============================================================
// Classify
// ============================================================

func TestClassifyFullDay(t *testing.T) {
	if got := Classify(8, 8); got != nil {
		t.Fatalf("got %q, want nil for an exact full day", *got)
	}
}

func TestClassifyPartial(t *testing.T) {
	got := Classify(6.5, 8)
	if got == nil {
		t.Fatal("got nil, want a partial-day note")
	}
	if *got != "Partial day — 1.5h short of 8h" {
		t.Fatalf("got %q", *got)
	}
}

func TestClassifyOvertime(t *testing.T) {
	got := Classify(8.5, 8)
	if got == nil {
		t.Fatal("got nil, want an overtime note")
	}
	if *got != "Overtime — +0.5h over 8h" {
		t.Fatalf("got %q", *got)
	}
}

func TestClassifyWholeHourDeltas(t *testing.T) {
	tests := []struct {
		worked, fullDay float64
		want            string
	}{
		{6, 8, "Partial day — 2h short of 8h"},
		{10, 8, "Overtime — +2h over 8h"},
		{7.75, 8, "Partial day — 0.25h short of 8h"},
		{4, 7.5, "Partial day — 3.5h short of 7.5h"},
		{9, 7.5, "Overtime — +1.5h over 7.5h"},
	}

	for _, tt := range tests {
		got := Classify(tt.worked, tt.fullDay)
		if got == nil {
			t.Errorf("Classify(%v, %v) = nil, want %q", tt.worked, tt.fullDay, tt.want)
			continue
		}
		if *got != tt.want {
			t.Errorf("Classify(%v, %v) = %q, want %q", tt.worked, tt.fullDay, *got, tt.want)
		}
	}
}

func TestClassifyAbsorbsFloatNoise(t *testing.T) {
	// 0.1+0.2 style imprecision must not turn a full day into a partial.
	if got := Classify(7.9+0.1, 8); got != nil {
		t.Fatalf("got %q, want nil", *got)
	}
}

// ============================================================
// Formatting helpers
// ============================================================

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.5, "1.5"},
		{0.5, "0.5"},
		{2, "2"},
		{0.25, "0.25"},
		{1.75, "1.75"},
		{10, "10"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatThreshold(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8, "8"},
		{7.5, "7.5"},
		{10, "10"},
	}

	for _, tt := range tests {
		if got := FormatThreshold(tt.in); got != tt.want {
			t.Errorf("FormatThreshold(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
