// Package notes merges user notes with generated annotations.
package notes

import "strings"

// Merge combines the base note with any extra notes into a single " | "
// separated string. Blank values are skipped and exact duplicates appear
// once, in first-seen order, so resubmitting an entry cannot stack the
// same annotation twice. Returns nil when nothing survives, keeping "no
// notes" distinct from an empty note.
func Merge(base *string, extras ...*string) *string {
	var parts []string
	seen := make(map[string]bool)

	add := func(note *string) {
		if note == nil {
			return
		}
		trimmed := strings.TrimSpace(*note)
		if trimmed == "" || seen[trimmed] {
			return
		}
		seen[trimmed] = true
		parts = append(parts, trimmed)
	}

	add(base)
	for _, extra := range extras {
		add(extra)
	}

	if len(parts) == 0 {
		return nil
	}
	merged := strings.Join(parts, " | ")
	return &merged
}
