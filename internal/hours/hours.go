// Package hours classifies worked hours against the company's full-day
// threshold.
package hours

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultFullDay is the threshold used when no full-day hours are
// configured.
const DefaultFullDay = 8.0

// Classify compares worked hours to the full-day threshold and returns a
// standardized note for the payroll reviewer, or nil for an exact full
// day. The delta is rounded to two decimals first so float noise from
// parsed input cannot produce a bogus "0h short" note.
func Classify(worked, fullDay float64) *string {
	delta := math.Round((worked-fullDay)*100) / 100
	if math.Abs(delta) < 1e-9 {
		return nil
	}

	var note string
	if delta < 0 {
		note = fmt.Sprintf("Partial day — %sh short of %sh", FormatAmount(-delta), FormatThreshold(fullDay))
	} else {
		note = fmt.Sprintf("Overtime — +%sh over %sh", FormatAmount(delta), FormatThreshold(fullDay))
	}
	return &note
}

// FormatAmount renders an hour delta with at most two decimals and no
// trailing zero: 1.5 not 1.50, 2 not 2.00.
func FormatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if strings.HasSuffix(s, ".00") {
		return strings.TrimSuffix(s, ".00")
	}
	if strings.HasSuffix(s, "0") {
		return s[:len(s)-1]
	}
	return s
}

// FormatThreshold renders the configured threshold compactly, dropping a
// redundant ".0" so notes read "8h" rather than "8.0h".
func FormatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
