package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxNameTokens caps how many leading words are treated as the employee
// name before the extractor gives up. Crew rosters use two- or three-word
// names; anything longer is almost certainly prose.
const MaxNameTokens = 3

// Candidate holds the loosely-extracted fields from one freeform timesheet
// line. Every field is optional: missing values stay empty or nil so the
// validator can report exactly what is still needed.
type Candidate struct {
	Employee string
	Date     string
	Hours    *float64
	Project  *string
	Notes    *string
}

// Extract pulls timesheet fields out of natural language
// Syntax: "Alex Doe 7.5 hours on 2025-09-01 for Project A notes: extra cleanup"
func Extract(input string) Candidate {
	s := strings.TrimSpace(input)
	if s == "" {
		return Candidate{}
	}

	result := Candidate{}

	// Extract a literal ISO date (relative phrases go through Resolver)
	dateRegex := regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	if m := dateRegex.FindStringSubmatch(s); m != nil {
		result.Date = m[1]
	}

	// Extract trailing notes ("notes: ...") and drop them from the text so
	// the project capture below cannot swallow them
	withoutNotes := s
	notesRegex := regexp.MustCompile(`(?i)\bnotes:\s*(.+)$`)
	if loc := notesRegex.FindStringSubmatchIndex(s); loc != nil {
		notes := strings.TrimSpace(s[loc[2]:loc[3]])
		if notes != "" {
			result.Notes = &notes
		}
		withoutNotes = strings.TrimSpace(s[:loc[0]])
	}

	// Extract the project ("for <name>" through end of line)
	projectRegex := regexp.MustCompile(`(?i)\bfor\s+([^\n]+)$`)
	if m := projectRegex.FindStringSubmatch(withoutNotes); m != nil {
		project := strings.TrimSpace(m[1])
		if project != "" {
			result.Project = &project
		}
	}

	// Extract hours: the first number, with or without an hour unit. A bare
	// four-digit number that is the year of the extracted date is the date
	// itself, so hours stay unset rather than becoming e.g. 2025.
	hoursRegex := regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:h|hr|hrs|hour|hours)?\b`)
	if m := hoursRegex.FindStringSubmatch(s); m != nil {
		number := m[1]
		yearOfDate := result.Date != "" && strings.HasPrefix(result.Date, number) && len(number) == 4
		if !yearOfDate {
			if value, err := strconv.ParseFloat(number, 64); err == nil {
				result.Hours = &value
			}
		}
	}

	result.Employee = leadingName(s)

	return result
}

// leadingName collects up to MaxNameTokens words from the front of the
// line, stopping at the first date, number, keyword or hour unit.
func leadingName(s string) string {
	isoRegex := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	var tokens []string
	for _, token := range strings.Fields(s) {
		if isoRegex.MatchString(token) {
			break
		}
		if strings.ContainsAny(token, "0123456789") {
			break
		}
		word := strings.Trim(strings.ToLower(token), ",.;:")
		if isKeyword(word) || isHourUnit(word) {
			break
		}
		tokens = append(tokens, token)
		if len(tokens) >= MaxNameTokens {
			break
		}
	}
	return strings.Join(tokens, " ")
}

// isKeyword checks if a word introduces a non-name clause
func isKeyword(word string) bool {
	keywords := map[string]bool{
		"on":  true,
		"for": true,
		"at":  true,
	}
	return keywords[word]
}

// isHourUnit checks if a word is one of the recognized hour units
func isHourUnit(word string) bool {
	units := map[string]bool{
		"h":     true,
		"hr":    true,
		"hrs":   true,
		"hour":  true,
		"hours": true,
	}
	return units[word]
}
