package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDay = "2006-01-02"

// Resolver turns natural-language date phrases into YYYY-MM-DD strings.
// Timezone is an IANA name used to decide what "today" means; BaseDate
// pins the anchor day directly, which keeps relative phrases deterministic
// in tests. The zero value anchors on the current day in local time.
type Resolver struct {
	Timezone string
	BaseDate string
}

// ResolvePhrase resolves a single phrase with an explicit timezone and base
// date, both optional.
func ResolvePhrase(phrase, timezone, baseDate string) string {
	return Resolver{Timezone: timezone, BaseDate: baseDate}.Resolve(phrase)
}

// Resolve parses various date phrase formats
// Supported formats:
// - YYYY-MM-DD (returned as-is)
// - today / yesterday / tomorrow
// - Month-name dates (e.g., "September 9 2025", "9 Sept, 2025")
// - MM/DD/YYYY (e.g., "09/09/2025")
// - this/next/last weekday (e.g., "next friday")
// Unrecognized phrases resolve to "".
func (r Resolver) Resolve(phrase string) string {
	s := strings.ToLower(strings.TrimSpace(phrase))
	if s == "" {
		return ""
	}

	isoRegex := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	if isoRegex.MatchString(s) {
		return s
	}

	anchor := r.anchor()

	switch s {
	case "today", "todays date", "today's date":
		return anchor.Format(isoDay)
	case "yesterday":
		return anchor.AddDate(0, 0, -1).Format(isoDay)
	case "tomorrow":
		return anchor.AddDate(0, 0, 1).Format(isoDay)
	}

	if date := parseMonthDayYear(s); date != "" {
		return date
	}
	if date := parseDayMonthYear(s); date != "" {
		return date
	}
	if date := parseNumericDate(s); date != "" {
		return date
	}
	if date := parseWeekdayPhrase(s, anchor); date != "" {
		return date
	}

	return ""
}

// anchor returns the day relative phrases are resolved against.
func (r Resolver) anchor() time.Time {
	if base := strings.TrimSpace(r.BaseDate); base != "" {
		if t, err := time.Parse(isoDay, base); err == nil {
			return t
		}
	}
	return time.Now().In(r.location())
}

// location resolves the configured timezone, falling back to the system
// timezone when the name is empty or unknown.
func (r Resolver) location() *time.Location {
	if tz := strings.TrimSpace(r.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

// parseMonthDayYear parses "September 9 2025", "Sept 9th, 2025" style dates
func parseMonthDayYear(s string) string {
	dateRegex := regexp.MustCompile(`\b([a-zA-Z]+)\s+(\d{1,2})(?:st|nd|rd|th)?\s*,?\s*(\d{4})\b`)
	matches := dateRegex.FindStringSubmatch(s)
	if matches == nil {
		return ""
	}

	month, ok := monthNumber(matches[1])
	if !ok {
		return ""
	}
	day, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])
	if day < 1 || day > 31 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// parseDayMonthYear parses "9 September 2025", "9th Sept 2025" style dates
func parseDayMonthYear(s string) string {
	dateRegex := regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+([a-zA-Z]+)\s*(\d{4})\b`)
	matches := dateRegex.FindStringSubmatch(s)
	if matches == nil {
		return ""
	}

	month, ok := monthNumber(matches[2])
	if !ok {
		return ""
	}
	day, _ := strconv.Atoi(matches[1])
	year, _ := strconv.Atoi(matches[3])
	if day < 1 || day > 31 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// parseNumericDate parses MM/DD/YYYY dates
func parseNumericDate(s string) string {
	dateRegex := regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	matches := dateRegex.FindStringSubmatch(s)
	if matches == nil {
		return ""
	}

	month, _ := strconv.Atoi(matches[1])
	day, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// parseWeekdayPhrase parses "this monday", "next friday", "last sunday".
// "this" means the coming occurrence (or the anchor itself when it is that
// weekday), "next" skips one week ahead of that, "last" goes one week back.
func parseWeekdayPhrase(s string, anchor time.Time) string {
	phraseRegex := regexp.MustCompile(`\b(this|next|last)\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	matches := phraseRegex.FindStringSubmatch(s)
	if matches == nil {
		return ""
	}

	target := weekdayNumber(matches[2])
	current := mondayBased(anchor.Weekday())
	offset := ((target-current)%7 + 7) % 7
	switch matches[1] {
	case "next":
		offset += 7
	case "last":
		offset -= 7
	}
	return anchor.AddDate(0, 0, offset).Format(isoDay)
}

// monthNumber maps month names and common abbreviations to 1..12
func monthNumber(name string) (int, bool) {
	months := map[string]int{
		"january": 1, "jan": 1,
		"february": 2, "feb": 2,
		"march": 3, "mar": 3,
		"april": 4, "apr": 4,
		"may":  5,
		"june": 6, "jun": 6,
		"july": 7, "jul": 7,
		"august": 8, "aug": 8,
		"september": 9, "sep": 9, "sept": 9,
		"october": 10, "oct": 10,
		"november": 11, "nov": 11,
		"december": 12, "dec": 12,
	}
	n, ok := months[name]
	return n, ok
}

// weekdayNumber maps weekday names to Monday=0 .. Sunday=6
func weekdayNumber(name string) int {
	weekdays := map[string]int{
		"monday":    0,
		"tuesday":   1,
		"wednesday": 2,
		"thursday":  3,
		"friday":    4,
		"saturday":  5,
		"sunday":    6,
	}
	return weekdays[name]
}

// mondayBased converts Go's Sunday-first weekday to Monday=0 .. Sunday=6
func mondayBased(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
