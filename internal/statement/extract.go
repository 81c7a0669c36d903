package statement

import (
	"regexp"
	"strings"
	"time"
)

// firstSubmatch tries each pattern in order against text and returns the
// submatches of the first one that hits. First success wins; when every
// candidate fails the result is nil and the caller leaves the field empty.
func firstSubmatch(text string, patterns []*regexp.Regexp) []string {
	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return m
		}
	}
	return nil
}

// containsAny reports whether line contains any of the given markers,
// case-insensitively.
func containsAny(line string, markers ...string) bool {
	lower := strings.ToLower(line)
	for _, marker := range markers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// monthIndex resolves an English three-letter month abbreviation.
var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// validCalendarDay reports whether the month/day pair can be a real date.
// Parsers skip lines that would otherwise roll over into a different month.
func validCalendarDay(month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

// yearPattern matches a standalone four-digit token, used by formats that
// print the year once per document instead of on every line.
var yearPattern = regexp.MustCompile(`\b(\d{4})\b`)
