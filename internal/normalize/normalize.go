// Package normalize turns raw extracted text into the line sequence the
// format parsers consume.
package normalize

import "strings"

// Lines splits raw statement text into trimmed, non-empty lines.
// Original order is preserved; the sectioned parsers depend on it.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines
}
