// Package detect classifies statement text into one of the known formats.
package detect

import (
	"strings"

	"stmt-engine/internal/models"
)

// Format identifies the statement layout of an issuing bank.
type Format string

const (
	CapitalOne    Format = "capital-one"
	Chase         Format = "chase"
	BankOfAmerica Format = "bank-of-america"
	WellsFargo    Format = "wells-fargo"
	Unknown       Format = "unknown"
)

// formatMarkers pairs a format with the fixed substrings that identify it.
// Order matters: the first format with a matching marker wins.
type formatMarkers struct {
	format  Format
	markers []string
}

var markerTable = []formatMarkers{
	{CapitalOne, []string{"capitalone", "capital one", "360 checking"}},
	{Chase, []string{"chase", "jpmorgan"}},
	{BankOfAmerica, []string{"bank of america", "bofa"}},
	{WellsFargo, []string{"wells fargo"}},
}

// Detect classifies statement text by case-insensitive marker search over
// the fixed priority table. Absence of a match is a normal outcome, not a
// failure: it yields Unknown.
func Detect(text string) Format {
	lower := strings.ToLower(text)
	for _, entry := range markerTable {
		for _, marker := range entry.markers {
			if strings.Contains(lower, marker) {
				return entry.format
			}
		}
	}
	return Unknown
}

// BankName returns the canonical bank label for a format.
func (f Format) BankName() string {
	switch f {
	case CapitalOne:
		return models.BankCapitalOne
	case Chase:
		return models.BankChase
	case BankOfAmerica:
		return models.BankBankOfAmerica
	case WellsFargo:
		return models.BankWellsFargo
	default:
		return models.BankUnknown
	}
}
