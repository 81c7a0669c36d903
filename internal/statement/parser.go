// Package statement contains the per-format transaction parsers and the
// factory that selects one for a detected format.
package statement

import (
	"time"

	"stmt-engine/internal/detect"
	"stmt-engine/internal/logging"
	"stmt-engine/internal/models"
)

// Clock supplies the current time. Parsers use it for year inference and
// for the ProcessedDate stamp; tests inject a fixed clock.
type Clock func() time.Time

// Parser maps a normalized line sequence into candidate transactions.
// Implementations never fail: unmatched lines are skipped, and an empty
// result is a valid outcome.
type Parser interface {
	// Format reports which detected format this parser handles.
	Format() detect.Format

	// Parse extracts transactions from the given lines. sourceFile
	// identifies the originating document and is stamped on every record.
	Parse(lines []string, sourceFile string) []models.Transaction
}

// ForFormat returns the parser for a detected format. Formats that are
// recognized but have no dedicated parser, and Unknown, fall back to the
// generic parser; the detected bank name is still carried through so the
// records stay attributable.
func ForFormat(format detect.Format, clock Clock, logger logging.Logger) Parser {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = logging.Nop()
	}

	switch format {
	case detect.CapitalOne:
		return &CapitalOneParser{clock: clock, logger: logger}
	case detect.Chase:
		return &ChaseParser{clock: clock, logger: logger}
	default:
		return &GenericParser{format: format, clock: clock, logger: logger}
	}
}
