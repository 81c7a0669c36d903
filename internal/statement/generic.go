package statement

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"stmt-engine/internal/detect"
	"stmt-engine/internal/logging"
	"stmt-engine/internal/models"
)

// GenericParser is the best-effort fallback used when no dedicated parser
// exists for the detected format. It favors recall over precision: loose
// date+description+amount patterns, no section awareness, no balance and
// no period or account extraction.
type GenericParser struct {
	format detect.Format
	clock  Clock
	logger logging.Logger
}

// Loose line patterns, tried in order per line. The first supports an
// explicit two- or four-digit year; the second assumes the current year.
var genericTxnPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d{1,2})[/ -](\d{1,2})[/ -](\d{2,4})\s+(.+?)\s+([+-]?\$?[\d,]+\.\d{2})$`),
	regexp.MustCompile(`^(\d{1,2})[/ -](\d{1,2})\s+(.+?)\s+([+-]?\$?[\d,]+\.\d{2})$`),
}

func (p *GenericParser) Format() detect.Format {
	return p.format
}

func (p *GenericParser) Parse(lines []string, sourceFile string) []models.Transaction {
	now := p.clock()
	bank := p.format.BankName()

	var transactions []models.Transaction

	for _, line := range lines {
		m := firstSubmatch(line, genericTxnPatterns)
		if m == nil {
			continue
		}

		var yearToken, description, amountToken string
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if len(m) == 6 {
			yearToken, description, amountToken = m[3], m[4], m[5]
		} else {
			description, amountToken = m[3], m[4]
		}

		if !validCalendarDay(month, day) {
			continue
		}

		year := expandYear(yearToken, now)
		amount := models.ParseAmount(amountToken)

		txn := models.Transaction{
			ID:            models.NewID(),
			Date:          models.Date(year, time.Month(month), day),
			Description:   strings.TrimSpace(description),
			Amount:        amount,
			Type:          models.TypeForAmount(amount),
			Bank:          bank,
			ProcessedDate: now,
			SourceFile:    sourceFile,
		}
		transactions = append(transactions, txn)

		p.logger.Debug("Parsed transaction",
			logging.Field{Key: "date", Value: txn.Date.Format("2006-01-02")},
			logging.Field{Key: "amount", Value: amount.StringFixed(2)})
	}

	p.logger.Info("Parsed statement with generic fallback",
		logging.Field{Key: "source", Value: sourceFile},
		logging.Field{Key: "bank", Value: bank},
		logging.Field{Key: "count", Value: len(transactions)})

	return transactions
}

// expandYear resolves an optional year token: four digits are taken as-is,
// two digits are expanded to 2000+yy, and a missing token defaults to the
// current year.
func expandYear(token string, now time.Time) int {
	switch len(token) {
	case 4:
		year, _ := strconv.Atoi(token)
		return year
	case 2:
		year, _ := strconv.Atoi(token)
		return 2000 + year
	default:
		return now.Year()
	}
}
