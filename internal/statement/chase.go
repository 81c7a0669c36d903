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

// ChaseParser handles the sectioned ledger layout: deposits and
// withdrawals live in separate sections, lines carry no sign and no
// running balance, and the year is printed once per document.
//
// Transaction lines look like:
//
//	12/05 Payroll $1,200.00
type ChaseParser struct {
	clock  Clock
	logger logging.Logger
}

var chaseTxnPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})\s+(.+?)\s+\$?([\d,]+\.\d{2})$`)

var chasePeriodPattern = regexp.MustCompile(`(?i)(\w+\s+\d{1,2},?\s*\d{4})\s*through\s*(\w+\s+\d{1,2},?\s*\d{4})`)

var chaseAccountPattern = regexp.MustCompile(`(?i)Account\s*(?:Number)?:?\s*(\d{12,15})`)

func (p *ChaseParser) Format() detect.Format {
	return detect.Chase
}

func (p *ChaseParser) Parse(lines []string, sourceFile string) []models.Transaction {
	text := strings.Join(lines, "\n")

	var period string
	if m := chasePeriodPattern.FindStringSubmatch(text); m != nil {
		period = m[1] + " - " + m[2]
	}

	var account string
	if m := chaseAccountPattern.FindStringSubmatch(text); m != nil {
		account = m[1]
	}

	now := p.clock()

	// The year appears once in the header, not on transaction lines.
	year := now.Year()
	if m := yearPattern.FindStringSubmatch(text); m != nil {
		year, _ = strconv.Atoi(m[1])
	}

	state := sectionNeutral
	var transactions []models.Transaction

	for _, line := range lines {
		next, isMarker := state.transition(line)
		if next != state {
			p.logger.Debug("Section transition",
				logging.Field{Key: "from", Value: state.String()},
				logging.Field{Key: "to", Value: next.String()})
		}
		state = next
		if isMarker {
			continue
		}

		// Lines outside deposit/withdrawal sections are never
		// transactions, even when they match the line syntax.
		if !state.inTransactionSection() {
			continue
		}

		if containsAny(line, "Page", "JPMorgan", "Total") {
			continue
		}

		m := chaseTxnPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		description := strings.TrimSpace(m[3])

		if !validCalendarDay(month, day) {
			continue
		}

		amount := models.ParseAmount(m[4])
		if state == sectionWithdrawals {
			amount = amount.Abs().Neg()
		}

		txn := models.Transaction{
			ID:              models.NewID(),
			Date:            models.Date(year, time.Month(month), day),
			Description:     description,
			Amount:          amount,
			Type:            models.TypeForAmount(amount),
			Bank:            models.BankChase,
			Account:         account,
			StatementPeriod: period,
			ProcessedDate:   now,
			SourceFile:      sourceFile,
		}
		transactions = append(transactions, txn)

		p.logger.Debug("Parsed transaction",
			logging.Field{Key: "date", Value: txn.Date.Format("2006-01-02")},
			logging.Field{Key: "section", Value: state.String()},
			logging.Field{Key: "amount", Value: amount.StringFixed(2)})
	}

	p.logger.Info("Parsed Chase statement",
		logging.Field{Key: "source", Value: sourceFile},
		logging.Field{Key: "count", Value: len(transactions)})

	return transactions
}
