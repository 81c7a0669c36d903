package statement

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"stmt-engine/internal/detect"
	"stmt-engine/internal/logging"
	"stmt-engine/internal/models"
)

// CapitalOneParser handles the single-running-balance ledger layout.
//
// Transaction lines look like:
//
//	Sep 3 STARBUCKS Debit $5.25 $100.00
//	Sep 5 PAYROLL ACME Credit +$1,200.00 $1,294.75
//
// The trailing column is the running balance. Lines carry no year; it is
// inferred from the processing date.
type CapitalOneParser struct {
	clock  Clock
	logger logging.Logger
}

var capitalOneTxnPattern = regexp.MustCompile(
	`(?i)^(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+(\d{1,2})\s+(.+?)(?:\s+(Credit|Debit))?\s*([+-]?\s*\$?[\d,]+\.\d{2})\s+\$?([\d,]+\.\d{2})$`)

// Statement period candidates, tried in order until one matches.
var capitalOnePeriodPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Statement Period[ \t]*:?[ \t]*([\w ,-]+)`),
	regexp.MustCompile(`(?i)(\w{3,9}\.?\s+\d{1,2})\s*[-–]\s*(\w{3,9}\.?\s+\d{1,2},?\s*\d{4})`),
}

// Account number candidates, most specific first.
var capitalOneAccountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)360 Checking.*?(\d{11})`),
	regexp.MustCompile(`(?i)Account.*?(\d{11})`),
	regexp.MustCompile(`(\d{11})`),
}

func (p *CapitalOneParser) Format() detect.Format {
	return detect.CapitalOne
}

func (p *CapitalOneParser) Parse(lines []string, sourceFile string) []models.Transaction {
	text := strings.Join(lines, "\n")
	period := extractCapitalOnePeriod(text)
	account := extractCapitalOneAccount(text)

	now := p.clock()
	var transactions []models.Transaction

	for _, line := range lines {
		// Headers, balances and boilerplate are expected noise.
		if containsAny(line, "Opening Balance", "Closing Balance", "Page", "capitalone.com") {
			continue
		}

		m := capitalOneTxnPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		month := monthIndex[strings.ToLower(m[1])]
		day, _ := strconv.Atoi(m[2])
		description := strings.TrimSpace(m[3])
		tag := m[4]
		amountToken := m[5]
		balanceToken := m[6]

		if !validCalendarDay(int(month), day) {
			continue
		}

		amount := models.ParseAmount(amountToken)
		// An explicit Debit tag forces the sign even when the amount token
		// itself carries none.
		if strings.EqualFold(tag, "Debit") {
			amount = amount.Abs().Neg()
		}

		// Statements span year boundaries without printing the year: a
		// month after the current one must belong to the previous year.
		year := now.Year()
		if month > now.Month() {
			year--
		}

		txn := models.Transaction{
			ID:              models.NewID(),
			Date:            models.Date(year, month, day),
			Description:     description,
			Amount:          amount,
			Type:            models.TypeForAmount(amount),
			Balance:         decimal.NewNullDecimal(models.ParseAmount(balanceToken)),
			Bank:            models.BankCapitalOne,
			Account:         account,
			StatementPeriod: period,
			ProcessedDate:   now,
			SourceFile:      sourceFile,
		}
		transactions = append(transactions, txn)

		p.logger.Debug("Parsed transaction",
			logging.Field{Key: "date", Value: txn.Date.Format("2006-01-02")},
			logging.Field{Key: "description", Value: description},
			logging.Field{Key: "amount", Value: amount.StringFixed(2)})
	}

	p.logger.Info("Parsed Capital One statement",
		logging.Field{Key: "source", Value: sourceFile},
		logging.Field{Key: "count", Value: len(transactions)})

	return transactions
}

func extractCapitalOnePeriod(text string) string {
	m := firstSubmatch(text, capitalOnePeriodPatterns)
	if m == nil {
		return ""
	}
	period := strings.TrimSpace(strings.TrimPrefix(m[0], "Statement Period"))
	return strings.TrimSpace(strings.TrimPrefix(period, ":"))
}

func extractCapitalOneAccount(text string) string {
	m := firstSubmatch(text, capitalOneAccountPatterns)
	if m == nil {
		return ""
	}
	return m[1]
}
