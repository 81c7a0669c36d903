// Package models provides the data structures shared by the statement engine.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a single normalized record recovered from statement text.
// Instances are immutable once a parser emits them, except for Category,
// which the categorizer assigns exactly once.
type Transaction struct {
	ID              string              // generated at parse time, never reused
	Date            time.Time           // transaction date, midnight UTC
	Description     string              // free-form, trimmed
	Category        string              // empty until categorization runs
	Amount          decimal.Decimal     // positive = inflow, negative = outflow
	Type            string              // "Income" or "Expense", derived from Amount
	Balance         decimal.NullDecimal // running balance, only for formats that report one
	Bank            string              // canonical bank name, or "Unknown"
	Account         string              // trailing account-number fragment when recoverable
	StatementPeriod string              // human-readable date range, best effort
	ProcessedDate   time.Time           // time of parsing, not of the transaction
	SourceFile      string              // identifier of the originating document
}

// NewID returns a fresh opaque transaction identifier.
func NewID() string {
	return uuid.NewString()
}

// TypeForAmount derives the transaction type from the amount's sign.
// Type is a pure function of the sign: Income iff amount >= 0.
func TypeForAmount(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return TypeExpense
	}
	return TypeIncome
}

// IdentityKey returns the key used to decide whether two transactions
// represent the same real-world event: date, description and amount.
// ID, source file and balance are deliberately excluded.
func (t Transaction) IdentityKey() string {
	return identityKey(t.Date, t.Description, t.Amount)
}

// ExistingRecord is the caller-supplied snapshot shape used for
// deduplication. It carries only the identity triple.
type ExistingRecord struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// IdentityKey returns the same composite key as Transaction.IdentityKey.
func (r ExistingRecord) IdentityKey() string {
	return identityKey(r.Date, r.Description, r.Amount)
}

// identityKey builds the composite dedup key. Amounts go through
// StringFixed(2) so that values parsed from different textual forms of the
// same number always collide.
func identityKey(date time.Time, description string, amount decimal.Decimal) string {
	return date.Format("2006-01-02") + "|" + description + "|" + amount.StringFixed(2)
}

// ParseAmount converts a statement amount token to a decimal value.
// It tolerates dollar signs, thousands separators, embedded spaces and a
// leading plus. A minus sign anywhere in the token makes the result
// negative. Unparseable input yields zero.
func ParseAmount(token string) decimal.Decimal {
	cleaned := strings.TrimSpace(token)
	negative := strings.Contains(cleaned, "-")

	replacer := strings.NewReplacer("$", "", ",", "", "+", "", "-", "", " ", "")
	cleaned = replacer.Replace(cleaned)

	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		dec = dec.Neg()
	}
	return dec
}

// Date constructs a calendar date at midnight UTC. All parsers route
// through this so that identity keys compare cleanly.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
