package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"plain", "5.25", "5.25"},
		{"dollar sign", "$5.25", "5.25"},
		{"leading plus", "+$1,200.00", "1200"},
		{"minus before dollar", "-$900.00", "-900"},
		{"minus with space", "- $5.25", "-5.25"},
		{"thousands separator", "$12,345.67", "12345.67"},
		{"garbage", "N/A", "0"},
		{"empty", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.token)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"ParseAmount(%q) = %s, want %s", tt.token, got, tt.want)
		})
	}
}

func TestTypeForAmount(t *testing.T) {
	assert.Equal(t, TypeIncome, TypeForAmount(decimal.NewFromFloat(12.50)))
	assert.Equal(t, TypeIncome, TypeForAmount(decimal.Zero))
	assert.Equal(t, TypeExpense, TypeForAmount(decimal.NewFromFloat(-0.01)))
}

func TestIdentityKey(t *testing.T) {
	date := Date(2025, time.September, 3)

	txn := Transaction{
		ID:          NewID(),
		Date:        date,
		Description: "STARBUCKS",
		Amount:      decimal.NewFromFloat(-5.25),
		SourceFile:  "statement_sep.txt",
	}
	record := ExistingRecord{
		Date:        date,
		Description: "STARBUCKS",
		Amount:      decimal.RequireFromString("-5.250"),
	}

	// ID, source file and balance are excluded; trailing zeros collapse.
	assert.Equal(t, record.IdentityKey(), txn.IdentityKey())

	other := record
	other.Amount = decimal.NewFromFloat(-5.26)
	assert.NotEqual(t, other.IdentityKey(), txn.IdentityKey())
}

func TestNewIDUnique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}

func TestDateIsMidnightUTC(t *testing.T) {
	d := Date(2024, time.December, 3)
	assert.Equal(t, "2024-12-03T00:00:00Z", d.Format(time.RFC3339))
}
