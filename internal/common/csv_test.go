package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stmt-engine/internal/models"
)

func sampleTransaction() models.Transaction {
	return models.Transaction{
		ID:              models.NewID(),
		Date:            models.Date(2025, time.September, 3),
		Description:     "STARBUCKS",
		Category:        "Food",
		Amount:          decimal.RequireFromString("-5.25"),
		Type:            models.TypeExpense,
		Balance:         decimal.NewNullDecimal(decimal.RequireFromString("100.00")),
		Bank:            models.BankCapitalOne,
		Account:         "12345678901",
		StatementPeriod: "Sep 1 - Sep 30, 2025",
		ProcessedDate:   time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC),
		SourceFile:      "sep.txt",
	}
}

func TestWriteTransactionsToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "transactions.csv")

	err := WriteTransactionsToCSV([]models.Transaction{sampleTransaction()}, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "StatementPeriod")
	assert.Contains(t, lines[1], "2025-09-03")
	assert.Contains(t, lines[1], "STARBUCKS")
	assert.Contains(t, lines[1], "-5.25")
	assert.Contains(t, lines[1], "100.00")
	assert.Contains(t, lines[1], "Capital One")
}

func TestWriteTransactionsToCSVEmptyBalanceColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")

	txn := sampleTransaction()
	txn.Balance = decimal.NullDecimal{}

	require.NoError(t, WriteTransactionsToCSV([]models.Transaction{txn}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "100.00")
}

func TestWriteTransactionsToCSVNilSlice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")

	require.NoError(t, WriteTransactionsToCSV(nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// Header only.
	assert.Contains(t, string(data), "Description")
}

func TestReadExistingTransactions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.csv")
	content := "Date,Description,Amount\n2025-09-03,STARBUCKS,-5.25\n09/04/2025,PAYROLL,1200.00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	records, err := ReadExistingTransactions(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, models.Date(2025, time.September, 3), records[0].Date)
	assert.Equal(t, "STARBUCKS", records[0].Description)
	assert.True(t, records[0].Amount.Equal(decimal.RequireFromString("-5.25")))
	assert.Equal(t, models.Date(2025, time.September, 4), records[1].Date)
}

func TestReadExistingTransactionsIgnoresExtraColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.csv")
	content := "ID,Date,Description,Amount,Bank\nabc,2025-09-03,STARBUCKS,-5.25,Capital One\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	records, err := ReadExistingTransactions(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "STARBUCKS", records[0].Description)
}

func TestReadExistingTransactionsMissingFileFails(t *testing.T) {
	_, err := ReadExistingTransactions(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestReadExistingTransactionsBadDateFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.csv")
	content := "Date,Description,Amount\nyesterday,STARBUCKS,-5.25\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := ReadExistingTransactions(path)
	assert.Error(t, err)
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	txn := sampleTransaction()

	require.NoError(t, WriteTransactionsToCSV([]models.Transaction{txn}, path))

	records, err := ReadExistingTransactions(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// The snapshot shape preserves exactly the identity triple.
	assert.Equal(t, txn.IdentityKey(), records[0].IdentityKey())
}
