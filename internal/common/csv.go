// Package common provides the CSV boundary shared by the CLI commands:
// reading the caller's existing-transaction snapshot and writing batch
// results.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"stmt-engine/internal/logging"
	"stmt-engine/internal/models"
)

var log logging.Logger = logging.Nop()

// Delimiter is the CSV field separator used for both reading and writing.
var Delimiter rune = ','

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// SetDelimiter configures the delimiter for CSV input and output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := csv.NewWriter(out)
		writer.Comma = Delimiter
		return gocsv.NewSafeCSVWriter(writer)
	})
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		reader := csv.NewReader(in)
		reader.Comma = Delimiter
		return reader
	})
}

// transactionRow is the CSV projection of a transaction. Dates are
// YYYY-MM-DD; the balance column is empty for formats without one.
type transactionRow struct {
	ID              string `csv:"ID"`
	Date            string `csv:"Date"`
	Description     string `csv:"Description"`
	Category        string `csv:"Category"`
	Amount          string `csv:"Amount"`
	Type            string `csv:"Type"`
	Balance         string `csv:"Balance"`
	Bank            string `csv:"Bank"`
	Account         string `csv:"Account"`
	StatementPeriod string `csv:"StatementPeriod"`
	ProcessedDate   string `csv:"ProcessedDate"`
	SourceFile      string `csv:"SourceFile"`
}

// existingRow is the minimal snapshot shape for deduplication. Extra
// columns in the caller's file are ignored by gocsv.
type existingRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
}

// WriteTransactionsToCSV writes transactions to a CSV file in the
// standardized format. All commands use this to keep output consistent.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	log.Info("Writing transactions to CSV file",
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(transactions)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]transactionRow, 0, len(transactions))
	for _, txn := range transactions {
		rows = append(rows, rowFromTransaction(txn))
	}

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

// ReadExistingTransactions loads the identity-triple snapshot used for
// duplicate checking. A failure here is fatal to the batch: the caller
// must not silently continue without its history.
func ReadExistingTransactions(csvFile string) ([]models.ExistingRecord, error) {
	log.Info("Reading existing transactions", logging.Field{Key: "file", Value: csvFile})

	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("error opening snapshot file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []existingRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing snapshot file: %w", err)
	}

	records := make([]models.ExistingRecord, 0, len(rows))
	for _, row := range rows {
		date, err := parseSnapshotDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("error parsing snapshot date %q: %w", row.Date, err)
		}
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil {
			return nil, fmt.Errorf("error parsing snapshot amount %q: %w", row.Amount, err)
		}
		records = append(records, models.ExistingRecord{
			Date:        date,
			Description: row.Description,
			Amount:      amount,
		})
	}

	log.Info("Loaded existing transactions", logging.Field{Key: "count", Value: len(records)})
	return records, nil
}

func rowFromTransaction(txn models.Transaction) transactionRow {
	row := transactionRow{
		ID:              txn.ID,
		Date:            txn.Date.Format("2006-01-02"),
		Description:     txn.Description,
		Category:        txn.Category,
		Amount:          txn.Amount.StringFixed(2),
		Type:            txn.Type,
		Bank:            txn.Bank,
		Account:         txn.Account,
		StatementPeriod: txn.StatementPeriod,
		ProcessedDate:   txn.ProcessedDate.Format(time.RFC3339),
		SourceFile:      txn.SourceFile,
	}
	if txn.Balance.Valid {
		row.Balance = txn.Balance.Decimal.StringFixed(2)
	}
	return row
}

func parseSnapshotDate(value string) (time.Time, error) {
	formats := []string{"2006-01-02", "01/02/2006", time.RFC3339}
	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return models.Date(t.Year(), t.Month(), t.Day()), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format")
}
