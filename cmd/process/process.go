// Package process implements the batch processing command.
package process

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"stmt-engine/cmd/root"
	"stmt-engine/internal/categorizer"
	"stmt-engine/internal/common"
	"stmt-engine/internal/config"
	"stmt-engine/internal/engine"
	"stmt-engine/internal/logging"
	"stmt-engine/internal/models"
)

var (
	existingFile string
	noCategorize bool
	noDedupe     bool
)

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Process a directory of extracted statement text files",
	Long: `Process reads every .txt file from the input directory (the output of an
external OCR step), detects each statement's format, parses it into
transactions, categorizes them and filters out records already present in
the existing-transactions snapshot. The surviving transactions are written
to the output CSV.

Each file is processed independently: a failure in one statement is
reported and does not abort the batch.

Example:
  stmt-engine process -i extracted/ -o transactions.csv --existing history.csv`,
	Run: processFunc,
}

func init() {
	Cmd.Flags().StringVar(&existingFile, "existing", "", "CSV snapshot of previously recorded transactions")
	Cmd.Flags().BoolVar(&noCategorize, "no-categorize", false, "Leave transaction categories empty")
	Cmd.Flags().BoolVar(&noDedupe, "no-dedupe", false, "Skip the duplicate check against the snapshot")
}

func processFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Both input directory (-i) and output file (-o) are required")
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		root.Log.Fatalf("Error loading configuration: %v", err)
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	docs, err := loadDocuments(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input directory: %v", err)
	}
	if len(docs) == 0 {
		root.Log.Warn("No .txt files found in input directory")
	}

	opts := engine.Options{
		AutoCategory:   cfg.Engine.AutoCategory && !noCategorize,
		DuplicateCheck: cfg.Engine.DuplicateCheck && !noDedupe,
	}

	// The snapshot is loaded once up front. Failing to load it aborts the
	// batch; running a duplicate check against nothing would silently
	// re-import history.
	var existing []models.ExistingRecord
	if opts.DuplicateCheck && existingFile != "" {
		existing, err = common.ReadExistingTransactions(existingFile)
		if err != nil {
			root.Log.Fatalf("Error loading existing transactions: %v", err)
		}
	}

	rules, err := categorizer.LoadRules(cfg.Categories.File, logger)
	if err != nil {
		root.Log.Fatalf("Error loading category rules: %v", err)
	}

	eng := engine.New(logger,
		engine.WithCategorizer(categorizer.New(rules, logger)),
		engine.WithMinTextLength(cfg.Engine.MinTextLength),
	)

	result, err := eng.Process(context.Background(), docs, existing, opts)
	if err != nil {
		root.Log.Fatalf("Batch processing aborted: %v", err)
	}

	for _, warning := range result.Warnings {
		root.Log.Warnf("%s: %s", warning.Source, warning.Message)
	}
	for _, procErr := range result.Errors {
		root.Log.Errorf("%s: %s", procErr.Source, procErr.Message)
	}

	if err := common.WriteTransactionsToCSV(result.Transactions, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing output: %v", err)
	}

	summary := engine.Summary(result.Transactions)
	root.Log.Infof("Processed %d files with %d transactions (income %s, expenses %s, net %s). Errors: %d",
		result.ProcessedCount, summary.Count,
		summary.Income.StringFixed(2), summary.Expenses.StringFixed(2), summary.Net.StringFixed(2),
		result.ErrorCount)
}

// loadDocuments reads every .txt file in dir into a source document, using
// the file name as the source identifier.
func loadDocuments(dir string) ([]engine.SourceDocument, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var docs []engine.SourceDocument
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, engine.SourceDocument{
			ID:   entry.Name(),
			Text: string(data),
		})
	}
	return docs, nil
}
