// Package engine drives detection, parsing, categorization and
// deduplication over a collection of source documents.
package engine

import (
	"context"

	"github.com/shopspring/decimal"

	"stmt-engine/internal/categorizer"
	"stmt-engine/internal/dedupe"
	"stmt-engine/internal/detect"
	"stmt-engine/internal/logging"
	"stmt-engine/internal/models"
	"stmt-engine/internal/normalize"
	"stmt-engine/internal/parsererror"
	"stmt-engine/internal/statement"
)

// DefaultMinTextLength is the minimum extracted-text size below which a
// document is treated as an extraction failure rather than parsed.
const DefaultMinTextLength = 100

// SourceDocument is one unit of input: raw text recovered by the external
// OCR collaborator, plus the identifier of the originating document.
type SourceDocument struct {
	ID   string
	Text string
}

// Options control the optional stages of a batch run.
type Options struct {
	// AutoCategory populates each transaction's category from its
	// description. When false the category is left empty for the caller.
	AutoCategory bool

	// DuplicateCheck filters the aggregated result against the
	// caller-supplied existing snapshot.
	DuplicateCheck bool
}

// ProcessingError records a contained per-document failure.
type ProcessingError struct {
	Source  string
	Message string
}

// ProcessingWarning records a non-failure outcome the caller should see,
// such as a document yielding zero transactions.
type ProcessingWarning struct {
	Source  string
	Message string
}

// BatchResult aggregates the outcome of one batch invocation.
type BatchResult struct {
	ProcessedCount int
	ErrorCount     int
	Transactions   []models.Transaction
	Errors         []ProcessingError
	Warnings       []ProcessingWarning
}

// Engine is the batch orchestrator. Its configuration (clock, categorizer
// rules, thresholds) is read-only during a run, so a single Engine may be
// reused across batches.
type Engine struct {
	clock         statement.Clock
	categorizer   *categorizer.Categorizer
	minTextLength int
	logger        logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for year inference and
// ProcessedDate stamps.
func WithClock(clock statement.Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithCategorizer overrides the default keyword categorizer.
func WithCategorizer(c *categorizer.Categorizer) Option {
	return func(e *Engine) { e.categorizer = c }
}

// WithMinTextLength overrides the insufficient-text threshold.
func WithMinTextLength(n int) Option {
	return func(e *Engine) { e.minTextLength = n }
}

// New creates an Engine with the given logger and options.
func New(logger logging.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = logging.Nop()
	}
	e := &Engine{
		minTextLength: DefaultMinTextLength,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.categorizer == nil {
		e.categorizer = categorizer.New(nil, logger)
	}
	return e
}

// Process runs the full pipeline over docs. Per-document failures are
// contained: they are recorded in the result's Errors and never abort the
// batch. Only cancellation of ctx terminates early, returning the error
// alongside the partial result.
//
// The existing snapshot is taken as-is at entry and never re-read; the
// deduplication pass runs once over the aggregated candidate set after the
// document loop, so duplicates are caught across documents too.
func (e *Engine) Process(ctx context.Context, docs []SourceDocument, existing []models.ExistingRecord, opts Options) (BatchResult, error) {
	result := BatchResult{}

	e.logger.Info("Starting batch processing",
		logging.Field{Key: "documents", Value: len(docs)},
		logging.Field{Key: "auto_category", Value: opts.AutoCategory},
		logging.Field{Key: "duplicate_check", Value: opts.DuplicateCheck})

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		transactions, err := e.processDocument(doc)
		if err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, ProcessingError{
				Source:  doc.ID,
				Message: err.Error(),
			})
			e.logger.WithError(err).Error("Document processing failed",
				logging.Field{Key: "source", Value: doc.ID})
			continue
		}

		result.ProcessedCount++

		if len(transactions) == 0 {
			result.Warnings = append(result.Warnings, ProcessingWarning{
				Source:  doc.ID,
				Message: "no transactions found",
			})
			e.logger.Warn("No transactions found",
				logging.Field{Key: "source", Value: doc.ID})
			continue
		}

		if opts.AutoCategory {
			e.categorizer.Apply(transactions)
		}

		result.Transactions = append(result.Transactions, transactions...)
	}

	if opts.DuplicateCheck {
		before := len(result.Transactions)
		result.Transactions = dedupe.FilterNew(result.Transactions, existing)
		e.logger.Info("Duplicate check complete",
			logging.Field{Key: "candidates", Value: before},
			logging.Field{Key: "retained", Value: len(result.Transactions)})
	}

	e.logger.Info("Batch processing complete",
		logging.Field{Key: "processed", Value: result.ProcessedCount},
		logging.Field{Key: "transactions", Value: len(result.Transactions)},
		logging.Field{Key: "errors", Value: result.ErrorCount})

	return result, nil
}

// processDocument runs detection and parsing for a single document.
func (e *Engine) processDocument(doc SourceDocument) ([]models.Transaction, error) {
	if len(doc.Text) < e.minTextLength {
		return nil, &parsererror.ExtractionError{
			Source: doc.ID,
			Reason: "insufficient text extracted",
		}
	}

	format := detect.Detect(doc.Text)
	e.logger.Info("Detected statement format",
		logging.Field{Key: "source", Value: doc.ID},
		logging.Field{Key: "format", Value: string(format)},
		logging.Field{Key: "bank", Value: format.BankName()})

	parser := statement.ForFormat(format, e.clock, e.logger)
	lines := normalize.Lines(doc.Text)

	return parser.Parse(lines, doc.ID), nil
}

// BatchSummary aggregates income and expense totals for reporting.
type BatchSummary struct {
	Count    int
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// Summary computes totals over a transaction set. Expenses come back as a
// negative figure, matching the sign convention of the records themselves.
func Summary(transactions []models.Transaction) BatchSummary {
	s := BatchSummary{
		Count:    len(transactions),
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}
	for _, txn := range transactions {
		if txn.Amount.IsNegative() {
			s.Expenses = s.Expenses.Add(txn.Amount)
		} else {
			s.Income = s.Income.Add(txn.Amount)
		}
	}
	s.Net = s.Income.Add(s.Expenses)
	return s
}
