// Package parsererror defines the typed errors surfaced by the engine.
package parsererror

import "fmt"

// ExtractionError reports a document whose extracted text cannot be used,
// for example because the OCR collaborator produced too little of it.
type ExtractionError struct {
	Source string
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed for %s: %s", e.Source, e.Reason)
}

// ParseError reports a failure inside a specific parser. Individual
// unmatched lines never produce one of these; it exists for document-level
// failures that the orchestrator records and contains.
type ParseError struct {
	Parser string
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s: %v", e.Parser, e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError reports a configuration or setup failure outside
// document-level processing. These abort a batch instead of being recorded.
type ConfigError struct {
	Item   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error for %s: %s", e.Item, e.Reason)
}
