package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractionError(t *testing.T) {
	err := &ExtractionError{Source: "sep.txt", Reason: "insufficient text extracted"}
	assert.Equal(t, "extraction failed for sep.txt: insufficient text extracted", err.Error())
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ParseError{Parser: "chase", Source: "dec.txt", Err: cause}

	assert.Contains(t, err.Error(), "chase")
	assert.Contains(t, err.Error(), "dec.txt")
	assert.ErrorIs(t, err, cause)
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Item: "csv.delimiter", Reason: "must be a single character"}
	assert.Contains(t, err.Error(), "csv.delimiter")
}
