// Package analyzererror defines the error types surfaced by the analysis
// pipeline.
package analyzererror

import (
	"errors"
	"fmt"
)

// ErrEmptyTable is returned when the input table has no data rows. Like a
// SchemaError it aborts the pipeline before any aggregation runs.
var ErrEmptyTable = errors.New("statement contains no rows")

// SchemaError reports a mandatory canonical column that is still missing
// after alias-based renaming. It is detected before any aggregation runs
// and surfaces to the caller as a validation failure.
type SchemaError struct {
	Field   string
	Columns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column '%s' not found in input (columns: %v)", e.Field, e.Columns)
}

// RowParseError reports a single row whose date or amount could not be
// coerced. It is non-fatal: the row is excluded from the relevant
// aggregates and processing continues.
type RowParseError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *RowParseError) Error() string {
	return fmt.Sprintf("row %d: failed to parse %s='%s': %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *RowParseError) Unwrap() error {
	return e.Err
}

// ProcessingError wraps an unexpected failure during aggregation or
// insight/recommendation generation. Message is safe to show to the end
// user; the underlying cause stays in the logs.
type ProcessingError struct {
	Stage   string
	Message string
	Err     error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Message)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// NewProcessingError builds a ProcessingError with the generic user-facing
// message. Internal details belong in Err, never in Message.
func NewProcessingError(stage string, err error) *ProcessingError {
	return &ProcessingError{
		Stage:   stage,
		Message: "an unexpected error occurred while analyzing the statement",
		Err:     err,
	}
}
