package model

import "fmt"

// ErrMalformedRow indicates an input row that failed type or shape
// validation. Line is 1-based and includes the header row when the input
// came from a CSV file; it is zero when the row did not come from a file.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMalformedRow struct {
	Line   int
	Field  string
	Reason string
	cause  error
}

func (e *ErrMalformedRow) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed row at line %d: field %s: %s", e.Line, e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed row: field %s: %s", e.Field, e.Reason)
}

func (e *ErrMalformedRow) Unwrap() error { return e.cause }

// NewMalformedRow builds an ErrMalformedRow with an underlying cause.
func NewMalformedRow(line int, field, reason string, cause error) *ErrMalformedRow {
	return &ErrMalformedRow{Line: line, Field: field, Reason: reason, cause: cause}
}

// ErrDuplicateID indicates a repeated ProductID in a single load.
// Duplicates are rejected rather than merged: derived tables key on
// ProductID and silently folding rows together would hide input mistakes.
//
// Line is the 1-based line of the second occurrence in a headered CSV
// source (header is line 1, the first record line 2). Loads from
// in-memory records number their positions the same way.
type ErrDuplicateID struct {
	ProductID string
	Line      int
}

func (e *ErrDuplicateID) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("duplicate product id %q at line %d", e.ProductID, e.Line)
	}
	return fmt.Sprintf("duplicate product id %q", e.ProductID)
}

// ErrDimensionMismatch indicates attribute vectors of unequal length.
// Label identifies the offending vector where known.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	Label    string
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("dimension mismatch: vector %q has %d components, expected %d", e.Label, e.Actual, e.Expected)
	}
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrUnknownLabel indicates a query for an attribute vector label that was
// never loaded.
type ErrUnknownLabel struct {
	Label string
}

func (e *ErrUnknownLabel) Error() string {
	return fmt.Sprintf("unknown vector label %q", e.Label)
}
