package models

import "fmt"

// DataFormatError reports a malformed catalog record. The loader skips
// the offending record and keeps going, so this surfaces either as a
// warning per record or as a hard error when the whole document is
// unreadable.
type DataFormatError struct {
	Record string // item id or name when known, may be empty
	Reason string
}

func (e *DataFormatError) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("catalog data: %s", e.Reason)
	}
	return fmt.Sprintf("catalog data: record %q: %s", e.Record, e.Reason)
}

// NewDataFormatError builds a DataFormatError for a named record.
func NewDataFormatError(record, format string, args ...any) *DataFormatError {
	return &DataFormatError{Record: record, Reason: fmt.Sprintf(format, args...)}
}

// ValidationError reports a rejected mutation of the selection state.
// The state is left unchanged when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a named field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ImportFormatError reports a malformed export document. Import is all
// or nothing: when one is returned no state has been touched.
type ImportFormatError struct {
	Reason string
}

func (e *ImportFormatError) Error() string {
	return fmt.Sprintf("import: %s", e.Reason)
}

// NewImportFormatError builds an ImportFormatError.
func NewImportFormatError(format string, args ...any) *ImportFormatError {
	return &ImportFormatError{Reason: fmt.Sprintf(format, args...)}
}
