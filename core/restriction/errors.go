package restriction

import "fmt"

// FieldError reports a descriptor field whose value could not be parsed. The
// descriptor carrying it is rejected as a whole: a tariff with one malformed
// restriction must not be billed on the parseable remainder.
type FieldError struct {
	// Field is the descriptor field name, such as "start_date".
	Field string

	// Value is the raw text that failed to parse.
	Value string

	// Err is the underlying parse failure.
	Err error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("restriction field %s: cannot parse %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying parse failure.
func (e *FieldError) Unwrap() error {
	return e.Err
}
