package engine

import "fmt"

// InvalidInputError rejects malformed or out-of-range input before any
// processing happens.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DataUnavailableError means a required reference lookup failed and no
// estimation fallback exists.
type DataUnavailableError struct {
	Lookup string
	Err    error
}

func (e *DataUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Lookup, e.Err)
	}
	return fmt.Sprintf("%s unavailable", e.Lookup)
}

func (e *DataUnavailableError) Unwrap() error { return e.Err }
