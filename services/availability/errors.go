package availability

import "fmt"

// EngineError is a typed availability error.
type EngineError struct {
	Code    string
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrInvalidTimeFormat reports input that is not a zero-padded "HH:MM"
	// clock value. It is raised at the boundary; the engine's pure functions
	// assume already-validated input.
	ErrInvalidTimeFormat = &EngineError{
		Code:    "invalidTimeFormat",
		Message: "time must be a zero-padded HH:MM value",
	}

	// ErrRangeUnavailable reports a proposed start/end range containing a
	// booked or past slot. It is non-fatal: the selection is reset to a fresh
	// single-point start.
	ErrRangeUnavailable = &EngineError{
		Code:    "rangeUnavailable",
		Message: "selected range contains an unavailable slot",
	}
)
