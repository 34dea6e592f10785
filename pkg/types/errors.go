package types

import (
	"errors"
	"fmt"
)

// Collection operation errors.
var (
	ErrInvalidName       = errors.New("invalid name")
	ErrCapacityExceeded  = errors.New("backpack is full")
	ErrNotFound          = errors.New("item not found")
	ErrAllocationFailure = errors.New("node allocation failed")
	ErrSessionClosed     = errors.New("session is closed")
)

// SearchError reports a failed lookup together with the comparisons that
// were spent on it. It matches ErrNotFound under errors.Is.
type SearchError struct {
	Name        string
	Comparisons int
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("%s: %q (comparisons=%d)", ErrNotFound, e.Name, e.Comparisons)
}

func (e *SearchError) Unwrap() error {
	return ErrNotFound
}

// Comparisons extracts the comparison count from a *SearchError in err's
// chain. The second result is false if err carries none.
func Comparisons(err error) (int, bool) {
	var se *SearchError
	if errors.As(err, &se) {
		return se.Comparisons, true
	}
	return 0, false
}
