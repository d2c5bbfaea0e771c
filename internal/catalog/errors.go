package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup whose envelope came back empty.
var ErrNotFound = errors.New("product not found")

// FetchError covers transport failures, malformed envelopes and non-success
// statuses from the remote catalog API.
type FetchError struct {
	Op     string // "fetch_all" | "fetch_one" | "fetch_page"
	Status string // envelope status when the API answered, "" otherwise
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("catalog %s: api status %q", e.Op, e.Status)
	}
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
