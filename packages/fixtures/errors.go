package fixtures

import (
	"fmt"
)

// FetchError reports a fixture that could not be retrieved. Status is 0 when
// the transport failed before any response was received.
type FetchError struct {
	URL        string
	Status     int
	StatusText string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fixture could not be loaded: %s (status: %d, message: %s)", e.URL, e.Status, e.StatusText)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
