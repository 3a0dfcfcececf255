package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the store answers 404 for a record.
var ErrNotFound = errors.New("record not found")

// NetworkError means the store could not be reached or the response could
// not be read. The request may or may not have been processed remotely.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return "store unreachable during " + e.Op + ": " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// RequestError is a non-2xx answer from the store other than 404. Code is
// the machine-readable error code from the response body, when present.
type RequestError struct {
	Status int
	Code   string
}

func (e *RequestError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("store rejected request: status %d", e.Status)
	}
	return fmt.Sprintf("store rejected request: status %d (%s)", e.Status, e.Code)
}
