package store

import (
	"errors"
	"fmt"
)

// PersistenceError reports a failure of the storage medium.
type PersistenceError struct {
	// Op names the store operation that failed (e.g. "append samples").
	Op string

	// Err is the underlying driver or I/O error.
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistenceError reports whether err is or wraps a *PersistenceError.
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

func persistErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
