package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroScale reports a scale factor of zero, which has no inverse
	ErrZeroScale = errors.New("zero scale factor")
	// ErrNonFiniteScale reports a NaN or infinite scale factor
	ErrNonFiniteScale = errors.New("non-finite scale factor")
)

// DomainError is returned when transform parameters describe a degenerate mapping
type DomainError struct {
	Op  string
	Err error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("transform %s: %v", e.Op, e.Err)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
