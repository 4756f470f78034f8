package compare

import (
	"errors"
	"fmt"
)

// ErrInvalidMethod is returned when a comparison method token is not one of
// the recognized values. Callers must never map an unknown token to a
// default method.
var ErrInvalidMethod = errors.New("invalid comparison method")

// DecodeError reports that a byte buffer could not be decoded as an image.
// A failed decode is distinct from a successful "not same" comparison and
// must never be downgraded to one.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
