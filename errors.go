package reedsolomon

import (
	"errors"
	"fmt"
)

// ErrDecode indicates a Reed-Solomon decoding failure: the received codeword
// contains more errors than the check symbols can correct.
var ErrDecode = errors.New("reedsolomon: decoding error")

// FieldTooLargeError is returned when a primitive polynomial implies a field
// width above MaxFieldBits. This is a configuration error in the caller's
// symbology parameters, never a transient condition.
type FieldTooLargeError struct {
	Polynomial int // the offending primitive polynomial
	Bits       int // the field width it implies
}

func (e *FieldTooLargeError) Error() string {
	return fmt.Sprintf("reedsolomon: polynomial 0x%x implies a %d-bit field, maximum is %d",
		e.Polynomial, e.Bits, MaxFieldBits)
}
