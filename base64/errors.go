package base64

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter is returned when a non-discarding
	// Standard encounters a byte that is neither part of its
	// alphabet nor its padding character.
	ErrInvalidCharacter = errors.New("base64: invalid character")

	// ErrInvalidLength is returned when the input ends with
	// a single leftover symbol, which cannot encode a full byte.
	ErrInvalidLength = errors.New("base64: invalid length")

	// ErrInvalidPadding is returned by strict Standards when the
	// padding is missing, misplaced, or leaves non-zero bits.
	ErrInvalidPadding = errors.New("base64: invalid padding")

	// ErrMalformedAlphabet is returned when a Standard is
	// constructed from an alphabet that is not exactly 64
	// distinct symbols.
	ErrMalformedAlphabet = errors.New("base64: malformed alphabet")
)

// CorruptInputError records where decoding failed.
//
// It unwraps to one of ErrInvalidCharacter, ErrInvalidLength, or
// ErrInvalidPadding.
type CorruptInputError struct {
	// Offset is the index into the input of the offending byte.
	Offset int
	// Char is the offending byte. Only set for
	// ErrInvalidCharacter.
	Char byte
	// Err is the underlying sentinel.
	Err error
}

func (e *CorruptInputError) Error() string {
	if e.Err == ErrInvalidCharacter {
		return fmt.Sprintf("base64: invalid character %q at input byte %d", e.Char, e.Offset)
	}
	return fmt.Sprintf("%v at input byte %d", e.Err, e.Offset)
}

func (e *CorruptInputError) Unwrap() error {
	return e.Err
}
