package card

import (
	"errors"
	"fmt"
)

// ErrParse matches every parse failure in this package via errors.Is.
var ErrParse = errors.New("parse error")

// BadIntegerError reports an integer outside the valid range for a Suit or Card.
type BadIntegerError struct {
	Value int
}

func (e *BadIntegerError) Error() string {
	return fmt.Sprintf("failed to parse from unexpected integer %d", e.Value)
}

func (e *BadIntegerError) Is(target error) bool { return target == ErrParse }

// BadCharacterError reports a character that is not a suit code.
type BadCharacterError struct {
	Char rune
}

func (e *BadCharacterError) Error() string {
	return fmt.Sprintf("failed to parse from unexpected character %q", e.Char)
}

func (e *BadCharacterError) Is(target error) bool { return target == ErrParse }

// BadStringError reports a token that could not be parsed as a Card.
type BadStringError struct {
	Value string
}

func (e *BadStringError) Error() string {
	return fmt.Sprintf("failed to parse from unexpected string %q", e.Value)
}

func (e *BadStringError) Is(target error) bool { return target == ErrParse }
