package calc

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero       = errors.New("division by zero")
	ErrUnmatchedParenthesis = errors.New("unmatched parenthesis")
	ErrUnknownFunction      = errors.New("unknown function")
	ErrMalformedNumber      = errors.New("malformed number")
	ErrCapacityExceeded     = errors.New("capacity exceeded")
	// ErrIncomplete is returned when the scan ends with no value, or with
	// operands or operators left over.
	ErrIncomplete     = errors.New("empty or incomplete expression")
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrDomain         = errors.New("domain error")
)

// Error is the failure returned by Eval. Pos is the byte offset in the input
// where the problem was found, so the caller can put the cursor there.
type Error struct {
	Kind error
	Pos  int
	Text string
}

func newError(kind error, pos int, text string) *Error {
	return &Error{Kind: kind, Pos: pos, Text: text}
}

func (e *Error) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%v at %d", e.Kind, e.Pos)
	}
	return fmt.Sprintf("%v at %d: %s", e.Kind, e.Pos, e.Text)
}

func (e *Error) Unwrap() error { return e.Kind }

// Label returns the short error text a calculator display shows for err.
func Label(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDivisionByZero):
		return "ERR:DIVIDE BY 0"
	case errors.Is(err, ErrUnknownFunction):
		return "ERR:UNDEFINED"
	case errors.Is(err, ErrDomain):
		return "ERR:DOMAIN"
	case errors.Is(err, ErrCapacityExceeded):
		return "ERR:MEMORY"
	case errors.Is(err, ErrUnmatchedParenthesis),
		errors.Is(err, ErrMalformedNumber),
		errors.Is(err, ErrUnexpectedChar),
		errors.Is(err, ErrIncomplete):
		return "ERR:SYNTAX"
	default:
		return "ERR:INVALID"
	}
}
