// Package operation defines the closed set of arithmetic operations and
// their token resolution.
package operation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind identifies one of the supported arithmetic operations.
type Kind string

const (
	Add      Kind = "add"
	Subtract Kind = "subtract"
	Multiply Kind = "multiply"
	Divide   Kind = "divide"
)

// ErrDivisionByZero is returned when the right operand of a division is
// exactly zero.
var ErrDivisionByZero = errors.New("cannot divide by zero")

// UnknownError is returned when a token does not name a registered operation.
type UnknownError struct {
	Token string
}

func (e UnknownError) Error() string {
	return fmt.Sprintf("unknown operation: %s", e.Token)
}

// tokens maps accepted operator tokens (symbol and word forms) to kinds.
// Lookup is case-sensitive; the registry never changes after init.
var tokens = map[string]Kind{
	"+":        Add,
	"add":      Add,
	"-":        Subtract,
	"subtract": Subtract,
	"*":        Multiply,
	"multiply": Multiply,
	"/":        Divide,
	"divide":   Divide,
}

// Resolve maps an operator token to its Kind. Returns UnknownError for
// anything outside the registered token set.
func Resolve(token string) (Kind, error) {
	kind, ok := tokens[token]
	if !ok {
		return "", UnknownError{Token: token}
	}
	return kind, nil
}

// Symbol returns the canonical single-character form used when rendering
// results, regardless of which token the user typed.
func (k Kind) Symbol() string {
	switch k {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

// Apply executes the operation on two decimals. Addition, subtraction, and
// multiplication are exact; division keeps precision fractional digits.
func (k Kind) Apply(a, b decimal.Decimal, precision int32) (decimal.Decimal, error) {
	switch k {
	case Add:
		return a.Add(b), nil
	case Subtract:
		return a.Sub(b), nil
	case Multiply:
		return a.Mul(b), nil
	case Divide:
		if b.IsZero() {
			return decimal.Decimal{}, ErrDivisionByZero
		}
		return a.DivRound(b, precision), nil
	default:
		return decimal.Decimal{}, UnknownError{Token: string(k)}
	}
}
