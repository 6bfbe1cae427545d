// Package calculation defines the calculation entity and its validating
// constructor.
package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmattson/tally/internal/core/operation"
)

// DefaultDivisionPrecision is the number of fractional digits kept by
// division when no precision is configured.
const DefaultDivisionPrecision = 28

// InvalidNumberError is returned when an operand token is not a valid
// decimal literal.
type InvalidNumberError struct {
	Literal string
	Err     error
}

func (e InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number %q: %v", e.Literal, e.Err)
}

func (e InvalidNumberError) Unwrap() error { return e.Err }

// Calculation is one evaluated expression. Never mutated after creation.
type Calculation struct {
	A         decimal.Decimal
	Op        operation.Kind
	B         decimal.Decimal
	Result    decimal.Decimal
	CreatedAt time.Time
}

// String renders the calculation as "<a> <symbol> <b> = <result>" using the
// canonical operator symbol. Decimal rendering drops trailing fractional
// zeros, so exact results print as "25" rather than "25.0".
func (c Calculation) String() string {
	return fmt.Sprintf("%s %s %s = %s", c.A, c.Op.Symbol(), c.B, c.Result)
}

// Factory builds validated calculations.
type Factory struct {
	// DivisionPrecision is the number of fractional digits kept by
	// division. Zero or negative falls back to DefaultDivisionPrecision.
	DivisionPrecision int32
}

// Create parses both operand literals, resolves the operator token, and
// applies the operation. It returns a Calculation only when every step
// succeeds; callers own appending the result to history.
func (f Factory) Create(rawA, token, rawB string) (Calculation, error) {
	a, err := decimal.NewFromString(rawA)
	if err != nil {
		return Calculation{}, InvalidNumberError{Literal: rawA, Err: err}
	}

	b, err := decimal.NewFromString(rawB)
	if err != nil {
		return Calculation{}, InvalidNumberError{Literal: rawB, Err: err}
	}

	kind, err := operation.Resolve(token)
	if err != nil {
		return Calculation{}, err
	}

	precision := f.DivisionPrecision
	if precision <= 0 {
		precision = DefaultDivisionPrecision
	}

	result, err := kind.Apply(a, b, precision)
	if err != nil {
		return Calculation{}, err
	}

	return Calculation{
		A:         a,
		Op:        kind,
		B:         b,
		Result:    result,
		CreatedAt: time.Now(),
	}, nil
}
