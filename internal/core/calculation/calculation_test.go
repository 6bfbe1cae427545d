package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmattson/tally/internal/core/operation"
)

func TestFactory_Create(t *testing.T) {
	tests := []struct {
		name   string
		rawA   string
		token  string
		rawB   string
		wantOp operation.Kind
		want   string
	}{
		{name: "symbol addition", rawA: "5", token: "+", rawB: "3", wantOp: operation.Add, want: "8"},
		{name: "word form multiplication", rawA: "10", token: "multiply", rawB: "2.5", wantOp: operation.Multiply, want: "25"},
		{name: "negative subtraction", rawA: "2.5", token: "-", rawB: "10", wantOp: operation.Subtract, want: "-7.5"},
		{name: "word form division", rawA: "15", token: "divide", rawB: "3", wantOp: operation.Divide, want: "5"},
		{name: "scientific notation operand", rawA: "1e3", token: "+", rawB: "1", wantOp: operation.Add, want: "1001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := Factory{}.Create(tt.rawA, tt.token, tt.rawB)
			require.NoError(t, err)

			assert.Equal(t, tt.wantOp, calc.Op)
			assert.True(t, calc.Result.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", calc.Result, tt.want)
			assert.False(t, calc.CreatedAt.IsZero())
		})
	}
}

func TestFactory_Create_InvalidNumber(t *testing.T) {
	tests := []struct {
		name    string
		rawA    string
		rawB    string
		literal string
	}{
		{name: "left operand not numeric", rawA: "abc", rawB: "3", literal: "abc"},
		{name: "right operand not numeric", rawA: "3", rawB: "x1", literal: "x1"},
		{name: "both invalid reports left first", rawA: "foo", rawB: "bar", literal: "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Factory{}.Create(tt.rawA, "+", tt.rawB)

			var numErr InvalidNumberError
			require.ErrorAs(t, err, &numErr)
			assert.Equal(t, tt.literal, numErr.Literal)
			assert.Error(t, numErr.Err)
		})
	}
}

func TestFactory_Create_UnknownOperation(t *testing.T) {
	_, err := Factory{}.Create("1", "pow", "2")

	var opErr operation.UnknownError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "pow", opErr.Token)
}

func TestFactory_Create_DivisionByZero(t *testing.T) {
	_, err := Factory{}.Create("5", "/", "0")
	assert.ErrorIs(t, err, operation.ErrDivisionByZero)
}

func TestFactory_Create_DivisionPrecision(t *testing.T) {
	calc, err := Factory{DivisionPrecision: 4}.Create("1", "/", "3")
	require.NoError(t, err)
	assert.True(t, calc.Result.Equal(decimal.RequireFromString("0.3333")),
		"got %s", calc.Result)
}

func TestCalculation_String(t *testing.T) {
	tests := []struct {
		name  string
		rawA  string
		token string
		rawB  string
		want  string
	}{
		{name: "integer result", rawA: "5", token: "+", rawB: "3", want: "5 + 3 = 8"},
		{name: "canonical symbol for word form", rawA: "10", token: "multiply", rawB: "2.5", want: "10 * 2.5 = 25"},
		{name: "fractional result", rawA: "10.5", token: "subtract", rawB: "2.3", want: "10.5 - 2.3 = 8.2"},
		{name: "division result trimmed", rawA: "1", token: "/", rawB: "8", want: "1 / 8 = 0.125"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := Factory{}.Create(tt.rawA, tt.token, tt.rawB)
			require.NoError(t, err)
			assert.Equal(t, tt.want, calc.String())
		})
	}
}
