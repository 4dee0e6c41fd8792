// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arith/pkg/types"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, 5, Add(2, 3), "2 + 3 should equal 5")
}

// pairs covers sign combinations, zero, and the integer limits.
var pairs = []struct{ a, b int }{
	{10, 5},
	{2, 3},
	{0, 0},
	{-7, 2},
	{7, -2},
	{-7, -2},
	{math.MaxInt, 1},
	{math.MinInt, -1},
	{math.MinInt, math.MaxInt},
}

func TestTotalOperations(t *testing.T) {
	for _, p := range pairs {
		a, b := p.a, p.b
		assert.Equal(t, a+b, Add(a, b), "Add(%d, %d)", a, b)
		assert.Equal(t, a-b, Subtract(a, b), "Subtract(%d, %d)", a, b)
		assert.Equal(t, a*b, Multiply(a, b), "Multiply(%d, %d)", a, b)
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int
		want   int
		wantOK bool
	}{
		{name: "exact", a: 10, b: 5, want: 2, wantOK: true},
		{name: "truncates positive", a: 7, b: 2, want: 3, wantOK: true},
		{name: "truncates toward zero for negative dividend", a: -7, b: 2, want: -3, wantOK: true},
		{name: "truncates toward zero for negative divisor", a: 7, b: -2, want: -3, wantOK: true},
		{name: "both negative", a: -7, b: -2, want: 3, wantOK: true},
		{name: "zero dividend", a: 0, b: 9, want: 0, wantOK: true},
		{name: "divide by zero", a: 7, b: 0, wantOK: false},
		{name: "zero by zero", a: 0, b: 0, wantOK: false},
		{name: "min int by minus one wraps", a: math.MinInt, b: -1, want: math.MinInt, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Divide(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDivideAbsentOnlyForZeroDivisor(t *testing.T) {
	for _, p := range pairs {
		_, ok := Divide(p.a, p.b)
		assert.Equal(t, p.b != 0, ok, "Divide(%d, %d)", p.a, p.b)
	}
}

func TestParseOperation(t *testing.T) {
	tests := []struct {
		input   string
		want    types.Operation
		wantErr bool
	}{
		{input: "add", want: types.OpAdd},
		{input: "Subtract", want: types.OpSubtract},
		{input: " MULTIPLY ", want: types.OpMultiply},
		{input: "divide", want: types.OpDivide},
		{input: "modulo", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOperation(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownOperation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		op          types.Operation
		a, b        int
		wantValue   int
		wantDefined bool
	}{
		{op: types.OpAdd, a: 10, b: 5, wantValue: 15, wantDefined: true},
		{op: types.OpSubtract, a: 10, b: 5, wantValue: 5, wantDefined: true},
		{op: types.OpMultiply, a: 10, b: 5, wantValue: 50, wantDefined: true},
		{op: types.OpDivide, a: 10, b: 5, wantValue: 2, wantDefined: true},
		{op: types.OpDivide, a: 7, b: 0, wantValue: 0, wantDefined: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			r, err := Apply(tt.op, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.op, r.Operation)
			assert.Equal(t, tt.wantValue, r.Value)
			assert.Equal(t, tt.wantDefined, r.Defined)
		})
	}
}

func TestApplyUnknownOperation(t *testing.T) {
	_, err := Apply(types.Operation("power"), 2, 3)
	require.ErrorIs(t, err, ErrUnknownOperation)
	assert.Contains(t, err.Error(), "power")
}

func TestOperationsOrderAndCopy(t *testing.T) {
	ops := Operations()
	assert.Equal(t, []types.Operation{types.OpAdd, types.OpSubtract, types.OpMultiply, types.OpDivide}, ops)

	ops[0] = types.OpDivide
	assert.Equal(t, types.OpAdd, Operations()[0], "callers must not mutate the canonical list")
}
