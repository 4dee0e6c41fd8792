// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arith implements the four integer operations and a dispatcher
// that applies them by name.
//
// All operations follow Go's fixed-width integer semantics: overflow wraps
// and division truncates toward zero.
package arith

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/arith/pkg/types"
)

// ErrUnknownOperation is returned when an operation name is not one of
// add, subtract, multiply, or divide.
var ErrUnknownOperation = errors.New("unknown operation")

// operations lists the supported operations in canonical output order.
var operations = []types.Operation{
	types.OpAdd,
	types.OpSubtract,
	types.OpMultiply,
	types.OpDivide,
}

// Add returns a + b.
func Add(a, b int) int {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b int) int {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b int) int {
	return a * b
}

// Divide returns the quotient a / b truncated toward zero. The boolean is
// false, and the quotient zero, when b is zero.
func Divide(a, b int) (int, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

// Operations returns the supported operations in canonical order.
func Operations() []types.Operation {
	out := make([]types.Operation, len(operations))
	copy(out, operations)
	return out
}

// ParseOperation resolves a case-insensitive operation name.
func ParseOperation(name string) (types.Operation, error) {
	op := types.Operation(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range operations {
		if op == known {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// Apply applies op to a and b. Division by zero is not an error; it yields
// a Result with Defined set to false.
func Apply(op types.Operation, a, b int) (types.Result, error) {
	r := types.Result{Operation: op, Defined: true}
	switch op {
	case types.OpAdd:
		r.Value = Add(a, b)
	case types.OpSubtract:
		r.Value = Subtract(a, b)
	case types.OpMultiply:
		r.Value = Multiply(a, b)
	case types.OpDivide:
		r.Value, r.Defined = Divide(a, b)
	default:
		return types.Result{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	return r, nil
}
