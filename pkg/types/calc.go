// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for arith: the operations,
// their operands, and the results the CLI renders.
package types

// Operation names one of the four arithmetic operations.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Label returns the capitalized name used in text output (e.g. "Add").
func (o Operation) Label() string {
	switch o {
	case OpAdd:
		return "Add"
	case OpSubtract:
		return "Subtract"
	case OpMultiply:
		return "Multiply"
	case OpDivide:
		return "Divide"
	}
	return string(o)
}

// Operands holds the two integer inputs an operation is applied to.
type Operands struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Result is the outcome of applying one Operation to a pair of operands.
// Defined is false only for division by zero; Value is then zero and carries
// no meaning.
type Result struct {
	Operation Operation `json:"operation" yaml:"operation"`
	Value     int       `json:"-" yaml:"-"`
	Defined   bool      `json:"-" yaml:"-"`
}

// OptionalValue returns a pointer to Value when the result is defined and
// nil otherwise, so encoders emit null for an undefined quotient.
func (r Result) OptionalValue() *int {
	if !r.Defined {
		return nil
	}
	v := r.Value
	return &v
}
