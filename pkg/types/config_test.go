// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDemoConfig(t *testing.T) {
	cfg := DefaultDemoConfig()
	assert.Equal(t, Operands{X: 10, Y: 5}, cfg.Operands)
	assert.Equal(t, FormatText, cfg.Format)
}

func TestOperationLabel(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{op: OpAdd, want: "Add"},
		{op: OpSubtract, want: "Subtract"},
		{op: OpMultiply, want: "Multiply"},
		{op: OpDivide, want: "Divide"},
		{op: Operation("modulo"), want: "modulo"},
	}
	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.Label())
		})
	}
}
