// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package demo evaluates every arithmetic operation on one operand pair and
// renders the results as text, JSON, or YAML.
package demo

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arith/internal/arith"
	"github.com/pdiddy/arith/pkg/types"
)

// divideByZeroLine is printed in place of the Divide line when the divisor is zero.
const divideByZeroLine = "Cannot divide by zero"

// Report is the encoded form of a demo run used for JSON and YAML output.
type Report struct {
	types.Operands `yaml:",inline"`
	Results        []ReportEntry `json:"results" yaml:"results"`
}

// ReportEntry is one encoded result. Value is nil for an undefined quotient.
type ReportEntry struct {
	Operation types.Operation `json:"operation" yaml:"operation"`
	Value     *int            `json:"value" yaml:"value"`
}

// Evaluate applies every operation, in canonical order, to ops.
func Evaluate(ops types.Operands) ([]types.Result, error) {
	var results []types.Result
	for _, op := range arith.Operations() {
		r, err := arith.Apply(op, ops.X, ops.Y)
		if err != nil {
			return nil, fmt.Errorf("evaluating %s: %w", op, err)
		}
		results = append(results, r)
	}
	return results, nil
}

// FormatLine returns the text line for a single result.
func FormatLine(r types.Result) string {
	if !r.Defined {
		return divideByZeroLine
	}
	return fmt.Sprintf("%s: %d", r.Operation.Label(), r.Value)
}

// Render writes results to w in the requested format. An empty format is
// treated as text.
func Render(w io.Writer, ops types.Operands, results []types.Result, format types.OutputFormat) error {
	switch format {
	case types.FormatText, "":
		for _, r := range results {
			if _, err := fmt.Fprintln(w, FormatLine(r)); err != nil {
				return fmt.Errorf("writing result: %w", err)
			}
		}
		return nil
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newReport(ops, results)); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case types.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(ops, results)); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", format)
	}
}

// Run evaluates cfg's operands and renders the results to w.
func Run(w io.Writer, cfg types.DemoConfig) error {
	results, err := Evaluate(cfg.Operands)
	if err != nil {
		return err
	}
	return Render(w, cfg.Operands, results, cfg.Format)
}

func newReport(ops types.Operands, results []types.Result) Report {
	rep := Report{Operands: ops, Results: make([]ReportEntry, len(results))}
	for i, r := range results {
		rep.Results[i] = ReportEntry{Operation: r.Operation, Value: r.OptionalValue()}
	}
	return rep
}
