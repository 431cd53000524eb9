// lox.go — SINGLE PUBLIC API SURFACE for the Lox front end and evaluator.
//
// OVERVIEW
// ========
// This file is the entry point a host (the REPL driver in cmd/lox, or a
// test) actually calls. It wires together the three pipeline stages without
// adding behavior of its own:
//
//	source --Scan--> tokens --Parse--> statements --Evaluate--> output/error
//
// Each stage is independently reusable (ScanAll, Parse, Evaluate are all
// free functions on plain data, defined in scanner.go/parser.go/
// evaluator.go respectively); Run below is the convenience that chains them
// the way a driver normally wants.
package lox

// Version is the library's version string, surfaced by driver banners.
const Version = "0.1.0"

// Diagnostics collects every ScannerError/ParserError produced while
// turning source text into statements, in the order they were found.
type Diagnostics struct {
	ScanErrors   []*ScannerError
	ParseErrors  []*ParserError
}

// HasErrors reports whether any scan or parse diagnostic was collected.
func (d Diagnostics) HasErrors() bool {
	return len(d.ScanErrors) > 0 || len(d.ParseErrors) > 0
}

// Compile scans and parses source, returning every successfully parsed
// Statement together with the diagnostics collected along the way. It never
// fails outright — scan/parse errors are collected, not returned as an
// error — mirroring the spec's "collect and continue" propagation policy
// for these two stages.
func Compile(source string) ([]Statement, Diagnostics) {
	tokens, scanErrs := ScanAll(source)
	results := Parse(tokens)

	var diags Diagnostics
	diags.ScanErrors = scanErrs

	var statements []Statement
	for _, r := range results {
		if r.Err != nil {
			diags.ParseErrors = append(diags.ParseErrors, r.Err)
			continue
		}
		statements = append(statements, r.Stmt)
	}
	return statements, diags
}

// Run compiles source and, if it produced at least one statement, evaluates
// all of them against sink. It returns the collected diagnostics and, if
// evaluation was attempted, the RuntimeError from the first failing
// statement (nil on success). Run always evaluates whatever statements
// were parsed, independent of whether diagnostics exist — callers that want
// the driver's "skip evaluation on diagnostics" policy (see DESIGN.md) must
// check Diagnostics.HasErrors() themselves before calling Run, or before
// trusting output emitted through sink.
func Run(source string, sink func(line string)) (Diagnostics, error) {
	statements, diags := Compile(source)
	if len(statements) == 0 {
		return diags, nil
	}
	if err := Evaluate(statements, sink); err != nil {
		return diags, err
	}
	return diags, nil
}
