// Package validate checks a leveled board.State against the structural
// invariants the leveling core promises: every territory cell belongs to
// exactly one tile, tiles of the same color never improperly overlap or
// touch, and every anchor/non-anchor cell ended up the way apply is
// supposed to leave it.
//
// It has no dependency on internal/level: it re-derives the invariants
// directly from the before/after cell arrays, so a bug in the leveling core
// can't also hide the check that would have caught it.
package validate

import (
	"fmt"
	"strings"
)

// ConstraintResult is the outcome of checking one invariant: Satisfied is
// the pass/fail verdict, Details explains it in a form suitable for a CLI
// report.
type ConstraintResult struct {
	Name      string
	Satisfied bool
	Details   string
}

// NewConstraintResult builds a ConstraintResult, filling Details with a
// fixed "ok" message when satisfied is true and no details were given.
func NewConstraintResult(name string, satisfied bool, details string) ConstraintResult {
	if satisfied && details == "" {
		details = "ok"
	}
	return ConstraintResult{Name: name, Satisfied: satisfied, Details: details}
}

// Report collects every constraint checked against one board transition.
type Report struct {
	Passed  bool
	Results []ConstraintResult
}

// NewReport builds an empty, passing report; add results with Add.
func NewReport() *Report {
	return &Report{Passed: true}
}

// Add appends result to the report, clearing Passed if it failed.
func (r *Report) Add(result ConstraintResult) {
	r.Results = append(r.Results, result)
	if !result.Satisfied {
		r.Passed = false
	}
}

// Failed returns every unsatisfied constraint result.
func (r *Report) Failed() []ConstraintResult {
	var failed []ConstraintResult
	for _, res := range r.Results {
		if !res.Satisfied {
			failed = append(failed, res)
		}
	}
	return failed
}

// Summary renders a human-readable report, one line per constraint.
func (r *Report) Summary() string {
	var b strings.Builder
	status := "PASSED"
	if !r.Passed {
		status = "FAILED"
	}
	fmt.Fprintf(&b, "=== Validation Report: %s ===\n", status)
	for i, res := range r.Results {
		mark := "PASS"
		if !res.Satisfied {
			mark = "FAIL"
		}
		fmt.Fprintf(&b, "  %d. [%s] %s: %s\n", i+1, mark, res.Name, res.Details)
	}
	return b.String()
}
