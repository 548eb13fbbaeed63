package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/sandhi/internal/ir"
)

// ExpectationError describes one expect field that did not match.
type ExpectationError struct {
	Field    string // expect field name, e.g. "result"
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *ExpectationError) Error() string {
	if e.Field == "rule_contains" {
		return fmt.Sprintf("rule: expected to contain %q, got %q", e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: expected %q, got %q", e.Field, e.Expected, e.Actual)
}

// checkExpect compares an outcome against an expectation and returns every
// mismatch, in field order.
func checkExpect(expect Expect, out ir.Outcome) []error {
	var errs []error

	if expect.Result != "" || expect.resultRequired {
		if out.Result == "" || strings.TrimSpace(out.Result) != strings.TrimSpace(expect.Result) {
			errs = append(errs, &ExpectationError{Field: "result", Expected: expect.Result, Actual: out.Result})
		}
	}

	if expect.Status != "" && expect.Status != out.Status {
		errs = append(errs, &ExpectationError{Field: "status", Expected: string(expect.Status), Actual: string(out.Status)})
	}

	if expect.Stage != "" && expect.Stage != out.Stage {
		errs = append(errs, &ExpectationError{Field: "stage", Expected: string(expect.Stage), Actual: string(out.Stage)})
	}

	if expect.RuleContains != "" && !strings.Contains(out.Rule, expect.RuleContains) {
		errs = append(errs, &ExpectationError{Field: "rule_contains", Expected: expect.RuleContains, Actual: out.Rule})
	}

	return errs
}
