package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/sandhi/internal/engine"
	"github.com/roach88/sandhi/internal/rules"
)

// Report renders a result as deterministic text, one line per case:
//
//	scenario: vowel_sandhi (samasa=permissive)
//	PASS 1 ಪುಸ್ತಕ + ಆಲಯ = ಪುಸ್ತಕಾಲಯ [success phonetic] Sandhi Rule: ಅ+ಆ=ಆ
//	FAIL 2 ...
//	     result: expected "x", got "y"
//	total=2 passed=1 failed=1 accuracy=50.00% min=100.00% FAIL
func Report(r *Result) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "scenario: %s (samasa=%s)\n", r.Scenario, r.Samasa)
	for _, c := range r.Cases {
		mark := "PASS"
		if !c.Pass {
			mark = "FAIL"
		}
		fmt.Fprintf(&buf, "%s %s %s + %s = %s [%s %s]", mark, c.ID, c.Word1, c.Word2, c.Actual.Result, c.Actual.Status, c.Actual.Stage)
		if c.Actual.Rule != "" {
			fmt.Fprintf(&buf, " %s", c.Actual.Rule)
		}
		if c.Actual.Message != "" {
			fmt.Fprintf(&buf, " (%s)", c.Actual.Message)
		}
		buf.WriteByte('\n')
		for _, e := range c.Errors {
			fmt.Fprintf(&buf, "     %s\n", e)
		}
	}

	verdict := "PASS"
	if !r.Pass {
		verdict = "FAIL"
	}
	fmt.Fprintf(&buf, "total=%d passed=%d failed=%d accuracy=%.2f%% min=%.2f%% %s\n",
		r.Total, r.Passed, r.Failed, r.Accuracy, r.MinAccuracy, verdict)

	return buf.String()
}

// RunWithGolden executes a scenario and compares its report against a golden file.
// The golden file is stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Test failure (via goldie) occurs if the report doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario, snap *rules.Snapshot, opts ...engine.Option) (*Result, error) {
	t.Helper()

	result, err := Run(scenario, snap, opts...)
	if err != nil {
		return nil, err
	}

	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares the report of an existing result against a golden file.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(Report(result)))
}
