package harness

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/roach88/sandhi/internal/engine"
	"github.com/roach88/sandhi/internal/ir"
	"github.com/roach88/sandhi/internal/rules"
)

// Result is the outcome of a scenario execution.
type Result struct {
	Scenario string  `json:"scenario"`
	Samasa   string  `json:"samasa"`
	Pass     bool    `json:"pass"`
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Accuracy float64 `json:"accuracy"`
	// MinAccuracy is the threshold Accuracy was compared against.
	MinAccuracy float64      `json:"min_accuracy"`
	Cases       []CaseResult `json:"cases"`
}

// CaseResult is the outcome of a single case.
type CaseResult struct {
	ID     string     `json:"id"`
	Word1  string     `json:"word1"`
	Word2  string     `json:"word2"`
	Pass   bool       `json:"pass"`
	Actual ir.Outcome `json:"actual"`
	Errors []string   `json:"errors,omitempty"`
}

// Failures returns the failing cases in scenario order.
func (r *Result) Failures() []CaseResult {
	var failed []CaseResult
	for _, c := range r.Cases {
		if !c.Pass {
			failed = append(failed, c)
		}
	}
	return failed
}

// Run joins every case of scenario with an engine over snap and checks the
// outcomes. opts configure the engine; a samasa mode named by the scenario
// takes precedence over one given in opts.
//
// Each scenario gets its own engine, so scenarios never observe each
// other's configuration.
func Run(scenario *Scenario, snap *rules.Snapshot, opts ...engine.Option) (*Result, error) {
	return RunWithLogger(scenario, snap, zap.NewNop(), opts...)
}

// RunWithLogger is Run with a logger for per-case failure output.
func RunWithLogger(scenario *Scenario, snap *rules.Snapshot, logger *zap.Logger, opts ...engine.Option) (*Result, error) {
	if snap == nil {
		return nil, fmt.Errorf("run %s: no rule snapshot", scenario.Name)
	}

	if scenario.Samasa != "" {
		mode, ok := engine.ParseSamasaMode(scenario.Samasa)
		if !ok {
			return nil, fmt.Errorf("run %s: unknown samasa mode %q", scenario.Name, scenario.Samasa)
		}
		opts = append(opts, engine.WithSamasaMode(mode))
	}
	eng := engine.New(snap, opts...)

	result := &Result{
		Scenario:    scenario.Name,
		Samasa:      eng.SamasaMode().String(),
		Total:       len(scenario.Cases),
		MinAccuracy: scenario.Threshold(),
		Cases:       make([]CaseResult, 0, len(scenario.Cases)),
	}

	for _, c := range scenario.Cases {
		out := eng.JoinWords(c.Word1, c.Word2)
		cr := CaseResult{ID: c.ID, Word1: c.Word1, Word2: c.Word2, Actual: out, Pass: true}

		for _, err := range checkExpect(c.Expect, out) {
			cr.Pass = false
			cr.Errors = append(cr.Errors, err.Error())
		}

		if cr.Pass {
			result.Passed++
		} else {
			result.Failed++
			logger.Debug("case failed",
				zap.String("scenario", scenario.Name),
				zap.String("case", c.ID),
				zap.Strings("errors", cr.Errors),
			)
		}
		result.Cases = append(result.Cases, cr)
	}

	if result.Total > 0 {
		result.Accuracy = float64(result.Passed*100) / float64(result.Total)
	}
	result.Pass = result.Accuracy >= result.MinAccuracy

	return result, nil
}
