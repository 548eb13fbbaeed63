package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sandhi/internal/engine"
	"github.com/roach88/sandhi/internal/harness"
	"github.com/roach88/sandhi/internal/rules"
	"github.com/roach88/sandhi/internal/suggest"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Update bool   // regenerate golden files
	Filter string // scenario filter (glob pattern)
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name     string   `json:"name"`
	Pass     bool     `json:"pass"`
	Total    int      `json:"total"`
	Passed   int      `json:"passed"`
	Accuracy float64  `json:"accuracy"`
	Errors   []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenario-file-or-dir>",
		Short: "Run word-combination scenarios",
		Long: `Run YAML scenarios and CSV word-pair files against the rule tables.

A scenario passes when its case accuracy reaches its threshold and, if a
golden report exists in the sibling golden/ directory, the report matches
it byte for byte.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, unreadable tables, etc.)

Examples:
  sandhi test ./scenarios
  sandhi test ./scenarios/word_pairs.csv
  sandhi test ./scenarios --filter "vowel*"
  sandhi test ./scenarios --update`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern on the file name")

	return cmd
}

func runTests(opts *TestOptions, path string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	files, err := harness.FindScenarios(path)
	if err != nil {
		var notFound *harness.ScenarioNotFoundError
		if errors.As(err, &notFound) {
			return NewExitError(ExitCommandError, fmt.Sprintf("no scenarios found at %s", path))
		}
		return WrapExitError(ExitCommandError, "failed to find scenarios", err)
	}
	files, err = filterScenarioFiles(files, opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid filter pattern", err)
	}

	if len(files) == 0 {
		if formatter.IsJSON() {
			return outputTestJSON(formatter, TestResult{Scenarios: []ScenarioResult{}})
		}
		formatter.Printf("No scenarios found.\n")
		return nil
	}

	snap, _, err := opts.loadSnapshot(cmd.Context())
	if err != nil {
		return loadErrorExit(formatter, err)
	}

	result := TestResult{
		Scenarios: make([]ScenarioResult, 0, len(files)),
		Total:     len(files),
	}
	for _, file := range files {
		scenResult := runScenario(file, snap, opts, formatter)
		result.Scenarios = append(result.Scenarios, scenResult)

		if scenResult.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if formatter.IsJSON() {
		return outputTestJSON(formatter, result)
	}
	return outputTestText(formatter, result)
}

// filterScenarioFiles keeps files whose base name, without extension,
// matches the glob pattern.
func filterScenarioFiles(files []string, filter string) ([]string, error) {
	if filter == "" {
		return files, nil
	}
	var out []string
	for _, f := range files {
		base := filepath.Base(f)
		matched, err := filepath.Match(filter, strings.TrimSuffix(base, filepath.Ext(base)))
		if err != nil {
			return nil, err
		}
		if matched {
			out = append(out, f)
		}
	}
	return out, nil
}

// runScenario executes a single scenario file and returns the result.
func runScenario(file string, snap *rules.Snapshot, opts *TestOptions, f *OutputFormatter) ScenarioResult {
	fail := func(name string, errs ...string) ScenarioResult {
		f.Printf("✗ %s\n", name)
		for _, e := range errs {
			f.Printf("  %s\n", e)
		}
		return ScenarioResult{Name: name, Errors: errs}
	}

	scenario, err := harness.LoadScenario(file)
	if err != nil {
		return fail(filepath.Base(file), fmt.Sprintf("load error: %v", err))
	}

	result, err := harness.RunWithLogger(scenario, snap, opts.logger(),
		engine.WithSamasaMode(opts.samasaMode()),
		engine.WithSuggester(suggest.NewMatcher(snap.Vocabulary()), engine.DefaultSuggestionLimit),
	)
	if err != nil {
		return fail(scenario.Name, fmt.Sprintf("execution error: %v", err))
	}

	sr := ScenarioResult{
		Name:     scenario.Name,
		Total:    result.Total,
		Passed:   result.Passed,
		Accuracy: result.Accuracy,
	}
	report := harness.Report(result)
	goldenPath := goldenFilePath(file, scenario.Name)

	if opts.Update {
		if err := updateGoldenFile(goldenPath, report); err != nil {
			return fail(scenario.Name, fmt.Sprintf("golden update error: %v", err))
		}
		f.Printf("✓ %s (golden updated)\n", scenario.Name)
		sr.Pass = true
		return sr
	}

	if !result.Pass {
		for _, c := range result.Failures() {
			for _, e := range c.Errors {
				sr.Errors = append(sr.Errors, fmt.Sprintf("%s: %v", c.ID, e))
			}
		}
		sr.Errors = append(sr.Errors, fmt.Sprintf("accuracy %.2f%% below %.2f%%", result.Accuracy, result.MinAccuracy))
	}

	match, err := compareWithGolden(goldenPath, report)
	switch {
	case err != nil:
		sr.Errors = append(sr.Errors, fmt.Sprintf("golden comparison error: %v", err))
	case !match:
		sr.Errors = append(sr.Errors, "report does not match golden file (run with --update to regenerate)")
	}

	if len(sr.Errors) > 0 {
		failed := fail(scenario.Name, sr.Errors...)
		failed.Total, failed.Passed, failed.Accuracy = sr.Total, sr.Passed, sr.Accuracy
		return failed
	}

	f.Printf("✓ %s (%d/%d, %.2f%%)\n", scenario.Name, result.Passed, result.Total, result.Accuracy)
	sr.Pass = true
	return sr
}

// goldenFilePath returns the golden report path for a scenario:
// <scenarios>/../golden/<name>.golden.
func goldenFilePath(scenarioFile, name string) string {
	root := filepath.Dir(filepath.Dir(scenarioFile))
	return filepath.Join(root, "golden", name+".golden")
}

// updateGoldenFile writes the current report as the golden file.
func updateGoldenFile(goldenPath, report string) error {
	// Ensure golden directory exists
	if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}
	if err := os.WriteFile(goldenPath, []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}
	return nil
}

// compareWithGolden compares report against the golden file.
// A missing golden file is a match: only the accuracy threshold applies.
func compareWithGolden(goldenPath, report string) (bool, error) {
	goldenData, err := os.ReadFile(goldenPath)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read golden file: %w", err)
	}
	return string(goldenData) == report, nil
}

// outputTestJSON outputs the test result as JSON.
func outputTestJSON(f *OutputFormatter, result TestResult) error {
	if result.Failed == 0 {
		return f.Success(result)
	}

	msg := fmt.Sprintf("%d scenario(s) failed", result.Failed)
	if err := f.Failure("E_TEST_FAILED", msg, result); err != nil {
		return err
	}
	// Test failures = exit code 1
	return NewExitError(ExitFailure, msg)
}

// outputTestText outputs the test summary as text.
func outputTestText(f *OutputFormatter, result TestResult) error {
	f.Printf("\nTest Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		// Test failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}

	f.Printf("✓ All scenarios passed\n")
	return nil
}
