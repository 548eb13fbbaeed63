package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const miniScenario = `name: mini
description: "Two vowel sandhi joins"
cases:
  - id: "1"
    word1: "ಮಹಾ"
    word2: "ಆತ್ಮ"
    expect:
      result: "ಮಹಾತ್ಮ"
  - id: "2"
    word1: "ಮನೆ"
    word2: "ಗೆ"
    expect:
      result: "ಮನೆಗೆ"
      stage: vibhakti
`

const failingScenario = `name: wrong
description: "Expects the wrong join"
cases:
  - id: "1"
    word1: "ಮಹಾ"
    word2: "ಆತ್ಮ"
    expect:
      result: "ಮಹಾಆತ್ಮ"
`

// writeScenarioDir lays out <root>/scenarios/<file> and returns root.
func writeScenarioDir(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, "scenarios")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return root
}

func TestTest_HarnessScenariosMatchGolden(t *testing.T) {
	out, err := execute(t, NewTestCommand(testOptions("text")), harnessScenarios)
	require.NoError(t, err, out)

	assert.Contains(t, out, "✓ vowel_sandhi")
	assert.Contains(t, out, "✓ word_pairs (9/10, 90.00%)")
	assert.Contains(t, out, "Test Summary: 6 passed, 0 failed, 6 total")
	assert.Contains(t, out, "✓ All scenarios passed")
}

func TestTest_SingleCSVFile(t *testing.T) {
	out, err := execute(t, NewTestCommand(testOptions("json")), filepath.Join(harnessScenarios, "word_pairs.csv"))
	require.NoError(t, err, out)

	resp := decode[TestResult](t, out)
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Scenarios, 1)
	s := resp.Data.Scenarios[0]
	assert.Equal(t, "word_pairs", s.Name)
	assert.True(t, s.Pass)
	assert.Equal(t, 10, s.Total)
	assert.Equal(t, 9, s.Passed)
	assert.InDelta(t, 90.0, s.Accuracy, 0.001)
}

func TestTest_Filter(t *testing.T) {
	out, err := execute(t, NewTestCommand(testOptions("json")), "--filter", "samasa*", harnessScenarios)
	require.NoError(t, err, out)

	resp := decode[TestResult](t, out)
	require.Len(t, resp.Data.Scenarios, 2)
	assert.Equal(t, "samasa", resp.Data.Scenarios[0].Name)
	assert.Equal(t, "samasa_strict", resp.Data.Scenarios[1].Name)
}

func TestTest_FilterMatchesNothing(t *testing.T) {
	out, err := execute(t, NewTestCommand(testOptions("text")), "--filter", "nope*", harnessScenarios)
	require.NoError(t, err)
	assert.Equal(t, "No scenarios found.\n", out)
}

func TestTest_FailingScenario(t *testing.T) {
	root := writeScenarioDir(t, map[string]string{"wrong.yaml": failingScenario})

	out, err := execute(t, NewTestCommand(testOptions("text")), filepath.Join(root, "scenarios"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	assert.Contains(t, out, "✗ wrong")
	assert.Contains(t, out, `result: expected "ಮಹಾಆತ್ಮ", got "ಮಹಾತ್ಮ"`)
	assert.Contains(t, out, "Test Summary: 0 passed, 1 failed, 1 total")
}

func TestTest_FailingScenarioJSON(t *testing.T) {
	root := writeScenarioDir(t, map[string]string{"wrong.yaml": failingScenario})

	out, err := execute(t, NewTestCommand(testOptions("json")), filepath.Join(root, "scenarios"))
	require.Error(t, err)

	resp := decode[TestResult](t, out)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E_TEST_FAILED", resp.Error.Code)
	assert.Equal(t, 1, resp.Data.Failed)
	assert.NotEmpty(t, resp.Data.Scenarios[0].Errors)
}

func TestTest_UpdateWritesGolden(t *testing.T) {
	root := writeScenarioDir(t, map[string]string{"mini.yaml": miniScenario})
	scenarios := filepath.Join(root, "scenarios")
	golden := filepath.Join(root, "golden", "mini.golden")

	out, err := execute(t, NewTestCommand(testOptions("text")), "--update", scenarios)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ mini (golden updated)")

	data, err := os.ReadFile(golden)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scenario: mini (samasa=permissive)\n")
	assert.Contains(t, string(data), "PASS 1 ಮಹಾ + ಆತ್ಮ = ಮಹಾತ್ಮ [success direct] Direct Match (Rule 2)\n")

	// Matches on the next run.
	out, err = execute(t, NewTestCommand(testOptions("text")), scenarios)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ mini (2/2, 100.00%)")

	// A stale golden file fails even though every case passes.
	require.NoError(t, os.WriteFile(golden, []byte("stale\n"), 0o644))
	out, err = execute(t, NewTestCommand(testOptions("text")), scenarios)
	require.Error(t, err)
	assert.Contains(t, out, "report does not match golden file")
}

func TestTest_InvalidScenario(t *testing.T) {
	root := writeScenarioDir(t, map[string]string{
		"bad.yaml":  "name: bad\n",
		"mini.yaml": miniScenario,
	})

	out, err := execute(t, NewTestCommand(testOptions("text")), filepath.Join(root, "scenarios"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ bad.yaml")
	assert.Contains(t, out, "load error")
	assert.Contains(t, out, "✓ mini")
	assert.Contains(t, out, "Test Summary: 1 passed, 1 failed, 2 total")
}

func TestTest_NotFound(t *testing.T) {
	_, err := execute(t, NewTestCommand(testOptions("text")), "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGoldenFilePath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("suite", "golden", "mini.golden"),
		goldenFilePath(filepath.Join("suite", "scenarios", "mini.yaml"), "mini"))
}
