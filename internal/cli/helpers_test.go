package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// dataDir is the CSV table directory the embedded tables are built from.
var dataDir = filepath.Join("..", "..", "data")

// harnessScenarios holds scenarios whose golden reports live in ../golden.
var harnessScenarios = filepath.Join("..", "harness", "testdata", "scenarios")

func testOptions(format string) *RootOptions {
	return &RootOptions{Format: format, Logger: zap.NewNop()}
}

// execute runs cmd with args and returns what it wrote to stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// response is CLIResponse with a typed payload.
type response[T any] struct {
	Status string    `json:"status"`
	Data   T         `json:"data"`
	Error  *CLIError `json:"error"`
}

func decode[T any](t *testing.T, out string) response[T] {
	t.Helper()

	var resp response[T]
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	return resp
}

// writeTables writes CSV tables into a fresh directory.
func writeTables(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func validTables() map[string]string {
	return map[string]string{
		"root_words.csv": "word,meaning,type,last_sound,can_combine\n" +
			"ಮನೆ,house,noun,ಎ,yes\n",
		"sandhi_rules.csv": "rule_number,sound1,sound2,result,example_word1,example_word2,combined_result\n" +
			"3,ಎ,ಅ,ಯ,ಮನೆ,ಅಂಗಳ,ಮನೆಯಂಗಳ\n",
		"vibhakti_rules.csv": "marker,meaning,type,logic_type\n" +
			"ಗೆ,to,dative,suffix\n",
		"samasa_rules.csv": "rule_name,suffix_to_drop,replacement_sound,example_input,example_root\n" +
			"Tatpurusha_Genitive,ನ,ಅ,ಸೂರ್ಯನ,ಸೂರ್ಯ\n",
	}
}
