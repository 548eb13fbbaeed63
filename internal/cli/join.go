package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sandhi/internal/engine"
	"github.com/roach88/sandhi/internal/ir"
)

// Join error codes (E301-E399).
const (
	ErrCodeUnknownWord = "E301" // strict validation rejected an input word
)

// JoinOptions holds flags for the join command.
type JoinOptions struct {
	*RootOptions
	Strict bool
}

// NewJoinCommand creates the join command.
func NewJoinCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &JoinOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "join <word1> <word2>",
		Short: "Combine two words",
		Long: `Combine two Kannada words.

Vibhakti markers are attached first, then a samasa suffix is stripped from
the first word, then a direct or phonetic sandhi rule is applied. When no
rule matches the words are concatenated and a warning is reported.

Examples:
  sandhi join ಮಹಾ ಆತ್ಮ
  sandhi join ಮನೆ ಅಲ್ಲಿ
  sandhi join --strict --format json ಪುಸ್ತಾಕ ಆಲಯ`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJoin(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "reject words that are neither root words nor vibhakti markers")

	return cmd
}

func runJoin(opts *JoinOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	snap, _, err := opts.loadSnapshot(cmd.Context())
	if err != nil {
		return loadErrorExit(formatter, err)
	}

	eng := opts.newEngine(snap, engine.WithStrictValidation(opts.Strict))
	out := eng.JoinWords(args[0], args[1])
	formatter.VerboseLog("samasa mode: %s", eng.SamasaMode())

	if out.Status == ir.StatusError {
		if err := formatter.Failure(ErrCodeUnknownWord, out.Message, out); err != nil {
			return err
		}
		if !formatter.IsJSON() {
			writeSuggestions(formatter.Writer, out.Suggestions)
		}
		return NewExitError(ExitFailure, out.Message)
	}

	if formatter.IsJSON() {
		return formatter.Success(out)
	}
	writeOutcome(formatter.Writer, out)
	return nil
}

// writeOutcome prints a join outcome in text form.
func writeOutcome(w io.Writer, out ir.Outcome) {
	fmt.Fprintln(w, out.Result)
	fmt.Fprintf(w, "  status: %s\n", out.Status)
	fmt.Fprintf(w, "  stage:  %s\n", out.Stage)
	if out.Samasa != "" {
		fmt.Fprintf(w, "  samasa: %s\n", out.Samasa)
	}
	if out.Rule != "" {
		fmt.Fprintf(w, "  rule:   %s\n", out.Rule)
	}
	if out.Message != "" {
		fmt.Fprintf(w, "  msg:    %s\n", out.Message)
	}
	writeSuggestions(w, out.Suggestions)
}

func writeSuggestions(w io.Writer, suggestions []ir.Suggestion) {
	if len(suggestions) == 0 {
		return
	}
	parts := make([]string, len(suggestions))
	for i, s := range suggestions {
		parts[i] = fmt.Sprintf("%s (%d)", s.Word, s.Score)
	}
	fmt.Fprintf(w, "  did you mean: %s\n", strings.Join(parts, ", "))
}
