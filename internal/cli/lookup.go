package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sandhi/internal/ir"
)

// maxSuggestLimit caps --limit for the suggest command.
const maxSuggestLimit = 20

// SuggestOptions holds flags for the suggest command.
type SuggestOptions struct {
	*RootOptions
	Limit int
}

// NewSuggestCommand creates the suggest command.
func NewSuggestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SuggestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "suggest <word>",
		Short: "Suggest dictionary words close to a misspelled word",
		Long: `Suggest vocabulary words (root words and vibhakti markers) that are
close to the given word, best match first.

Examples:
  sandhi suggest ಸೂರ್ಯಾ
  sandhi suggest --limit 5 ಪುಸ್ತಾಕ`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(opts, args, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 3, fmt.Sprintf("maximum number of suggestions (1-%d)", maxSuggestLimit))

	return cmd
}

// SuggestResult is the JSON payload of the suggest command.
type SuggestResult struct {
	Word        string          `json:"word"`
	Suggestions []ir.Suggestion `json:"suggestions"`
}

func runSuggest(opts *SuggestOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	if opts.Limit < 1 || opts.Limit > maxSuggestLimit {
		return NewExitError(ExitCommandError, fmt.Sprintf("--limit must be between 1 and %d", maxSuggestLimit))
	}

	snap, _, err := opts.loadSnapshot(cmd.Context())
	if err != nil {
		return loadErrorExit(formatter, err)
	}

	eng := opts.newEngine(snap)
	result := SuggestResult{Word: args[0], Suggestions: eng.Suggest(args[0], opts.Limit)}
	if result.Suggestions == nil {
		result.Suggestions = []ir.Suggestion{}
	}

	if formatter.IsJSON() {
		return formatter.Success(result)
	}
	if len(result.Suggestions) == 0 {
		formatter.Printf("no suggestions for %s\n", result.Word)
		return nil
	}
	for _, s := range result.Suggestions {
		formatter.Printf("%s\t%d\n", s.Word, s.Score)
	}
	return nil
}

// NewHintsCommand creates the hints command.
func NewHintsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hints <word>",
		Short: "List known compounds that start with a word",
		Long: `List the known compound words whose first word is the given word.

Examples:
  sandhi hints ಮನೆ`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHints(rootOpts, args, cmd)
		},
	}
}

// HintsResult is the JSON payload of the hints command.
type HintsResult struct {
	Word  string    `json:"word"`
	Hints []ir.Hint `json:"hints"`
}

func runHints(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	snap, _, err := opts.loadSnapshot(cmd.Context())
	if err != nil {
		return loadErrorExit(formatter, err)
	}

	result := HintsResult{Word: args[0], Hints: opts.newEngine(snap).Hints(args[0])}
	if result.Hints == nil {
		result.Hints = []ir.Hint{}
	}

	if formatter.IsJSON() {
		return formatter.Success(result)
	}
	if len(result.Hints) == 0 {
		formatter.Printf("no known compounds start with %s\n", result.Word)
		return nil
	}
	for _, h := range result.Hints {
		formatter.Printf("%s + %s = %s\n", result.Word, h.NextWord, h.Result)
	}
	return nil
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the sizes of the loaded rule tables",
		Long: `Show how many rows each rule table holds, the table fingerprint and
where the tables were loaded from.

Examples:
  sandhi stats
  sandhi stats --data ./tables --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd)
		},
	}
}

// StatsResult is the JSON payload of the stats command.
type StatsResult struct {
	ir.Stats
	Source        TableSource `json:"source"`
	SamasaMode    string      `json:"samasa_mode"`
	EngineVersion string      `json:"engine_version"`
}

func runStats(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	snap, src, err := opts.loadSnapshot(cmd.Context())
	if err != nil {
		return loadErrorExit(formatter, err)
	}

	eng := opts.newEngine(snap)
	result := StatsResult{
		Stats:         eng.Stats(),
		Source:        src,
		SamasaMode:    eng.SamasaMode().String(),
		EngineVersion: ir.EngineVersion,
	}

	if formatter.IsJSON() {
		return formatter.Success(result)
	}
	formatter.Printf("source:           %s\n", src)
	if src.Batch != nil {
		formatter.Printf("batch:            %s (seq %d)\n", src.Batch.ID, src.Batch.Seq)
	}
	formatter.Printf("fingerprint:      %s\n", result.Fingerprint)
	formatter.Printf("root words:       %d\n", result.RootWords)
	formatter.Printf("sandhi rules:     %d\n", result.SandhiRules)
	formatter.Printf("vibhakti markers: %d\n", result.Markers)
	formatter.Printf("samasa rules:     %d\n", result.SamasaRules)
	formatter.Printf("compounds:        %d\n", result.Compounds)
	formatter.Printf("samasa mode:      %s\n", result.SamasaMode)
	formatter.Printf("engine version:   %s\n", result.EngineVersion)
	return nil
}
