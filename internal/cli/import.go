package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/sandhi/internal/rules"
	"github.com/roach88/sandhi/internal/store"
)

// Store error codes (E401-E499).
const (
	ErrCodeStore = "E401" // table store could not be opened or written
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	DB         string
	FillSounds bool
}

// ImportResult is the payload of the import command.
type ImportResult struct {
	Batch   store.Batch `json:"batch"`
	Created bool        `json:"created"`
	Filled  []string    `json:"filled_ending_sounds,omitempty"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import rule tables into a SQLite table store",
		Long: `Validate the rule tables named by --data and append them to a SQLite
table store as a new import batch. Importing tables identical to the latest
batch is a no-op.

With --fill-sounds, root words with no ending sound get one decoded from
their spelling before the import.

Examples:
  sandhi import --data ./tables --db sandhi.db
  sandhi import --db sandhi.db --fill-sounds`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to the SQLite table store (created if missing)")
	cmd.Flags().BoolVar(&opts.FillSounds, "fill-sounds", false, "fill unset root word ending sounds before importing")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runImport(opts *ImportOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := opts.newFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := opts.logger()

	snap, src, err := opts.loadSnapshot(ctx)
	if err != nil {
		return loadErrorExit(formatter, err)
	}

	var filled []string
	if opts.FillSounds {
		snap, filled, err = rules.FillEndingSounds(snap)
		if err != nil {
			return loadErrorExit(formatter, err)
		}
		formatter.VerboseLog("filled %d ending sound(s)", len(filled))
	}

	st, err := store.Open(opts.DB)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open table store", err)
	}
	defer st.Close()

	batch, created, err := st.Import(ctx, snap, src.String())
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "import tables", err)
	}
	logger.Info("import",
		zap.String("db", opts.DB),
		zap.String("batch", batch.ID),
		zap.Int64("seq", batch.Seq),
		zap.Bool("created", created),
	)

	result := ImportResult{Batch: batch, Created: created, Filled: filled}
	if formatter.IsJSON() {
		return formatter.Success(result)
	}

	if len(filled) > 0 {
		formatter.Printf("filled ending sounds: %s\n", strings.Join(filled, ", "))
	}
	if created {
		formatter.Printf("✓ Imported batch %s (seq %d) from %s\n", batch.ID, batch.Seq, batch.Source)
	} else {
		formatter.Printf("✓ Tables unchanged; latest batch is %s (seq %d)\n", batch.ID, batch.Seq)
	}
	formatter.Printf("  fingerprint: %s\n", batch.Fingerprint)
	return nil
}

// BatchesOptions holds flags for the batches command.
type BatchesOptions struct {
	*RootOptions
	DB string
}

// NewBatchesCommand creates the batches command.
func NewBatchesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batches",
		Short: "List import batches in a SQLite table store",
		Long: `List every import batch in a table store, oldest first. The last
batch is the one "--data <store>.db" loads.

Examples:
  sandhi batches --db sandhi.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatches(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "path to the SQLite table store")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runBatches(opts *BatchesOptions, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	// Open would create a missing file; listing must not.
	if _, err := os.Stat(opts.DB); err != nil {
		_ = formatter.Error(rules.ErrCodeNotFound, fmt.Sprintf("table store not found: %s", opts.DB), nil)
		return WrapExitError(ExitCommandError, "open table store", err)
	}

	st, err := store.Open(opts.DB)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open table store", err)
	}
	defer st.Close()

	batches, err := st.Batches(cmd.Context())
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "list batches", err)
	}
	if batches == nil {
		batches = []store.Batch{}
	}

	if formatter.IsJSON() {
		return formatter.Success(batches)
	}
	if len(batches) == 0 {
		formatter.Printf("no batches in %s\n", opts.DB)
		return nil
	}
	for _, b := range batches {
		formatter.Printf("%d\t%s\t%s\t%s\n", b.Seq, b.ID, shortFingerprint(b.Fingerprint), b.Source)
	}
	return nil
}

func shortFingerprint(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
