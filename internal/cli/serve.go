package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/sandhi/internal/engine"
	"github.com/roach88/sandhi/internal/server"
)

// DefaultAddr is the listen address used when neither --addr nor
// SANDHI_ADDR is set.
const DefaultAddr = ":8080"

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr            string
	Strict          bool
	ShutdownTimeout time.Duration
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine over HTTP",
		Long: `Serve join, suggest, hints and stats as a JSON HTTP API.

Routes:
  POST /api/join      {"word1": "...", "word2": "..."}
  GET  /api/suggest   ?word=...&limit=...
  GET  /api/hints     ?word=...
  GET  /api/stats
  GET  /healthz

The server stops on SIGINT or SIGTERM after draining open connections.

Examples:
  sandhi serve --addr :8080
  SANDHI_ADDR=127.0.0.1:9000 sandhi serve --data sandhi.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", DefaultAddr, "listen address (env "+EnvAddr+")")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "reject words that are neither root words nor vibhakti markers")
	cmd.Flags().DurationVar(&opts.ShutdownTimeout, "shutdown-timeout", server.DefaultShutdownTimeout, "time allowed to drain connections")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := opts.logger()

	if !cmd.Flags().Changed("addr") {
		if v := os.Getenv(EnvAddr); v != "" {
			opts.Addr = v
		}
	}

	snap, src, err := opts.loadSnapshot(cmd.Context())
	if err != nil {
		return loadErrorExit(formatter, err)
	}
	eng := opts.newEngine(snap, engine.WithStrictValidation(opts.Strict))
	srv := server.New(eng,
		server.WithLogger(logger),
		server.WithShutdownTimeout(opts.ShutdownTimeout),
	)

	// Setup signal handling for graceful shutdown
	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan) // Prevent signal handler leak

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("received signal, shutting down", zap.Stringer("signal", sig))
			cancel()
		case <-ctx.Done():
			// Parent context cancelled (e.g., from test)
		}
	}()

	logger.Info("server starting",
		zap.String("addr", opts.Addr),
		zap.String("source", src.String()),
		zap.String("samasa_mode", eng.SamasaMode().String()),
	)
	formatter.Printf("Serving %s tables on %s\n", src, opts.Addr)
	formatter.Printf("Press Ctrl-C to stop.\n")

	if err := srv.Run(ctx, opts.Addr); err != nil {
		return WrapExitError(ExitFailure, "server error", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
