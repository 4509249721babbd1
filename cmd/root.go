package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shellingo/shellingo/internal/config"
	"github.com/shellingo/shellingo/internal/group"
	"github.com/shellingo/shellingo/internal/logging"
	"github.com/shellingo/shellingo/internal/source"
)

var rootCmd = &cobra.Command{
	Use:   "shellingo [paths...]",
	Short: "Practice shell commands from your own question files",
	Long: `shellingo quizzes you on the questions found in .sll files.

Every line of a .sll file is "<question> | <answer>"; lines starting with #
are comments. Directories given as arguments (default: the working
directory) are searched recursively and files sharing a name form a group.`,
	SilenceUsage: true,
	RunE:         runApp,
}

// Execute runs the root command. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("env-file", "", "Load KEY=VALUE settings from this file before reading the environment")
	flags.Uint64("seed", 0, "Shuffle seed, 0 for random (overrides SHELLINGO_SEED)")
	flags.String("log-level", "", "Log level: trace, debug, info, warn, error or disabled (overrides SHELLINGO_LOG_LEVEL)")
	flags.String("log-file", "", "Write logs to this file (overrides SHELLINGO_LOG_FILE)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies flag overrides: flag first,
// then env var, then default.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.LogFile = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLogger builds the logger for a command. The TUI owns the terminal, so
// interactive runs log to the configured file or nowhere; other commands log
// to stderr.
func openLogger(cmd *cobra.Command, cfg *config.Config, interactive bool) (zerolog.Logger, io.Closer, error) {
	if cfg.LogFile != "" {
		return logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	}
	if interactive {
		return zerolog.Nop(), nopCloser{}, nil
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return logger, nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// prepare loads config and logging for cmd, then scans args for .sll files.
// The returned context carries the logger; call the closer when done.
func prepare(cmd *cobra.Command, args []string, interactive bool) (context.Context, *config.Config, *group.Catalog, io.Closer, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	logger, closer, err := openLogger(cmd, cfg, interactive)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	ctx := logging.IntoContext(cmd.Context(), logger)

	roots, err := source.Roots(args)
	if err != nil {
		closer.Close()
		return nil, nil, nil, nil, err
	}
	files, err := source.Scan(ctx, roots)
	if err != nil {
		closer.Close()
		return nil, nil, nil, nil, fmt.Errorf("scan %v: %w", roots, err)
	}

	catalog := group.Discover(files)
	logger.Debug().
		Strs("roots", roots).
		Int("files", len(files)).
		Int("groups", catalog.Len()).
		Msg("sources scanned")
	return ctx, cfg, catalog, closer, nil
}
