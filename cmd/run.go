package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shellingo/shellingo/internal/app"
	"github.com/shellingo/shellingo/internal/group"
	"github.com/shellingo/shellingo/internal/logging"
	"github.com/shellingo/shellingo/internal/practice"
	"github.com/shellingo/shellingo/internal/question"
	"github.com/shellingo/shellingo/internal/session"
)

// runApp scans the given paths, builds a session, and launches the TUI.
func runApp(cmd *cobra.Command, args []string) error {
	ctx, cfg, catalog, closer, err := prepare(cmd, args, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger := logging.FromContext(ctx)
	s := session.New(session.Options{
		Catalog: catalog,
		Rand:    practice.NewSource(cfg.Seed),
		Loader:  group.NewRegistryLoader(question.NewRegistry()),
		Logger:  &logger,
	})

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(ctx, app.Options{
		Session: s,
		Splash:  !noSplash,
	})
}
