package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shellingo/shellingo/internal/logging"
	"github.com/shellingo/shellingo/internal/parser"
)

// errMalformed makes check exit non-zero when any line was rejected.
var errMalformed = errors.New("malformed lines found")

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Report malformed lines in .sll files",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, _, catalog, closer, err := prepare(cmd, args, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	log := logging.FromContext(ctx)
	out := cmd.OutOrStdout()
	var files, questions, malformed int

	for _, g := range catalog.Groups() {
		for _, path := range g.Paths {
			if err := ctx.Err(); err != nil {
				return err
			}
			qs, diags, err := parser.ParseFile(path)
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("skipping unreadable file")
				malformed++
				continue
			}
			files++
			questions += len(qs)
			for _, d := range diags {
				fmt.Fprintln(out, d)
			}
			malformed += len(diags)
		}
	}

	fmt.Fprintf(out, "%s, %s, %s\n",
		countNoun(files, "file"),
		countNoun(questions, "question"),
		countNoun(malformed, "problem"),
	)
	if malformed > 0 {
		return fmt.Errorf("%d problems: %w", malformed, errMalformed)
	}
	return nil
}
