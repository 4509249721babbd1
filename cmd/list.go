package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shellingo/shellingo/internal/group"
	"github.com/shellingo/shellingo/internal/question"
)

var listCmd = &cobra.Command{
	Use:   "list [paths...]",
	Short: "List the question groups found under the given paths",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolP("questions", "q", false, "Also print the merged questions of every group")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, _, catalog, closer, err := prepare(cmd, args, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	out := cmd.OutOrStdout()
	if catalog.Len() == 0 {
		fmt.Fprintln(out, "No .sll files found.")
		return nil
	}

	withQuestions, _ := cmd.Flags().GetBool("questions")
	loader := group.NewRegistryLoader(question.NewRegistry())

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, g := range catalog.Groups() {
		fmt.Fprintf(tw, "%d\t%s\t(%s)\n", i, g.Name, countNoun(len(g.Paths), "file"))
		if !withQuestions {
			continue
		}
		// Only one group is active at a time so shared questions show the
		// answers of that group alone.
		catalog.Activate(ctx, g.Name, loader)
		for _, q := range g.Questions {
			fmt.Fprintf(tw, "\t  %s\t%s\n", q.Text, strings.Join(q.Answers(), " | "))
		}
		catalog.Deactivate(g.Name, loader)
	}
	return tw.Flush()
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
