package cmd

import (
	"github.com/huangsam/mrsummary/core"
	"github.com/huangsam/mrsummary/internal/contract"
	"github.com/huangsam/mrsummary/internal/outwriter"
	"github.com/spf13/cobra"
)

// commitsCmd prints the raw commits in a revision range.
var commitsCmd = &cobra.Command{
	Use:   "commits [repo-path]",
	Short: "List the commits in a revision range.",
	Long: `List every commit reachable from the current branch but not the base
branch, with per-commit churn and an impact label.

Examples:
  # Commits on the current branch not yet on main
  mrsummary commits

  # Commits as JSON, without color
  mrsummary commits --format json --color no`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		commits, err := core.CommitRange(rootCtx, gitClient, cfg)
		if err != nil {
			contract.LogFatal("Cannot list commits", err)
		}
		if err := outwriter.PrintCommitsTable(commits, cfg); err != nil {
			contract.LogFatal("Cannot write commits", err)
		}
	},
}
