package cmd

import (
	"github.com/huangsam/mrsummary/core"
	"github.com/huangsam/mrsummary/internal/contract"
	"github.com/huangsam/mrsummary/internal/outwriter"
	"github.com/spf13/cobra"
)

// filesCmd prints the changed files in a revision range, grouped by bucket.
var filesCmd = &cobra.Command{
	Use:   "files [repo-path]",
	Short: "List the files changed in a revision range.",
	Long: `List every file changed in the range, grouped into semantic buckets
such as Tests, Documentation and Services, with per-file churn.

Examples:
  # Files changed on the current branch not yet on main
  mrsummary files

  # Files changed between two tags
  mrsummary files --base v1.0.0 --current v1.1.0`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		buckets, magnitude, err := core.ChangedFiles(rootCtx, gitClient, cfg)
		if err != nil {
			contract.LogFatal("Cannot list changed files", err)
		}
		if err := outwriter.PrintBucketsTable(buckets, magnitude, cfg); err != nil {
			contract.LogFatal("Cannot write changed files", err)
		}
	},
}
