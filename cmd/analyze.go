package cmd

import (
	"github.com/huangsam/mrsummary/core"
	"github.com/huangsam/mrsummary/internal/contract"
	"github.com/huangsam/mrsummary/internal/outwriter"
	"github.com/spf13/cobra"
)

// analyzeCmd categorizes the commits in a range without the merge request framing.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [repo-path]",
	Short: "Analyze and categorize the commits in a revision range.",
	Long: `Categorize each commit in the range by message keywords and report
per-category detail, significant changes, and the changed-file buckets.

Examples:
  # Analyze the current branch against main
  mrsummary analyze

  # Analyze a release branch against a tag
  mrsummary analyze --base v1.2.0 --current release/1.3`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		payload, err := core.AnalyzeCommits(rootCtx, gitClient, cfg)
		if err != nil {
			contract.LogFatal("Cannot analyze commits", err)
		}
		if err := outwriter.WritePayload(payload, cfg.OutputFile); err != nil {
			contract.LogFatal("Cannot write analysis", err)
		}
	},
}
