package cmd

import (
	"github.com/huangsam/mrsummary/core"
	"github.com/huangsam/mrsummary/internal/contract"
	"github.com/huangsam/mrsummary/internal/outwriter"
	"github.com/spf13/cobra"
)

// summaryCmd generates the full merge request summary.
var summaryCmd = &cobra.Command{
	Use:   "summary [repo-path]",
	Short: "Generate a merge request summary for a revision range.",
	Long: `Analyze the commits reachable from the current branch but not the base
branch, and render a structured merge request summary.

The summary includes:
- A title derived from the dominant change category
- An overview with commit, file and line counts
- Key changes ranked by lines touched
- Commits grouped into semantic categories
- Changed files grouped into semantic buckets
- A review-time estimate

Examples:
  # Summarize the current branch against main
  mrsummary summary

  # Summarize a feature branch against develop, as JSON
  mrsummary summary --base develop --current feature/login --format json

  # Write the summary to a file
  mrsummary summary --output-file SUMMARY.md

  # Only consider merge commits since a date
  mrsummary summary --merges-only --since 2026-01-01`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		payload, err := core.GenerateSummary(rootCtx, gitClient, cfg)
		if err != nil {
			contract.LogFatal("Cannot generate summary", err)
		}
		if err := outwriter.WritePayload(payload, cfg.OutputFile); err != nil {
			contract.LogFatal("Cannot write summary", err)
		}
	},
}
