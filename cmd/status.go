package cmd

import (
	"github.com/huangsam/mrsummary/internal/contract"
	"github.com/huangsam/mrsummary/internal/outwriter"
	"github.com/spf13/cobra"
)

// statusCmd reports the working tree state of the repository.
var statusCmd = &cobra.Command{
	Use:   "status [repo-path]",
	Short: "Show the working tree status of the repository.",
	Long: `Report the current branch and the modified, staged and untracked files
of the repository as JSON.

Examples:
  # Status of the current directory
  mrsummary status

  # Status of another checkout
  mrsummary status ~/src/other-repo`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := gitClient.WorkingTreeStatus(rootCtx, cfg.RepoPath)
		if err != nil {
			contract.LogFatal("Cannot read repository status", err)
		}
		if err := outwriter.WriteJSONPayload(status, cfg.OutputFile); err != nil {
			contract.LogFatal("Cannot write status", err)
		}
	},
}
