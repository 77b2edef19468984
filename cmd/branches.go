package cmd

import (
	"github.com/huangsam/mrsummary/internal/contract"
	"github.com/huangsam/mrsummary/internal/outwriter"
	"github.com/huangsam/mrsummary/schema"
	"github.com/spf13/cobra"
)

// branchesCmd lists the branches known to the repository.
var branchesCmd = &cobra.Command{
	Use:   "branches [repo-path]",
	Short: "List local and remote branches of the repository.",
	Long: `List the local and remote branches of the repository, along with the
currently checked out branch, as JSON.

Examples:
  # Branches of the current directory
  mrsummary branches`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		local, remote, err := gitClient.ListBranches(rootCtx, cfg.RepoPath)
		if err != nil {
			contract.LogFatal("Cannot list branches", err)
		}
		current, err := gitClient.CurrentBranch(rootCtx, cfg.RepoPath)
		if err != nil {
			contract.LogFatal("Cannot read current branch", err)
		}
		payload := schema.BranchList{
			LocalBranches:  local,
			RemoteBranches: remote,
			CurrentBranch:  current,
		}
		if err := outwriter.WriteJSONPayload(payload, cfg.OutputFile); err != nil {
			contract.LogFatal("Cannot write branches", err)
		}
	},
}
