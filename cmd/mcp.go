package cmd

import (
	"github.com/huangsam/mrsummary/internal/contract"
	"github.com/huangsam/mrsummary/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd starts a Model Context Protocol server over stdio.
var mcpCmd = &cobra.Command{
	Use:   "mcp [repo-path]",
	Short: "Start a Model Context Protocol server over stdio.",
	Long: `Serve merge request summarization to MCP clients over stdio.

The server exposes generate_merge_request_summary and analyze_commits as
tools, plus git status, branch, commit and file resources. All protocol
traffic uses stdout; diagnostics go to stderr.

Examples:
  # Serve the current repository
  mrsummary mcp

  # Serve another checkout
  mrsummary mcp ~/src/other-repo`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := mcp.StartMCPServer(rootCtx, cfg, gitClient); err != nil {
			contract.LogFatal("MCP server failed", err)
		}
	},
}
