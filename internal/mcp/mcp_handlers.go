package mcp

import (
	"context"
	"fmt"

	"github.com/huangsam/mrsummary/core"
	"github.com/huangsam/mrsummary/internal/contract"
	"github.com/huangsam/mrsummary/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

// cloneWithRange copies the base config and applies per-request overrides.
// A repo_path override is resolved to its repository root here so the core
// always receives a resolved root.
func (h *toolHandler) cloneWithRange(ctx context.Context, request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if b := request.GetString("base_branch", ""); b != "" {
		cfg.BaseBranch = b
	}
	if c := request.GetString("current_branch", ""); c != "" {
		cfg.CurrentBranch = c
	}
	if p := request.GetString("repo_path", ""); p != "" {
		root, err := h.client.RepoRoot(ctx, p)
		if err != nil {
			return nil, err
		}
		cfg.RepoPath = root
	}
	return cfg, nil
}

func (h *toolHandler) handleGenerateSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.cloneWithRange(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid repository: %v", err)), nil
	}
	if f := request.GetString("format", ""); f != "" {
		format := schema.OutputMode(f)
		if _, ok := schema.ValidOutputModes[format]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unsupported format: %q (expected markdown or json)", f)), nil
		}
		cfg.Format = format
	}

	payload, err := core.GenerateSummary(ctx, h.client, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary generation failed: %v", err)), nil
	}
	return mcp.NewToolResultText(payload), nil
}

func (h *toolHandler) handleAnalyzeCommits(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.cloneWithRange(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid repository: %v", err)), nil
	}

	payload, err := core.AnalyzeCommits(ctx, h.client, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("commit analysis failed: %v", err)), nil
	}
	return mcp.NewToolResultText(payload), nil
}
