package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/mrsummary/core"
	"github.com/huangsam/mrsummary/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResource wraps a payload as a single JSON resource content.
func jsonResource(uri string, data any) ([]mcp.ResourceContents, error) {
	text, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode resource payload: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(text),
		},
	}, nil
}

// parseRangeURI extracts base and current refs from a
// "git://<kind>/{base}/{current}" resource URI.
func parseRangeURI(uri, prefix string) (string, string, error) {
	rest := strings.TrimPrefix(uri, prefix)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid resource URI %q: expected %s{base}/{current}", uri, prefix)
	}
	return parts[0], parts[1], nil
}

func (h *toolHandler) handleStatusResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	status, err := h.client.WorkingTreeStatus(ctx, h.baseCfg.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read repository status: %w", err)
	}
	return jsonResource(request.Params.URI, status)
}

func (h *toolHandler) handleBranchesResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	local, remote, err := h.client.ListBranches(ctx, h.baseCfg.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	current, err := h.client.CurrentBranch(ctx, h.baseCfg.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read current branch: %w", err)
	}
	return jsonResource(request.Params.URI, schema.BranchList{
		LocalBranches:  local,
		RemoteBranches: remote,
		CurrentBranch:  current,
	})
}

func (h *toolHandler) handleCommitsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	base, current, err := parseRangeURI(request.Params.URI, "git://commits/")
	if err != nil {
		return nil, err
	}

	cfg := h.baseCfg.Clone()
	cfg.BaseBranch = base
	cfg.CurrentBranch = current

	commits, err := core.CommitRange(ctx, h.client, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit range: %w", err)
	}
	return jsonResource(request.Params.URI, commits)
}

func (h *toolHandler) handleFilesResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	base, current, err := parseRangeURI(request.Params.URI, "git://files/")
	if err != nil {
		return nil, err
	}

	cfg := h.baseCfg.Clone()
	cfg.BaseBranch = base
	cfg.CurrentBranch = current

	buckets, _, err := core.ChangedFiles(ctx, h.client, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read changed files: %w", err)
	}
	return jsonResource(request.Params.URI, buckets)
}
