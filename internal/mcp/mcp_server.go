// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/mrsummary/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the merge request summarizer MCP
// server without starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Merge Request Summarizer",
		"1.0.0",
		server.WithLogging(),
		server.WithResourceCapabilities(true, true),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: generate_merge_request_summary ---
	s.AddTool(mcp.NewTool("generate_merge_request_summary",
		mcp.WithDescription("Generate a comprehensive merge request summary from git logs between two branches."),
		mcp.WithString("base_branch", mcp.Description("Base branch for the revision range (defaults to the configured base).")),
		mcp.WithString("current_branch", mcp.Description("Current branch for the revision range (defaults to HEAD).")),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to the configured repository).")),
		mcp.WithString("format", mcp.Description("Output format. Defaults to 'markdown'."), mcp.Enum("markdown", "json")),
	), h.handleGenerateSummary)

	// --- 2. Tool: analyze_git_commits ---
	s.AddTool(mcp.NewTool("analyze_git_commits",
		mcp.WithDescription("Analyze git commits between two branches and categorize them by type."),
		mcp.WithString("base_branch", mcp.Description("Base branch for the revision range.")),
		mcp.WithString("current_branch", mcp.Description("Current branch for the revision range.")),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
	), h.handleAnalyzeCommits)

	// --- 3. Resource: repository status ---
	s.AddResource(mcp.NewResource("git://status", "repository-status",
		mcp.WithResourceDescription("Current repository status and basic information."),
		mcp.WithMIMEType("application/json"),
	), h.handleStatusResource)

	// --- 4. Resource: branch list ---
	s.AddResource(mcp.NewResource("git://branches", "branch-list",
		mcp.WithResourceDescription("All local and remote branches in the repository."),
		mcp.WithMIMEType("application/json"),
	), h.handleBranchesResource)

	// --- 5. Resource template: commit range ---
	s.AddResourceTemplate(mcp.NewResourceTemplate("git://commits/{base}/{current}", "commit-range",
		mcp.WithTemplateDescription("Commit history between two branches."),
		mcp.WithTemplateMIMEType("application/json"),
	), h.handleCommitsResource)

	// --- 6. Resource template: changed files ---
	s.AddResourceTemplate(mcp.NewResourceTemplate("git://files/{base}/{current}", "changed-files",
		mcp.WithTemplateDescription("Files changed between two branches, grouped by bucket."),
		mcp.WithTemplateMIMEType("application/json"),
	), h.handleFilesResource)

	return s
}

// StartMCPServer starts the merge request summarizer MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
