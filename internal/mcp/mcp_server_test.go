package mcp_test

import (
	"context"
	"errors"
	"testing"

	"github.com/huangsam/mrsummary/internal/contract"
	mcp_internal "github.com/huangsam/mrsummary/internal/mcp"
	"github.com/huangsam/mrsummary/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedGitClient is a canned GitClient for MCP handler tests.
type scriptedGitClient struct {
	rangeOut []byte
	rangeErr error
	rootErr  error
}

func (s *scriptedGitClient) ValidateRepo(_ context.Context, _ string) error { return nil }
func (s *scriptedGitClient) ResolveRef(_ context.Context, _, _ string) (string, error) {
	return "abc1234", nil
}
func (s *scriptedGitClient) RepoRoot(_ context.Context, contextPath string) (string, error) {
	if s.rootErr != nil {
		return "", s.rootErr
	}
	return contextPath, nil
}
func (s *scriptedGitClient) RangeLog(_ context.Context, _, _, _ string, _ contract.LogOptions) ([]byte, error) {
	return s.rangeOut, s.rangeErr
}
func (s *scriptedGitClient) CurrentBranch(_ context.Context, _ string) (string, error) {
	return "main", nil
}
func (s *scriptedGitClient) ListBranches(_ context.Context, _ string) ([]string, []string, error) {
	return []string{"main", "develop"}, []string{"origin/main"}, nil
}
func (s *scriptedGitClient) RemoteURL(_ context.Context, _ string) (string, error) {
	return "git@example.com:acme/widget.git", nil
}
func (s *scriptedGitClient) WorkingTreeStatus(_ context.Context, _ string) (schema.RepoStatus, error) {
	return schema.RepoStatus{Repository: "widget", CurrentBranch: "main"}, nil
}

func baseConfig() *contract.Config {
	return &contract.Config{
		RepoPath:      "/repo",
		BaseBranch:    "main",
		CurrentBranch: "HEAD",
		Format:        schema.MarkdownOut,
	}
}

func callTool(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestMCPServer_GenerateSummary(t *testing.T) {
	client := &scriptedGitClient{
		rangeOut: []byte("--aaa1111|Alice|2026-08-19|feat: add metrics endpoint\n" +
			"80\t5\tapi/metrics.go\n"),
	}
	s := mcp_internal.NewMCPServer(baseConfig(), client)
	ctx := context.Background()

	tool := s.GetTool("generate_merge_request_summary")
	require.NotNil(t, tool, "Tool generate_merge_request_summary should exist")

	t.Run("markdown summary", func(t *testing.T) {
		res, err := tool.Handler(ctx, callTool("generate_merge_request_summary", map[string]any{
			"base_branch":    "main",
			"current_branch": "feature/metrics",
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, "## 🚀 New Features (1)")
		assert.Contains(t, text, "- Total Commits: 1")
	})

	t.Run("json summary", func(t *testing.T) {
		res, err := tool.Handler(ctx, callTool("generate_merge_request_summary", map[string]any{
			"format": "json",
		}))
		require.NoError(t, err)
		require.False(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, `"total_commits": 1`)
	})

	t.Run("unsupported format", func(t *testing.T) {
		res, err := tool.Handler(ctx, callTool("generate_merge_request_summary", map[string]any{
			"format": "yaml",
		}))
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "unsupported format")
	})

	t.Run("invalid repo_path override", func(t *testing.T) {
		failing := &scriptedGitClient{rootErr: errors.New("not a git repository")}
		s2 := mcp_internal.NewMCPServer(baseConfig(), failing)
		tool2 := s2.GetTool("generate_merge_request_summary")
		require.NotNil(t, tool2)

		res, err := tool2.Handler(ctx, callTool("generate_merge_request_summary", map[string]any{
			"repo_path": "/nowhere",
		}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid repository")
	})
}

func TestMCPServer_AnalyzeCommits(t *testing.T) {
	client := &scriptedGitClient{
		rangeOut: []byte("--bbb2222|Bob|2026-08-18|fix: flush on shutdown\n" +
			"6\t2\tcore/flush.go\n"),
	}
	s := mcp_internal.NewMCPServer(baseConfig(), client)
	ctx := context.Background()

	tool := s.GetTool("analyze_git_commits")
	require.NotNil(t, tool, "Tool analyze_git_commits should exist")

	t.Run("markdown analysis", func(t *testing.T) {
		res, err := tool.Handler(ctx, callTool("analyze_git_commits", nil))
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, "# Git Commit Analysis")
		assert.Contains(t, text, "### 🐛 Bug Fixes (1)")
	})

	t.Run("extraction failure reported as tool error", func(t *testing.T) {
		failing := &scriptedGitClient{rangeErr: errors.New("fatal: bad revision")}
		s2 := mcp_internal.NewMCPServer(baseConfig(), failing)
		tool2 := s2.GetTool("analyze_git_commits")
		require.NotNil(t, tool2)

		res, err := tool2.Handler(ctx, callTool("analyze_git_commits", nil))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "commit analysis failed")
	})
}
