package outwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/mrsummary/internal/contract"
	"github.com/huangsam/mrsummary/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePayload_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")

	require.NoError(t, WritePayload("# Title\nbody", path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Title\nbody\n", string(content))
}

func TestWritePayload_BadPath(t *testing.T) {
	err := WritePayload("payload", filepath.Join(t.TempDir(), "missing", "out.md"))
	assert.Error(t, err)
}

func TestWriteJSONPayload_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")
	status := schema.RepoStatus{Repository: "widget", CurrentBranch: "main"}

	require.NoError(t, WriteJSONPayload(status, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"repository": "widget"`)
	assert.Contains(t, string(content), `"current_branch": "main"`)
}

func TestGetMaxMessageWidth(t *testing.T) {
	tests := []struct {
		name     string
		override int
		expected int
	}{
		{
			name:     "wide terminal caps at maximum",
			override: 200,
			expected: 72,
		},
		{
			name:     "narrow terminal clamps to minimum",
			override: 50,
			expected: 20,
		},
		{
			name:     "mid-range terminal",
			override: 100,
			expected: 55,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetMaxMessageWidth(tt.override))
		})
	}
}

func TestPrintCommitsTable_JSONMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commits.json")
	cfg := &contract.Config{
		Format:     schema.JSONOut,
		OutputFile: path,
	}
	commits := []schema.CommitRecord{
		{Hash: "abc1234", Author: "Alice", Date: "2026-08-19", Message: "feat: add metrics", Insertions: 10, Deletions: 2},
	}

	require.NoError(t, PrintCommitsTable(commits, cfg))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"hash": "abc1234"`)
}

func TestPrintBucketsTable_JSONMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "files.json")
	cfg := &contract.Config{
		Format:     schema.JSONOut,
		OutputFile: path,
	}
	buckets := map[string][]string{
		"Tests": {"core/parser_test.go"},
	}

	require.NoError(t, PrintBucketsTable(buckets, map[string]int{"core/parser_test.go": 12}, cfg))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "core/parser_test.go")
}

func TestPrintCommitsTable_EmptyRange(t *testing.T) {
	cfg := &contract.Config{
		Format:        schema.MarkdownOut,
		BaseBranch:    "main",
		CurrentBranch: "HEAD",
	}
	assert.NoError(t, PrintCommitsTable(nil, cfg))
}
