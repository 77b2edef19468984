package core

import (
	"testing"

	"github.com/huangsam/mrsummary/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAnalysis(t *testing.T) {
	commits := []schema.CommitRecord{
		{Hash: "a", Message: "feat: add exporter", Insertions: 90, Deletions: 30, FilesChanged: []string{"export/exporter.go"}},
		{Hash: "b", Message: "fix: exporter panic", Insertions: 3, Deletions: 3, FilesChanged: []string{"export/exporter.go", "export/exporter_test.go"}},
	}

	analysis := BuildAnalysis(commits, NewClassifier(nil), NewFileImpact(nil))

	assert.Equal(t, 2, analysis.TotalCommits)
	assert.Equal(t, 93, analysis.TotalInsertions)
	assert.Equal(t, 33, analysis.TotalDeletions)
	assert.Equal(t, []string{"export/exporter.go", "export/exporter_test.go"}, analysis.FilesAffected)

	require.Len(t, analysis.Categories[schema.CategoryFeature], 1)
	require.Len(t, analysis.Categories[schema.CategoryBugFix], 1)

	// 120 lines changed crosses the significance threshold; 6 does not.
	require.Len(t, analysis.SignificantChanges, 1)
	assert.Equal(t, "a", analysis.SignificantChanges[0].Hash)
	assert.Equal(t, 120, analysis.SignificantChanges[0].LinesChanged)
}

func TestBuildAnalysis_Empty(t *testing.T) {
	analysis := BuildAnalysis(nil, NewClassifier(nil), NewFileImpact(nil))

	assert.Zero(t, analysis.TotalCommits)
	assert.Empty(t, analysis.SignificantChanges)
	assert.Empty(t, analysis.FilesAffected)
}

func TestRenderAnalysis(t *testing.T) {
	commits := []schema.CommitRecord{
		{Hash: "a", Message: "feat: add exporter", Insertions: 90, Deletions: 30, FilesChanged: []string{"export/exporter.go"}},
	}
	analysis := BuildAnalysis(commits, NewClassifier(nil), NewFileImpact(nil))
	out := RenderAnalysis(analysis)

	assert.Contains(t, out, "# Git Commit Analysis\n")
	assert.Contains(t, out, "- Total Commits: 1\n")
	assert.Contains(t, out, "- Total Insertions: 90\n")
	assert.Contains(t, out, "- Total Deletions: 30\n")
	assert.Contains(t, out, "- Files Affected: 1\n")
	assert.Contains(t, out, "### 🚀 New Features (1)\n")
	assert.Contains(t, out, "- `a` feat: add exporter (+90/-30)\n")
	assert.Contains(t, out, "## Significant Changes\n")
	assert.Contains(t, out, "- `a` feat: add exporter (120 lines)\n")
}

func TestRenderAnalysis_EmptyOmitsSections(t *testing.T) {
	out := RenderAnalysis(BuildAnalysis(nil, NewClassifier(nil), NewFileImpact(nil)))

	assert.Contains(t, out, "- Total Commits: 0\n")
	assert.NotContains(t, out, "## Commit Categories")
	assert.NotContains(t, out, "## Significant Changes")
}
