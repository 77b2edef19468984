package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/huangsam/mrsummary/schema"
)

// significantChangeLines is the lines-changed threshold above which a
// commit counts as a significant change in the analysis report.
const significantChangeLines = 100

// Analysis holds the categorized breakdown of a commit range, without the
// merge-request framing of SummaryReport.
type Analysis struct {
	TotalCommits       int                                           `json:"total_commits"`
	TotalInsertions    int                                           `json:"total_insertions"`
	TotalDeletions     int                                           `json:"total_deletions"`
	Categories         map[schema.CategoryLabel][]schema.CommitEntry `json:"categories"`
	SignificantChanges []schema.KeyChange                            `json:"significant_changes"`
	FilesByBucket      map[string][]string                           `json:"files_by_bucket"`
	FilesAffected      []string                                      `json:"files_affected"`

	bucketNames []string
}

// BuildAnalysis categorizes commits and computes the per-category detail
// used by the analyze command and MCP tool. Pure computation.
func BuildAnalysis(commits []schema.CommitRecord, classifier *Classifier, impact *FileImpact) Analysis {
	analysis := Analysis{
		Categories:         make(map[schema.CategoryLabel][]schema.CommitEntry),
		SignificantChanges: []schema.KeyChange{},
		FilesByBucket:      map[string][]string{},
		FilesAffected:      []string{},
		bucketNames:        impact.BucketOrder(),
	}

	fileSet := make(map[string]struct{})
	for _, c := range commits {
		analysis.TotalCommits++
		analysis.TotalInsertions += c.Insertions
		analysis.TotalDeletions += c.Deletions

		entry := toEntry(c)
		for _, label := range classifier.Classify(c.Message) {
			analysis.Categories[label] = append(analysis.Categories[label], entry)
		}
		if c.TotalLines() > significantChangeLines {
			analysis.SignificantChanges = append(analysis.SignificantChanges, schema.KeyChange{
				CommitEntry:  entry,
				LinesChanged: c.TotalLines(),
			})
		}
		for _, f := range c.FilesChanged {
			fileSet[f] = struct{}{}
		}
	}

	for f := range fileSet {
		analysis.FilesAffected = append(analysis.FilesAffected, f)
	}
	sort.Strings(analysis.FilesAffected)
	analysis.FilesByBucket = impact.Bucketize(analysis.FilesAffected)

	return analysis
}

// RenderAnalysis formats an analysis as a markdown report.
func RenderAnalysis(analysis Analysis) string {
	var b strings.Builder

	b.WriteString("# Git Commit Analysis\n\n")
	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- Total Commits: %d\n", analysis.TotalCommits)
	fmt.Fprintf(&b, "- Total Insertions: %d\n", analysis.TotalInsertions)
	fmt.Fprintf(&b, "- Total Deletions: %d\n", analysis.TotalDeletions)
	fmt.Fprintf(&b, "- Files Affected: %d\n", len(analysis.FilesAffected))

	if len(analysis.Categories) > 0 {
		b.WriteString("\n## Commit Categories\n")
		for _, label := range orderedCategories(analysis.Categories) {
			entries := analysis.Categories[label]
			fmt.Fprintf(&b, "\n### %s (%d)\n", label.Heading(), len(entries))
			for _, e := range entries {
				fmt.Fprintf(&b, "- `%s` %s (+%d/-%d)\n", e.Hash, e.Message, e.Insertions, e.Deletions)
			}
		}
	}

	if len(analysis.SignificantChanges) > 0 {
		b.WriteString("\n## Significant Changes\n")
		for _, sc := range analysis.SignificantChanges {
			fmt.Fprintf(&b, "- `%s` %s (%d lines)\n", sc.Hash, sc.Message, sc.LinesChanged)
		}
	}

	if len(analysis.FilesAffected) > 0 {
		b.WriteString("\n## Files Affected\n")
		for _, bucket := range analysis.bucketNames {
			files := analysis.FilesByBucket[bucket]
			if len(files) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n### %s\n", bucket)
			for i, f := range files {
				if i == maxFilesPerBucket {
					fmt.Fprintf(&b, "- ... and %d more\n", len(files)-maxFilesPerBucket)
					break
				}
				fmt.Fprintf(&b, "- `%s`\n", f)
			}
		}
	}

	return b.String()
}
