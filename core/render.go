package core

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/huangsam/mrsummary/internal/contract"
	"github.com/huangsam/mrsummary/schema"
)

// maxFilesPerBucket caps the file list per bucket in markdown output.
const maxFilesPerBucket = 10

// Render formats a summary report in the requested output mode. Only
// markdown and json are accepted; anything else fails with the unsupported
// format sentinel and no partial output.
func Render(report schema.SummaryReport, format schema.OutputMode) (string, error) {
	switch format {
	case schema.MarkdownOut:
		return renderMarkdown(report), nil
	case schema.JSONOut:
		return renderJSON(report)
	default:
		return "", fmt.Errorf("%w: %q (expected markdown or json)", contract.ErrUnsupportedFormat, format)
	}
}

// renderJSON emits the report as an indented, losslessly structured record.
func renderJSON(report schema.SummaryReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return string(data), nil
}

// renderMarkdown emits the fixed markdown document structure.
func renderMarkdown(report schema.SummaryReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", report.Title)
	b.WriteString("## Overview\n")
	b.WriteString(report.Overview)
	b.WriteString("\n")

	if len(report.KeyChanges) > 0 {
		b.WriteString("\n## Key Changes\n")
		for _, kc := range report.KeyChanges {
			fmt.Fprintf(&b, "- %s (%s) - %d lines changed\n", kc.Message, kc.Hash, kc.LinesChanged)
		}
	}

	writeCategorySections(&b, report)
	writeFilesAffected(&b, report)
	writeSummary(&b, report)

	return b.String()
}

// writeCategorySections emits one subsection per non-empty category, in
// priority order with custom categories last.
func writeCategorySections(b *strings.Builder, report schema.SummaryReport) {
	for _, label := range orderedCategories(report.Categories) {
		entries := report.Categories[label]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(b, "\n## %s (%d)\n", label.Heading(), len(entries))
		for _, e := range entries {
			fmt.Fprintf(b, "- %s (%s)\n", e.Message, e.Hash)
		}
	}
}

// writeFilesAffected emits the bucket-grouped file listing.
func writeFilesAffected(b *strings.Builder, report schema.SummaryReport) {
	if len(report.FilesAffected) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## Files Affected (%d)\n", len(report.FilesAffected))
	for _, bucket := range report.BucketNames {
		files := report.FilesByBucket[bucket]
		if len(files) == 0 {
			continue
		}
		fmt.Fprintf(b, "\n**%s:**\n", bucket)
		for i, f := range files {
			if i == maxFilesPerBucket {
				fmt.Fprintf(b, "- ... and %d more\n", len(files)-maxFilesPerBucket)
				break
			}
			fmt.Fprintf(b, "- `%s`\n", f)
		}
	}
}

// writeSummary emits the aggregate statistics block. The plain "key: value"
// lines are part of the output contract.
func writeSummary(b *strings.Builder, report schema.SummaryReport) {
	b.WriteString("\n## Summary\n")
	fmt.Fprintf(b, "- Total Commits: %d\n", report.Stats.TotalCommits)
	fmt.Fprintf(b, "- Files Changed: %d\n", report.Stats.FilesChanged)
	fmt.Fprintf(b, "- Lines Added: %d\n", report.Stats.Insertions)
	fmt.Fprintf(b, "- Lines Removed: %d\n", report.Stats.Deletions)
	fmt.Fprintf(b, "- Estimated Review Time: %s\n", report.Stats.EstimatedReviewTime)
}

// orderedCategories returns the report's categories in priority order,
// followed by custom categories in name order.
func orderedCategories(categories map[schema.CategoryLabel][]schema.CommitEntry) []schema.CategoryLabel {
	known := make(map[schema.CategoryLabel]bool, len(schema.CategoryPriority))
	ordered := make([]schema.CategoryLabel, 0, len(categories))
	for _, label := range schema.CategoryPriority {
		known[label] = true
		if _, ok := categories[label]; ok {
			ordered = append(ordered, label)
		}
	}

	var custom []schema.CategoryLabel
	for label := range categories {
		if !known[label] {
			custom = append(custom, label)
		}
	}
	sort.Slice(custom, func(a, b int) bool { return custom[a] < custom[b] })
	return append(ordered, custom...)
}
