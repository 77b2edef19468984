package core

import (
	"fmt"
	"sort"

	"github.com/huangsam/mrsummary/schema"
)

// KeyChangeLimit is the number of top commits surfaced as Key Changes.
const KeyChangeLimit = 2

// BuildReport rolls the classified commits and file buckets into a summary
// report. Deterministic given identical inputs; pure computation with no
// external calls.
func BuildReport(commits []schema.CommitRecord, classifier *Classifier, impact *FileImpact) schema.SummaryReport {
	report := schema.SummaryReport{
		Categories:      make(map[schema.CategoryLabel][]schema.CommitEntry),
		FilesByBucket:   map[string][]string{},
		FilesAffected:   []string{},
		KeyChanges:      []schema.KeyChange{},
		BreakingChanges: []schema.CommitEntry{},
		BucketNames:     impact.BucketOrder(),
	}

	if len(commits) == 0 {
		report.Title = "No changes detected"
		report.Overview = "No commits found between the specified branches."
		report.Stats.EstimatedReviewTime = "0 minutes"
		return report
	}

	// Totals and the distinct changed-file union
	fileSet := make(map[string]struct{})
	for _, c := range commits {
		report.Stats.TotalCommits++
		report.Stats.Insertions += c.Insertions
		report.Stats.Deletions += c.Deletions
		for _, f := range c.FilesChanged {
			fileSet[f] = struct{}{}
		}
	}
	for f := range fileSet {
		report.FilesAffected = append(report.FilesAffected, f)
	}
	sort.Strings(report.FilesAffected)
	report.Stats.FilesChanged = len(report.FilesAffected)

	// Per-category commit lists; a commit with multiple labels appears
	// under each of them.
	for _, c := range commits {
		entry := toEntry(c)
		for _, label := range classifier.Classify(c.Message) {
			report.Categories[label] = append(report.Categories[label], entry)
		}
	}
	report.BreakingChanges = append(report.BreakingChanges, report.Categories[schema.CategoryBreakingChange]...)

	report.KeyChanges = topKeyChanges(commits, KeyChangeLimit)
	report.FilesByBucket = impact.Bucketize(report.FilesAffected)

	report.Stats.EstimatedReviewTime = EstimateReviewTime(
		report.Stats.TotalCommits,
		report.Stats.FilesChanged,
		report.Stats.Insertions+report.Stats.Deletions,
	)

	dominant := DominantCategory(report.Categories)
	report.Title = buildTitle(dominant, commits, report.Categories)
	report.Overview = fmt.Sprintf(
		"This merge request contains %d commits with %d files changed (%d insertions, %d deletions).",
		report.Stats.TotalCommits, report.Stats.FilesChanged,
		report.Stats.Insertions, report.Stats.Deletions,
	)

	return report
}

// toEntry converts a commit record to its compact report view.
func toEntry(c schema.CommitRecord) schema.CommitEntry {
	return schema.CommitEntry{
		Hash:       c.Hash,
		Message:    c.Message,
		Insertions: c.Insertions,
		Deletions:  c.Deletions,
	}
}

// topKeyChanges returns the top-N commits by lines changed, descending.
// Ties keep the original reverse-chronological order.
func topKeyChanges(commits []schema.CommitRecord, limit int) []schema.KeyChange {
	idx := make([]int, len(commits))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return commits[idx[a]].TotalLines() > commits[idx[b]].TotalLines()
	})

	if limit > len(idx) {
		limit = len(idx)
	}
	changes := make([]schema.KeyChange, 0, limit)
	for _, i := range idx[:limit] {
		c := commits[i]
		changes = append(changes, schema.KeyChange{
			CommitEntry:  toEntry(c),
			LinesChanged: c.TotalLines(),
		})
	}
	return changes
}

// DominantCategory returns the most-represented category. Ties are broken
// by the fixed priority order; custom categories outside the priority list
// lose ties to built-in ones.
func DominantCategory(categories map[schema.CategoryLabel][]schema.CommitEntry) schema.CategoryLabel {
	best := schema.CategoryChore
	bestCount := -1

	rank := make(map[schema.CategoryLabel]int, len(schema.CategoryPriority))
	for i, label := range schema.CategoryPriority {
		rank[label] = i
	}
	rankOf := func(label schema.CategoryLabel) int {
		if r, ok := rank[label]; ok {
			return r
		}
		return len(schema.CategoryPriority)
	}

	// Walk known priorities first, then any custom labels sorted by name,
	// so the result is deterministic regardless of map iteration order.
	labels := make([]schema.CategoryLabel, 0, len(categories))
	for label := range categories {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(a, b int) bool {
		if rankOf(labels[a]) != rankOf(labels[b]) {
			return rankOf(labels[a]) < rankOf(labels[b])
		}
		return labels[a] < labels[b]
	})

	for _, label := range labels {
		if count := len(categories[label]); count > bestCount {
			best = label
			bestCount = count
		}
	}
	return best
}

// buildTitle derives a merge request title from the dominant category.
func buildTitle(dominant schema.CategoryLabel, commits []schema.CommitRecord, categories map[schema.CategoryLabel][]schema.CommitEntry) string {
	if len(commits) == 1 {
		return fmt.Sprintf("%s: %s", dominant.TitlePrefix(), commits[0].Message)
	}

	count := len(categories[dominant])
	switch dominant {
	case schema.CategoryFeature:
		return fmt.Sprintf("feat: %d new features and improvements", count)
	case schema.CategoryBugFix:
		return fmt.Sprintf("fix: %d bug fixes and improvements", count)
	case schema.CategoryRefactor:
		return "refactor: code quality improvements and optimizations"
	default:
		return fmt.Sprintf("%s: %d commits with various improvements", dominant.TitlePrefix(), len(commits))
	}
}

// EstimateReviewTime derives a human-readable review-time estimate from the
// change set size. The formula is a tunable heuristic; the binding contract
// is that it is monotonically non-decreasing in both lines and files, and
// non-zero for any non-empty change set.
func EstimateReviewTime(commits, files, lines int) string {
	totalMinutes := commits*2 + lines/50 + files/2

	if commits == 0 && files == 0 && lines == 0 {
		return "0 minutes"
	}
	if totalMinutes < 1 {
		totalMinutes = 1
	}
	if totalMinutes < 60 {
		return fmt.Sprintf("%d minutes", totalMinutes)
	}

	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
