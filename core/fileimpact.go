package core

import (
	"sort"
	"strings"

	"github.com/huangsam/mrsummary/schema"
)

// FileImpact groups changed file paths into semantic buckets using an
// ordered rule table. Every path lands in exactly one bucket: rules are
// evaluated top to bottom, the first match wins, and paths matching no
// rule fall into the catch-all.
type FileImpact struct {
	rules []schema.BucketRule
}

// NewFileImpact creates a file impact analyzer from the given rule table.
// Passing nil uses the default table.
func NewFileImpact(rules []schema.BucketRule) *FileImpact {
	if rules == nil {
		rules = schema.GetDefaultBucketRules()
	}
	return &FileImpact{rules: rules}
}

// BucketFor returns the bucket name for a single path.
func (f *FileImpact) BucketFor(path string) string {
	lower := strings.ToLower(path)
	for _, rule := range f.rules {
		if matchesBucketRule(lower, rule) {
			return rule.Name
		}
	}
	return schema.OtherBucket
}

// Bucketize assigns each path to its bucket and returns the mapping with
// paths sorted within each bucket. Empty buckets are omitted.
func (f *FileImpact) Bucketize(paths []string) map[string][]string {
	buckets := make(map[string][]string)
	for _, p := range paths {
		name := f.BucketFor(p)
		buckets[name] = append(buckets[name], p)
	}
	for name := range buckets {
		sort.Strings(buckets[name])
	}
	return buckets
}

// BucketOrder returns the display order for this analyzer's buckets.
func (f *FileImpact) BucketOrder() []string {
	return schema.BucketOrder(f.rules)
}

// ChangeMagnitude computes per-file lines touched across all commits in
// the range.
func ChangeMagnitude(commits []schema.CommitRecord) map[string]int {
	magnitude := make(map[string]int)
	for _, c := range commits {
		if len(c.FilesChanged) == 0 {
			continue
		}
		// Per-commit churn is attributed evenly when numstat detail is not
		// carried per file; the per-commit total is what the report shows.
		perFile := c.TotalLines() / len(c.FilesChanged)
		for _, p := range c.FilesChanged {
			magnitude[p] += perFile
		}
	}
	return magnitude
}

// matchesBucketRule reports whether a lowercased path satisfies a rule.
func matchesBucketRule(lower string, rule schema.BucketRule) bool {
	for _, sub := range rule.Substrings {
		if sub != "" && strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	for _, ext := range rule.Extensions {
		if ext != "" && strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
