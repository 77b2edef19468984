// Package core has the git-log analysis and categorization engine.
package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/huangsam/mrsummary/internal/contract"
	"github.com/huangsam/mrsummary/schema"
	"github.com/rs/zerolog/log"
)

// ExtractCommits runs a revision-range query between the configured base and
// current references and parses the raw output into commit records. Commits
// come back in reverse-chronological order, matching git log traversal.
// An empty range yields an empty slice, not an error.
func ExtractCommits(ctx context.Context, client contract.GitClient, cfg *contract.Config) ([]schema.CommitRecord, error) {
	if err := client.ValidateRepo(ctx, cfg.RepoPath); err != nil {
		return nil, err
	}
	if _, err := client.ResolveRef(ctx, cfg.RepoPath, cfg.BaseBranch); err != nil {
		return nil, err
	}
	if _, err := client.ResolveRef(ctx, cfg.RepoPath, cfg.CurrentBranch); err != nil {
		return nil, err
	}

	opts := contract.LogOptions{
		MergesOnly: cfg.MergesOnly,
		Since:      cfg.Since,
		Until:      cfg.Until,
	}
	out, err := client.RangeLog(ctx, cfg.RepoPath, cfg.BaseBranch, cfg.CurrentBranch, opts)
	if err != nil {
		return nil, wrapExtraction(err)
	}

	commits := ParseRangeLog(out)
	log.Debug().
		Str("base", cfg.BaseBranch).
		Str("current", cfg.CurrentBranch).
		Int("commits", len(commits)).
		Msg("extracted revision range")
	return commits, nil
}

// wrapExtraction tags an underlying git failure with the generic
// extraction sentinel so callers can match it with errors.Is.
func wrapExtraction(err error) error {
	return fmt.Errorf("%w: %v", contract.ErrExtraction, err)
}

// ParseRangeLog parses raw range-log output into commit records. Each commit
// is a "--hash|author|date|subject" header line followed by numstat rows of
// the form "added\tdeleted\tpath".
func ParseRangeLog(out []byte) []schema.CommitRecord {
	var commits []schema.CommitRecord
	var current *schema.CommitRecord

	flush := func() {
		if current != nil {
			commits = append(commits, *current)
			current = nil
		}
	}

	for _, l := range strings.Split(string(out), "\n") {
		l = strings.Trim(l, " \t\r'")

		if strings.HasPrefix(l, contract.CommitHeaderPrefix) {
			flush()
			if rec, ok := parseCommitHeader(l); ok {
				current = &rec
			}
			continue
		}
		if l == "" || current == nil {
			continue
		}

		path, add, del, ok := parseNumstatLine(l)
		if !ok {
			continue
		}
		current.Insertions += add
		current.Deletions += del
		current.FilesChanged = append(current.FilesChanged, path)
	}
	flush()

	return commits
}

// parseCommitHeader extracts hash, author, date and subject from a header line.
func parseCommitHeader(line string) (schema.CommitRecord, bool) {
	parts := strings.SplitN(line[len(contract.CommitHeaderPrefix):], "|", 4)
	if len(parts) != 4 || parts[0] == "" {
		return schema.CommitRecord{}, false
	}
	return schema.CommitRecord{
		Hash:    parts[0],
		Author:  parts[1],
		Date:    parts[2],
		Message: parts[3],
	}, true
}

// parseNumstatLine parses an "added\tdeleted\tpath" row. Binary files report
// "-" for both counts and contribute zero churn. Renamed paths collapse to
// the new name.
func parseNumstatLine(line string) (string, int, int, bool) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) < 3 || parts[2] == "" {
		return "", 0, 0, false
	}
	add := parseChurnValue(parts[0])
	del := parseChurnValue(parts[1])
	return normalizeRenamePath(parts[2]), add, del, true
}

// parseChurnValue converts a churn string to int, handling "-" as 0.
func parseChurnValue(s string) int {
	if s == "-" {
		return 0
	}
	if val, err := strconv.Atoi(s); err == nil && val >= 0 {
		return val
	}
	return 0
}

// normalizeRenamePath resolves git rename notation to the new path.
// Handles both "old => new" and "prefix{old => new}suffix" forms.
func normalizeRenamePath(path string) string {
	if !strings.Contains(path, " => ") {
		return path
	}

	if !strings.Contains(path, "{") {
		parts := strings.SplitN(path, " => ", 2)
		return parts[1]
	}

	braceStart := strings.Index(path, "{")
	braceEnd := strings.Index(path, "}")
	if braceStart == -1 || braceEnd == -1 || braceStart >= braceEnd {
		return path
	}

	prefix := path[:braceStart]
	renamePart := path[braceStart+1 : braceEnd]
	suffix := path[braceEnd+1:]

	renameParts := strings.SplitN(renamePart, " => ", 2)
	if len(renameParts) != 2 {
		return path
	}
	// Collapse doubled separators left by empty rename sides, e.g. "a/{ => b}/c.go"
	return strings.ReplaceAll(prefix+renameParts[1]+suffix, "//", "/")
}
