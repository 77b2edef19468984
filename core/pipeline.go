package core

import (
	"context"

	"github.com/huangsam/mrsummary/internal/contract"
	"github.com/huangsam/mrsummary/schema"
)

// Each pipeline run processes one (base, current, repo) triple to
// completion before returning. Runs share no mutable state, so concurrent
// invocations from the CLI or MCP server are independent.

// GenerateSummary runs the full pipeline and renders the merge request
// summary in the configured format.
func GenerateSummary(ctx context.Context, client contract.GitClient, cfg *contract.Config) (string, error) {
	commits, err := ExtractCommits(ctx, client, cfg)
	if err != nil {
		return "", err
	}
	report := BuildReport(commits, NewClassifier(cfg.CategoryRules), NewFileImpact(cfg.BucketRules))
	return Render(report, cfg.Format)
}

// AnalyzeCommits runs the extraction and categorization stages and renders
// the markdown analysis report.
func AnalyzeCommits(ctx context.Context, client contract.GitClient, cfg *contract.Config) (string, error) {
	commits, err := ExtractCommits(ctx, client, cfg)
	if err != nil {
		return "", err
	}
	analysis := BuildAnalysis(commits, NewClassifier(cfg.CategoryRules), NewFileImpact(cfg.BucketRules))
	return RenderAnalysis(analysis), nil
}

// CommitRange returns the raw commit records for the configured range.
func CommitRange(ctx context.Context, client contract.GitClient, cfg *contract.Config) ([]schema.CommitRecord, error) {
	return ExtractCommits(ctx, client, cfg)
}

// ChangedFiles returns the bucketed union of files changed in the range,
// together with per-file change magnitude.
func ChangedFiles(ctx context.Context, client contract.GitClient, cfg *contract.Config) (map[string][]string, map[string]int, error) {
	commits, err := ExtractCommits(ctx, client, cfg)
	if err != nil {
		return nil, nil, err
	}

	fileSet := make(map[string]struct{})
	for _, c := range commits {
		for _, f := range c.FilesChanged {
			fileSet[f] = struct{}{}
		}
	}
	files := make([]string, 0, len(fileSet))
	for f := range fileSet {
		files = append(files, f)
	}

	impact := NewFileImpact(cfg.BucketRules)
	return impact.Bucketize(files), ChangeMagnitude(commits), nil
}
