// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/mrsummary/schema"
)

// LogOptions narrows the revision-range query.
type LogOptions struct {
	MergesOnly bool   // Restrict the log to merge commits
	Since      string // Optional lower date bound (YYYY-MM-DD)
	Until      string // Optional upper date bound (YYYY-MM-DD)
}

// GitClient defines the necessary operations for revision-range analysis.
// This allows the core pipeline to be tested without a real git executable.
// All methods are read-only and take an explicit repository root; the core
// never depends on process-global state.
type GitClient interface {
	// --- Validation / Reference Resolution ---

	// ValidateRepo verifies that repoPath contains a git metadata directory.
	// Returns an error wrapping ErrRepositoryNotFound otherwise.
	ValidateRepo(ctx context.Context, repoPath string) error

	// ResolveRef resolves a reference (branch, tag, hash) to a full commit
	// hash. Returns an error wrapping ErrRevisionNotFound when it does not
	// resolve.
	ResolveRef(ctx context.Context, repoPath string, ref string) (string, error)

	// RepoRoot returns the absolute path to the root of the repository
	// containing the given context path.
	RepoRoot(ctx context.Context, contextPath string) (string, error)

	// --- Revision-Range Query ---

	// RangeLog returns the raw commit log output for the exclusive
	// base..current range, with per-file numstat rows per commit.
	RangeLog(ctx context.Context, repoPath, baseRef, currentRef string, opts LogOptions) ([]byte, error)

	// --- Repository Inspection ---

	// CurrentBranch returns the checked-out branch name, or "" when detached.
	CurrentBranch(ctx context.Context, repoPath string) (string, error)

	// ListBranches returns the local and remote branch names.
	ListBranches(ctx context.Context, repoPath string) (local []string, remote []string, err error)

	// RemoteURL returns the origin remote URL, or "" when none is configured.
	RemoteURL(ctx context.Context, repoPath string) (string, error)

	// WorkingTreeStatus returns dirty/untracked/staged/unstaged counts for
	// the working tree.
	WorkingTreeStatus(ctx context.Context, repoPath string) (schema.RepoStatus, error)
}
