package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/huangsam/mrsummary/schema"
	"github.com/rs/zerolog/log"
)

// CommitHeaderPrefix marks the pretty-format header line of each commit in
// the range log output. Numstat rows never start with this prefix.
const CommitHeaderPrefix = "--"

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// run executes a git command and returns its stdout output.
func (c *LocalGitClient) run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"--no-pager", "-C", repoPath}, args...)
	log.Debug().Strs("args", fullArgs).Msg("running git")
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// ValidateRepo implements the GitClient interface.
func (c *LocalGitClient) ValidateRepo(ctx context.Context, repoPath string) error {
	if _, err := c.run(ctx, repoPath, "rev-parse", "--git-dir"); err != nil {
		return fmt.Errorf("%w: %s", ErrRepositoryNotFound, repoPath)
	}
	return nil
}

// ResolveRef implements the GitClient interface.
func (c *LocalGitClient) ResolveRef(ctx context.Context, repoPath string, ref string) (string, error) {
	out, err := c.run(ctx, repoPath, "rev-parse", "--verify", "--quiet", ref+"^{commit}")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRevisionNotFound, ref)
	}
	return strings.TrimSpace(string(out)), nil
}

// RepoRoot implements the GitClient interface.
func (c *LocalGitClient) RepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRepositoryNotFound, contextPath)
	}
	return strings.TrimSpace(string(out)), nil
}

// RangeLog implements the GitClient interface. Each commit is emitted as a
// "--hash|author|date|subject" header line followed by numstat rows.
func (c *LocalGitClient) RangeLog(ctx context.Context, repoPath, baseRef, currentRef string, opts LogOptions) ([]byte, error) {
	args := []string{
		"log",
		baseRef + ".." + currentRef,
		"--numstat",
		"--date=short",
		"--pretty=format:" + CommitHeaderPrefix + "%h|%an|%ad|%s",
	}
	if opts.MergesOnly {
		args = append(args, "--merges")
	}
	if opts.Since != "" {
		args = append(args, "--since="+opts.Since)
	}
	if opts.Until != "" {
		args = append(args, "--until="+opts.Until)
	}
	return c.run(ctx, repoPath, args...)
}

// CurrentBranch implements the GitClient interface.
func (c *LocalGitClient) CurrentBranch(ctx context.Context, repoPath string) (string, error) {
	out, err := c.run(ctx, repoPath, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ListBranches implements the GitClient interface.
func (c *LocalGitClient) ListBranches(ctx context.Context, repoPath string) ([]string, []string, error) {
	local, err := c.branchNames(ctx, repoPath, false)
	if err != nil {
		return nil, nil, err
	}
	remote, err := c.branchNames(ctx, repoPath, true)
	if err != nil {
		return nil, nil, err
	}
	return local, remote, nil
}

// branchNames lists branch short names, optionally remote ones.
func (c *LocalGitClient) branchNames(ctx context.Context, repoPath string, remote bool) ([]string, error) {
	args := []string{"branch", "--format=%(refname:short)"}
	if remote {
		args = append(args, "-r")
	}
	out, err := c.run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	return splitNonEmptyLines(string(out)), nil
}

// RemoteURL implements the GitClient interface.
func (c *LocalGitClient) RemoteURL(ctx context.Context, repoPath string) (string, error) {
	out, err := c.run(ctx, repoPath, "config", "--get", "remote.origin.url")
	if err != nil {
		// Repositories without a remote are common and not an error here.
		return "", nil
	}
	return strings.TrimSpace(string(out)), nil
}

// WorkingTreeStatus implements the GitClient interface.
func (c *LocalGitClient) WorkingTreeStatus(ctx context.Context, repoPath string) (schema.RepoStatus, error) {
	var status schema.RepoStatus

	root, err := c.RepoRoot(ctx, repoPath)
	if err != nil {
		return status, err
	}
	status.Repository = filepath.Base(root)

	if status.CurrentBranch, err = c.CurrentBranch(ctx, repoPath); err != nil {
		return status, err
	}
	if status.RemoteURL, err = c.RemoteURL(ctx, repoPath); err != nil {
		return status, err
	}

	porcelain, err := c.run(ctx, repoPath, "status", "--porcelain")
	if err != nil {
		return status, err
	}
	status.IsDirty = strings.TrimSpace(string(porcelain)) != ""

	untracked, err := c.run(ctx, repoPath, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return status, err
	}
	status.UntrackedFiles = len(splitNonEmptyLines(string(untracked)))

	staged, err := c.run(ctx, repoPath, "diff", "--cached", "--name-only")
	if err != nil {
		return status, err
	}
	status.StagedChanges = len(splitNonEmptyLines(string(staged)))

	unstaged, err := c.run(ctx, repoPath, "diff", "--name-only")
	if err != nil {
		return status, err
	}
	status.UnstagedChanges = len(splitNonEmptyLines(string(unstaged)))

	return status, nil
}

// splitNonEmptyLines splits output into trimmed, non-empty lines.
func splitNonEmptyLines(s string) []string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
