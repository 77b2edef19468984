// Package schema has models and rule tables for all parts of mrsummary.
package schema

// CommitRecord represents a single commit extracted from a revision range.
// It is immutable once extracted and owned by the pipeline run that created it.
type CommitRecord struct {
	Hash         string   `json:"hash"`          // Short commit hash
	Author       string   `json:"author"`        // Commit author name
	Date         string   `json:"date"`          // Commit date (YYYY-MM-DD)
	Message      string   `json:"message"`       // First line of the commit message
	Insertions   int      `json:"insertions"`    // Lines added across all files in the commit
	Deletions    int      `json:"deletions"`     // Lines removed across all files in the commit
	FilesChanged []string `json:"files_changed"` // Paths touched by the commit
}

// TotalLines returns the total change magnitude of the commit.
func (c CommitRecord) TotalLines() int {
	return c.Insertions + c.Deletions
}

// CommitEntry is the compact per-commit view embedded in reports.
type CommitEntry struct {
	Hash       string `json:"hash"`
	Message    string `json:"message"`
	Insertions int    `json:"insertions"`
	Deletions  int    `json:"deletions"`
}

// KeyChange is a high-impact commit surfaced in the Key Changes section.
type KeyChange struct {
	CommitEntry
	LinesChanged int `json:"lines_changed"`
}

// Statistics holds the aggregate totals for a revision range.
type Statistics struct {
	TotalCommits        int    `json:"total_commits"`
	FilesChanged        int    `json:"files_changed"`
	Insertions          int    `json:"insertions"`
	Deletions           int    `json:"deletions"`
	EstimatedReviewTime string `json:"estimated_review_time"`
}

// SummaryReport aggregates everything needed to render a merge request
// summary. It is created once per invocation and discarded after rendering.
type SummaryReport struct {
	Title           string                          `json:"title"`
	Overview        string                          `json:"overview"`
	KeyChanges      []KeyChange                     `json:"key_changes"`
	Categories      map[CategoryLabel][]CommitEntry `json:"categories"`
	BreakingChanges []CommitEntry                   `json:"breaking_changes"`
	FilesByBucket   map[string][]string             `json:"files_by_bucket"`
	FilesAffected   []string                        `json:"files_affected"`
	Stats           Statistics                      `json:"statistics"`

	// BucketNames preserves the configured bucket display order, which a
	// JSON map cannot.
	BucketNames []string `json:"-"`
}

// Empty reports whether the range contained no commits.
func (r SummaryReport) Empty() bool {
	return r.Stats.TotalCommits == 0
}

// RepoStatus describes the current state of a repository working tree.
type RepoStatus struct {
	Repository      string `json:"repository"`
	CurrentBranch   string `json:"current_branch"`
	RemoteURL       string `json:"remote_url"`
	IsDirty         bool   `json:"is_dirty"`
	UntrackedFiles  int    `json:"untracked_files"`
	StagedChanges   int    `json:"staged_changes"`
	UnstagedChanges int    `json:"unstaged_changes"`
}

// BranchList holds local and remote branch names for a repository.
type BranchList struct {
	LocalBranches  []string `json:"local_branches"`
	RemoteBranches []string `json:"remote_branches"`
	CurrentBranch  string   `json:"current_branch"`
}
