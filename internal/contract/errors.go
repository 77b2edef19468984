package contract

import "errors"

// Error taxonomy for the analysis pipeline. Extractor errors are surfaced
// unmodified to the caller; wrap these sentinels with fmt.Errorf("%w: ...")
// and test with errors.Is.
var (
	// ErrRepositoryNotFound means the repository root does not contain a
	// valid git metadata directory.
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrRevisionNotFound means a base or current reference did not resolve
	// to a commit in the repository.
	ErrRevisionNotFound = errors.New("revision not found")

	// ErrUnsupportedFormat means the format selector is outside the
	// supported set (markdown, json).
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrExtraction wraps any underlying git query failure that is not one
	// of the more specific errors above.
	ErrExtraction = errors.New("extraction failed")
)
