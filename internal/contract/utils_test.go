package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected string
	}{
		{
			name:     "zero lines",
			input:    0,
			expected: MinorValue,
		},
		{
			name:     "just before moderate",
			input:    19,
			expected: MinorValue,
		},
		{
			name:     "exactly moderate",
			input:    20,
			expected: ModerateValue,
		},
		{
			name:     "just before large",
			input:    99,
			expected: ModerateValue,
		},
		{
			name:     "exactly large",
			input:    100,
			expected: LargeValue,
		},
		{
			name:     "just before major",
			input:    499,
			expected: LargeValue,
		},
		{
			name:     "exactly major",
			input:    500,
			expected: MajorValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	// Colored output still contains the plain label text.
	for _, lines := range []int{0, 20, 100, 500} {
		assert.Contains(t, GetColorLabel(lines), GetPlainLabel(lines))
	}
}

func TestTruncateMessage(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		maxWidth int
		expected string
	}{
		{
			name:     "shorter than width",
			msg:      "short",
			maxWidth: 10,
			expected: "short",
		},
		{
			name:     "exactly width",
			msg:      "exact",
			maxWidth: 5,
			expected: "exact",
		},
		{
			name:     "truncated with ellipsis",
			msg:      "a very long commit message",
			maxWidth: 10,
			expected: "a very...",
		},
		{
			name:     "zero width passes through",
			msg:      "untouched",
			maxWidth: 0,
			expected: "untouched",
		},
		{
			name:     "tiny width hard-cuts",
			msg:      "abcdef",
			maxWidth: 3,
			expected: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateMessage(tt.msg, tt.maxWidth))
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		f, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, f)
	})

	t.Run("path creates file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.md")
		f, err := SelectOutputFile(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		assert.Equal(t, path, f.Name())
	})
}

func TestSplitNonEmptyLines(t *testing.T) {
	lines := splitNonEmptyLines("main\n  develop  \n\nfeature/x\n")
	assert.Equal(t, []string{"main", "develop", "feature/x"}, lines)

	assert.Empty(t, splitNonEmptyLines(""))
	assert.Empty(t, splitNonEmptyLines("\n\n"))
}
