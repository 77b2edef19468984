package core

import (
	"testing"

	"github.com/huangsam/mrsummary/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketFor_DefaultRules(t *testing.T) {
	f := NewFileImpact(nil)

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "test file by substring",
			path:     "core/parser_test.go",
			expected: "Tests",
		},
		{
			name:     "test path wins over services path",
			path:     "services/api_test.go",
			expected: "Tests",
		},
		{
			name:     "markdown is documentation",
			path:     "README.md",
			expected: "Documentation",
		},
		{
			name:     "docs directory is documentation",
			path:     "docs/guide.html",
			expected: "Documentation",
		},
		{
			name:     "yaml is configuration",
			path:     "deploy/settings.yaml",
			expected: "Configuration",
		},
		{
			name:     "service path",
			path:     "internal/service/billing.go",
			expected: "Services",
		},
		{
			name:     "model path",
			path:     "internal/models/user.go",
			expected: "Models",
		},
		{
			name:     "handler path",
			path:     "internal/handlers/login.go",
			expected: "Controllers",
		},
		{
			name:     "case insensitive",
			path:     "Internal/SERVICE/Billing.go",
			expected: "Services",
		},
		{
			name:     "unmatched path falls into catch-all",
			path:     "main.go",
			expected: schema.OtherBucket,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.BucketFor(tt.path))
		})
	}
}

func TestBucketize_TotalAndExclusive(t *testing.T) {
	f := NewFileImpact(nil)
	paths := []string{
		"core/parser.go",
		"core/parser_test.go",
		"README.md",
		"config.yaml",
		"internal/service/billing.go",
	}

	buckets := f.Bucketize(paths)

	// Every path lands in exactly one bucket.
	total := 0
	seen := make(map[string]int)
	for _, files := range buckets {
		total += len(files)
		for _, p := range files {
			seen[p]++
		}
	}
	assert.Equal(t, len(paths), total)
	for _, p := range paths {
		assert.Equal(t, 1, seen[p], "path %s should appear exactly once", p)
	}

	assert.Equal(t, []string{"core/parser_test.go"}, buckets["Tests"])
	assert.Equal(t, []string{"core/parser.go"}, buckets[schema.OtherBucket])
}

func TestBucketize_SortedAndOmitsEmpty(t *testing.T) {
	f := NewFileImpact(nil)

	buckets := f.Bucketize([]string{"docs/z.md", "docs/a.md"})
	require.Len(t, buckets, 1)
	assert.Equal(t, []string{"docs/a.md", "docs/z.md"}, buckets["Documentation"])
}

func TestBucketFor_CustomRulesWinFirst(t *testing.T) {
	// A custom bucket prepended to the defaults claims paths before them.
	rules := append([]schema.BucketRule{
		{Name: "Migrations", Substrings: []string{"migrations/"}},
	}, schema.GetDefaultBucketRules()...)
	f := NewFileImpact(rules)

	assert.Equal(t, "Migrations", f.BucketFor("migrations/0001_init.yaml"))
	assert.Equal(t, "Configuration", f.BucketFor("deploy/app.yaml"))
}

func TestChangeMagnitude(t *testing.T) {
	commits := []schema.CommitRecord{
		{Hash: "a", Insertions: 10, Deletions: 10, FilesChanged: []string{"x.go", "y.go"}},
		{Hash: "b", Insertions: 6, Deletions: 0, FilesChanged: []string{"x.go"}},
		{Hash: "c", Insertions: 5, Deletions: 5}, // no files, contributes nothing
	}

	magnitude := ChangeMagnitude(commits)
	assert.Equal(t, 16, magnitude["x.go"])
	assert.Equal(t, 10, magnitude["y.go"])
	assert.Len(t, magnitude, 2)
}

func TestBucketOrder(t *testing.T) {
	f := NewFileImpact(nil)
	order := f.BucketOrder()

	require.NotEmpty(t, order)
	assert.Equal(t, "Tests", order[0])
	assert.Equal(t, schema.OtherBucket, order[len(order)-1])
}
