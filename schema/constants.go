package schema

// Custom string types for type safety.
type (
	// CategoryLabel represents a semantic category assigned to a commit.
	CategoryLabel string

	// OutputMode represents the format of the rendered summary.
	OutputMode string
)

// All commit categories supported.
const (
	CategoryFeature        CategoryLabel = "feature"
	CategoryBugFix         CategoryLabel = "bug_fix"
	CategoryRefactor       CategoryLabel = "refactor"
	CategoryBreakingChange CategoryLabel = "breaking_change"
	CategorySecurity       CategoryLabel = "security"
	CategoryPerformance    CategoryLabel = "performance"
	CategoryTest           CategoryLabel = "test"
	CategoryDocumentation  CategoryLabel = "documentation"
	CategoryChore          CategoryLabel = "chore" // fallback when nothing matches
)

// All output modes supported.
const (
	MarkdownOut OutputMode = "markdown" // default
	JSONOut     OutputMode = "json"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	MarkdownOut: {},
	JSONOut:     {},
}

// CategoryPriority is the fixed ordering used to pick a dominant category
// when several categories tie on commit count, and to order category
// sections in rendered output.
var CategoryPriority = []CategoryLabel{
	CategoryFeature,
	CategoryBugFix,
	CategoryRefactor,
	CategoryBreakingChange,
	CategorySecurity,
	CategoryPerformance,
	CategoryDocumentation,
	CategoryTest,
	CategoryChore,
}

// categoryHeadings maps each category to its emoji-prefixed section heading.
var categoryHeadings = map[CategoryLabel]string{
	CategoryFeature:        "🚀 New Features",
	CategoryBugFix:         "🐛 Bug Fixes",
	CategoryRefactor:       "🔧 Refactoring",
	CategoryBreakingChange: "⚠️ Breaking Changes",
	CategorySecurity:       "🔒 Security",
	CategoryPerformance:    "⚡ Performance",
	CategoryDocumentation:  "📝 Documentation",
	CategoryTest:           "✅ Tests",
	CategoryChore:          "🧹 Chores",
}

// categoryTitlePrefixes maps each category to the conventional-commit style
// prefix used when deriving a summary title from the dominant category.
var categoryTitlePrefixes = map[CategoryLabel]string{
	CategoryFeature:        "feat",
	CategoryBugFix:         "fix",
	CategoryRefactor:       "refactor",
	CategoryBreakingChange: "feat!",
	CategorySecurity:       "security",
	CategoryPerformance:    "perf",
	CategoryDocumentation:  "docs",
	CategoryTest:           "test",
	CategoryChore:          "chore",
}

// Heading returns the emoji-prefixed section heading for a category.
func (c CategoryLabel) Heading() string {
	if h, ok := categoryHeadings[c]; ok {
		return h
	}
	return "📦 " + string(c)
}

// TitlePrefix returns the conventional-commit prefix for a category.
func (c CategoryLabel) TitlePrefix() string {
	if p, ok := categoryTitlePrefixes[c]; ok {
		return p
	}
	return "chore"
}

// CategoryRule maps a set of message keywords to a category label.
// Matching is case-insensitive substring matching; a commit may satisfy
// several rules and receive several labels.
type CategoryRule struct {
	Label    CategoryLabel
	Keywords []string
}

// BucketRule assigns file paths to a named bucket. A path matches when it
// contains any of the substrings or ends with any of the extensions.
// Rules are evaluated in order; the first match wins.
type BucketRule struct {
	Name       string
	Substrings []string
	Extensions []string
}

// OtherBucket is the catch-all bucket for paths matching no rule.
const OtherBucket = "Other"

// GetDefaultCategoryRules returns the built-in keyword table for commit
// classification. Callers may append custom rules; the matching algorithm
// never changes.
func GetDefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Label: CategoryFeature, Keywords: []string{"feat", "add", "new", "implement", "introduce"}},
		{Label: CategoryBugFix, Keywords: []string{"fix", "bug", "patch", "resolve", "hotfix"}},
		{Label: CategoryRefactor, Keywords: []string{"refactor", "restructure", "cleanup", "clean up"}},
		{Label: CategoryBreakingChange, Keywords: []string{"breaking", "break"}},
		{Label: CategorySecurity, Keywords: []string{"security", "vulnerability", "auth"}},
		{Label: CategoryPerformance, Keywords: []string{"perf", "performance", "optimize"}},
		{Label: CategoryTest, Keywords: []string{"test", "spec"}},
		{Label: CategoryDocumentation, Keywords: []string{"doc", "readme"}},
	}
}

// GetDefaultBucketRules returns the built-in bucket table for file impact
// analysis. Order matters: test paths are claimed before the path-pattern
// buckets so that "services/api_test.go" lands in Tests, not Services.
func GetDefaultBucketRules() []BucketRule {
	return []BucketRule{
		{Name: "Tests", Substrings: []string{"test", "spec"}},
		{Name: "Documentation", Substrings: []string{"docs/"}, Extensions: []string{".md", ".rst", ".txt", ".adoc"}},
		{Name: "Configuration", Extensions: []string{".json", ".yml", ".yaml", ".toml", ".ini", ".xml", ".config"}},
		{Name: "Services", Substrings: []string{"service", "api", "client"}},
		{Name: "Models", Substrings: []string{"model", "entity", "dto", "schema"}},
		{Name: "Controllers", Substrings: []string{"controller", "handler", "route"}},
	}
}

// BucketOrder returns the display order for buckets: rule order first,
// then the catch-all.
func BucketOrder(rules []BucketRule) []string {
	order := make([]string, 0, len(rules)+1)
	seen := make(map[string]bool, len(rules)+1)
	for _, r := range rules {
		if !seen[r.Name] {
			order = append(order, r.Name)
			seen[r.Name] = true
		}
	}
	if !seen[OtherBucket] {
		order = append(order, OtherBucket)
	}
	return order
}
