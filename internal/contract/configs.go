package contract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/mrsummary/schema"
)

// Default values for configuration.
const (
	DefaultBaseBranch    = "main"
	DefaultCurrentBranch = "HEAD"
	DefaultFormat        = schema.MarkdownOut
)

// DateFormat is the accepted layout for --since/--until values.
const DateFormat = "2006-01-02"

// Config holds the runtime configuration for a pipeline run.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath      string // Resolved repository root
	BaseBranch    string
	CurrentBranch string
	Format        schema.OutputMode
	OutputFile    string
	MergesOnly    bool
	Since         string // Validated YYYY-MM-DD or empty
	Until         string // Validated YYYY-MM-DD or empty
	Width         int    // Terminal width override (0 = auto-detect)
	UseColors     bool

	// CategoryRules is the classification keyword table: defaults plus any
	// custom categories from the config file.
	CategoryRules []schema.CategoryRule

	// BucketRules is the file bucket table: custom buckets from the config
	// file take precedence over defaults.
	BucketRules []schema.BucketRule
}

// BucketRawInput is a custom file bucket definition from the config file.
type BucketRawInput struct {
	Name       string   `mapstructure:"name"`
	Patterns   []string `mapstructure:"patterns"`
	Extensions []string `mapstructure:"extensions"`
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Base       string `mapstructure:"base"`
	Current    string `mapstructure:"current"`
	Format     string `mapstructure:"format"`
	OutputFile string `mapstructure:"output-file"`
	MergesOnly bool   `mapstructure:"merges-only"`
	Since      string `mapstructure:"since"`
	Until      string `mapstructure:"until"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
	Verbosity  string `mapstructure:"verbosity"`

	// --- Custom classification rules from config file ---
	Categories map[string][]string `mapstructure:"categories"`

	// --- Custom file buckets from config file ---
	Buckets []BucketRawInput `mapstructure:"buckets"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.CategoryRules != nil {
		clone.CategoryRules = make([]schema.CategoryRule, len(c.CategoryRules))
		copy(clone.CategoryRules, c.CategoryRules)
	}
	if c.BucketRules != nil {
		clone.BucketRules = make([]schema.BucketRule, len(c.BucketRules))
		copy(clone.BucketRules, c.BucketRules)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct. The repo path shorthand "." is
// resolved here, in the adapter layer; the core only ever sees the
// resolved root.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processDateRange(cfg, input); err != nil {
		return err
	}
	processRuleTables(cfg, input)
	return resolveRepoPath(ctx, cfg, client, input)
}

// validateSimpleInputs handles branches, format and presentation options.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.BaseBranch = input.Base
	if cfg.BaseBranch == "" {
		cfg.BaseBranch = DefaultBaseBranch
	}
	cfg.CurrentBranch = input.Current
	if cfg.CurrentBranch == "" {
		cfg.CurrentBranch = DefaultCurrentBranch
	}

	format := schema.OutputMode(input.Format)
	if format == "" {
		format = DefaultFormat
	}
	if _, ok := schema.ValidOutputModes[format]; !ok {
		return fmt.Errorf("%w: %q (expected markdown or json)", ErrUnsupportedFormat, input.Format)
	}
	cfg.Format = format

	cfg.OutputFile = input.OutputFile
	cfg.MergesOnly = input.MergesOnly
	cfg.Width = input.Width
	cfg.UseColors = parseBoolish(input.Color, true)
	return nil
}

// processDateRange validates the optional --since/--until filters.
func processDateRange(cfg *Config, input *ConfigRawInput) error {
	for _, d := range []struct {
		name  string
		value string
		dest  *string
	}{
		{"since", input.Since, &cfg.Since},
		{"until", input.Until, &cfg.Until},
	} {
		if d.value == "" {
			continue
		}
		if _, err := time.Parse(DateFormat, d.value); err != nil {
			return fmt.Errorf("invalid --%s date %q: expected %s", d.name, d.value, DateFormat)
		}
		*d.dest = d.value
	}
	return nil
}

// processRuleTables merges custom categories and buckets from the config
// file into the default rule tables. Extension is configuration, not code:
// the matching algorithms never change.
func processRuleTables(cfg *Config, input *ConfigRawInput) {
	cfg.CategoryRules = schema.GetDefaultCategoryRules()
	for name, keywords := range input.Categories {
		if name == "" || len(keywords) == 0 {
			continue
		}
		cfg.CategoryRules = append(cfg.CategoryRules, schema.CategoryRule{
			Label:    schema.CategoryLabel(name),
			Keywords: keywords,
		})
	}

	// Custom buckets are prepended so they win over the defaults in
	// first-match-wins evaluation.
	var custom []schema.BucketRule
	for _, b := range input.Buckets {
		if b.Name == "" {
			continue
		}
		custom = append(custom, schema.BucketRule{
			Name:       b.Name,
			Substrings: b.Patterns,
			Extensions: b.Extensions,
		})
	}
	cfg.BucketRules = append(custom, schema.GetDefaultBucketRules()...)
}

// resolveRepoPath turns the repo path argument into a resolved repository root.
func resolveRepoPath(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	repoPath := input.RepoPathStr
	if repoPath == "" {
		repoPath = "."
	}
	root, err := client.RepoRoot(ctx, repoPath)
	if err != nil {
		return err
	}
	cfg.RepoPath = root
	return nil
}

// parseBoolish interprets yes/no style flag values.
func parseBoolish(s string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}
