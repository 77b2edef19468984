package core

import (
	"strings"

	"github.com/huangsam/mrsummary/schema"
)

// Classifier assigns category labels to commits by matching message text
// against an ordered keyword table. Classification is a pure function of
// the message text: deterministic and order-independent.
type Classifier struct {
	rules []schema.CategoryRule
}

// NewClassifier creates a classifier from the given rule table. Passing nil
// uses the default table. The rule table is the sole variation point; the
// matching algorithm is fixed.
func NewClassifier(rules []schema.CategoryRule) *Classifier {
	if rules == nil {
		rules = schema.GetDefaultCategoryRules()
	}
	return &Classifier{rules: rules}
}

// Classify returns the set of category labels applicable to a commit
// message. Matching is case-insensitive substring matching and
// non-exclusive: a message may satisfy several rules. A message matching
// no rule receives the chore label so every commit is accounted for.
func (c *Classifier) Classify(message string) []schema.CategoryLabel {
	lower := strings.ToLower(message)

	var labels []schema.CategoryLabel
	seen := make(map[schema.CategoryLabel]bool)
	for _, rule := range c.rules {
		if seen[rule.Label] {
			continue
		}
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				labels = append(labels, rule.Label)
				seen[rule.Label] = true
				break
			}
		}
	}

	if len(labels) == 0 {
		labels = append(labels, schema.CategoryChore)
	}
	return labels
}
