// Package classify maps free-text transaction descriptions to category labels
// using an ordered keyword table.
package classify

import (
	"slices"
	"strings"
)

// Rule assigns Category to any description containing one of Keywords.
// Keywords are matched as lowercase substrings.
type Rule struct {
	Name     string
	Category string
	Keywords []string
}

// Matches reports whether the lowercased description contains any keyword.
func (r Rule) Matches(lowered string) bool {
	for _, kw := range r.Keywords {
		if kw != "" && strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Classifier applies rules in order; the first match wins.
type Classifier struct {
	fallback string
	rules    []Rule
}

// New returns a Classifier over the default table.
func New() *Classifier {
	return NewWithRules(DefaultRules(), DefaultFallback)
}

// NewWithRules returns a Classifier over rules. Keywords are lowercased so
// callers may write them in any case. An empty fallback means DefaultFallback.
func NewWithRules(rules []Rule, fallback string) *Classifier {
	if fallback == "" {
		fallback = DefaultFallback
	}

	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		kws := make([]string, len(r.Keywords))
		for j, kw := range r.Keywords {
			kws[j] = strings.ToLower(kw)
		}
		r.Keywords = kws
		normalized[i] = r
	}

	return &Classifier{rules: normalized, fallback: fallback}
}

// Classify returns the category for description.
func (c *Classifier) Classify(description string) string {
	lowered := strings.ToLower(description)
	for _, r := range c.rules {
		if r.Matches(lowered) {
			return r.Category
		}
	}
	return c.fallback
}

// Fallback returns the label used when no rule matches.
func (c *Classifier) Fallback() string {
	return c.fallback
}

// Rules returns a copy of the rule table.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	for i, r := range c.rules {
		r.Keywords = slices.Clone(r.Keywords)
		out[i] = r
	}
	return out
}

var defaultClassifier = New()

// Classify categorizes description with the default table.
func Classify(description string) string {
	return defaultClassifier.Classify(description)
}
