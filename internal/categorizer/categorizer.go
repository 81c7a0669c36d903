// Package categorizer assigns category labels to transactions from their
// descriptions using ordered keyword matching.
package categorizer

import (
	"strings"

	"stmt-engine/internal/logging"
	"stmt-engine/internal/models"
)

// Rule maps a category name to the keywords that select it. Rules are
// evaluated in order; the first rule with a matching keyword wins.
type Rule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Categorizer performs deterministic keyword categorization. The rule set
// is immutable for the lifetime of the categorizer, so a single instance
// is safe to share across a batch run.
type Categorizer struct {
	rules  []Rule
	logger logging.Logger
}

// New creates a Categorizer with the given ordered rules. A nil or empty
// rule set falls back to the built-in defaults.
func New(rules []Rule, logger logging.Logger) *Categorizer {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Categorizer{rules: rules, logger: logger}
}

// Categorize returns the category label for a description. It is a pure,
// total function: the same description always yields the same label, and
// descriptions matching no rule yield "Other".
func (c *Categorizer) Categorize(description string) string {
	lower := strings.ToLower(description)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(keyword)) {
				c.logger.Debug("Categorized by keyword",
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: "category", Value: rule.Name})
				return rule.Name
			}
		}
	}

	return models.CategoryOther
}

// Apply sets the category on each transaction in place. Category is the
// only field a transaction may gain after parsing, and it is assigned
// exactly once here.
func (c *Categorizer) Apply(transactions []models.Transaction) {
	for i := range transactions {
		transactions[i].Category = c.Categorize(transactions[i].Description)
	}
}

// DefaultRules returns the built-in ordered rule set.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "Income", Keywords: []string{"deposit", "payroll", "transfer received", "credit", "ssa", "social security", "refund"}},
		{Name: "Transfers", Keywords: []string{"zelle", "transfer", "venmo", "paypal", "cash app"}},
		{Name: "Subscriptions", Keywords: []string{"rocket money", "netflix", "spotify", "amazon prime", "subscription"}},
		{Name: "Shopping", Keywords: []string{"amazon", "walmart", "target", "purchase"}},
		{Name: "Bills", Keywords: []string{"utilities", "electric", "water", "internet", "phone"}},
		{Name: "Food", Keywords: []string{"restaurant", "uber eats", "doordash", "grubhub"}},
	}
}
