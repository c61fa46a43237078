// Package categorize assigns category labels to transactions by ordered
// keyword matching. Rule order IS priority: specific vendor categories must
// come before generic buckets like Transfers, or the generic bucket will
// shadow them.
package categorize

import (
	"strings"

	"github.com/AbdurRehmanNiyazi/AusgabeAnalyst/internal/model"
)

// Categorizer matches descriptions against an ordered rule list.
type Categorizer struct {
	cfg Config
}

// New creates a Categorizer from a caller-supplied configuration.
func New(cfg Config) *Categorizer {
	return &Categorizer{cfg: cfg}
}

// Categorize returns the first rule (in priority order) with a keyword
// contained in the lowercased description, or the default category.
func (c *Categorizer) Categorize(description string) string {
	lower := strings.ToLower(description)
	for _, rule := range c.cfg.Categories {
		for _, keyword := range rule.Keywords {
			if keyword != "" && strings.Contains(lower, strings.ToLower(keyword)) {
				return rule.Name
			}
		}
	}
	return c.cfg.DefaultCategory
}

// CategorizeBatch assigns categories to a transaction sequence in place of
// order: the returned slice preserves input order.
func (c *Categorizer) CategorizeBatch(txns []model.Transaction) []model.Transaction {
	for i := range txns {
		txns[i].Category = c.Categorize(txns[i].Description)
	}
	return txns
}

// AddKeyword adds a keyword to a category, creating the category at lowest
// priority if it does not exist. The change is visible to subsequent
// Categorize calls only; already-categorized records are untouched.
func (c *Categorizer) AddKeyword(category, keyword string) {
	c.cfg = c.cfg.WithKeyword(category, keyword)
}

// Config returns the current configuration.
func (c *Categorizer) Config() Config {
	return c.cfg
}

// Categories returns the category names in priority order.
func (c *Categorizer) Categories() []string {
	names := make([]string, 0, len(c.cfg.Categories))
	for _, rule := range c.cfg.Categories {
		names = append(names, rule.Name)
	}
	return names
}
