package categorize

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule maps one category to its keyword set. Keywords are matched as
// case-insensitive substrings.
type Rule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Config is the ordered categorization rule list. Earlier rules win.
type Config struct {
	DefaultCategory string `yaml:"default_category"`
	Categories      []Rule `yaml:"categories"`
}

// WithKeyword returns a copy of the config with keyword added to category.
// An unknown category is appended at lowest priority. Duplicate keywords
// within a category are dropped.
func (c Config) WithKeyword(category, keyword string) Config {
	out := Config{DefaultCategory: c.DefaultCategory, Categories: make([]Rule, len(c.Categories))}
	copy(out.Categories, c.Categories)

	keyword = strings.ToLower(strings.TrimSpace(keyword))
	for i, rule := range out.Categories {
		if rule.Name != category {
			continue
		}
		for _, k := range rule.Keywords {
			if strings.EqualFold(k, keyword) {
				return out
			}
		}
		keywords := make([]string, len(rule.Keywords), len(rule.Keywords)+1)
		copy(keywords, rule.Keywords)
		out.Categories[i].Keywords = append(keywords, keyword)
		return out
	}

	out.Categories = append(out.Categories, Rule{Name: category, Keywords: []string{keyword}})
	return out
}

// LoadConfig reads a categorization rules YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading categories: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing categories: %w", err)
	}
	if cfg.DefaultCategory == "" {
		cfg.DefaultCategory = "Other"
	}
	return cfg, nil
}

// SaveConfig writes a categorization rules YAML file.
func SaveConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling categories: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}
	return nil
}

// DefaultConfig returns the built-in German retail rule set. Specific
// vendors come first; generic buckets (Transfers, Shopping) come last.
func DefaultConfig() Config {
	return Config{
		DefaultCategory: "Other",
		Categories: []Rule{
			{Name: "Groceries", Keywords: []string{
				"aldi", "lidl", "edeka", "rewe", "kaufland", "netto", "penny",
				"herkules", "mix markt", "city markt", "ariana mini market",
				"schwaelmer brotladen", "schaefers backstuben",
			}},
			{Name: "Restaurants & Dining", Keywords: []string{
				"restaurant", "pizza", "burger", "murg", "phung", "chicken house",
				"gastro", "zam zam", "halal food", "somat doner", "lezzeti mangal",
				"central grill", "west imbiss", "espresso house", "malamania",
			}},
			{Name: "Income", Keywords: []string{
				"lohn", "gehalt", "rente", "zenjob", "gutschrift", "salary",
			}},
			{Name: "Personal Care", Keywords: []string{
				"dm drogerie", "dm drogeriemarkt", "rossmann", "müller", "apotheke", "pharmacy",
			}},
			{Name: "Telecommunications", Keywords: []string{
				"drillisch", "sim24", "telekom", "vodafone", "o2",
			}},
			{Name: "Clothing", Keywords: []string{
				"kik", "h&m", "zara", "c&a", "primark", "takko holding", "woolworth",
			}},
			{Name: "Transportation", Keywords: []string{
				"tankstelle", "shell", "aral", "esso", "db ", "bahn", "rmv", "flix",
			}},
			{Name: "Cash Withdrawal", Keywords: []string{
				"auszahlung", "geldautomat", "withdrawal", "atm",
			}},
			{Name: "Transfers", Keywords: []string{
				"überweisung", "transfer", "sepa", "wise",
			}},
			{Name: "Shopping", Keywords: []string{
				"amazon", "ebay", "online", "shop",
			}},
		},
	}
}
