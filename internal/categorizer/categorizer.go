// Package categorizer assigns transactions a category from a fixed,
// ordered keyword taxonomy.
package categorizer

import (
	"strings"

	"fjacquet/nubank-analyzer/internal/logging"
	"fjacquet/nubank-analyzer/internal/models"
)

// Categorizer classifies transaction descriptions against an ordered
// taxonomy. Classification is a pure function of the description text and
// the taxonomy; it cannot fail and every input resolves to a tag.
type Categorizer struct {
	taxonomy []models.CategoryConfig
	logger   logging.Logger
}

// New creates a Categorizer. A nil or empty taxonomy falls back to the
// built-in default.
func New(taxonomy []models.CategoryConfig, logger logging.Logger) *Categorizer {
	if len(taxonomy) == 0 {
		taxonomy = DefaultTaxonomy
	}
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &Categorizer{taxonomy: taxonomy, logger: logger}
}

// Classify returns the category tag for a description. Matching happens in
// two passes over the taxonomy, both in taxonomy order: first exact
// keyword equality against the trimmed lower-cased description, then
// substring containment. A hard-coded outgoing-transfer pattern catches
// what the keyword lists miss; everything else is "outros".
func (c *Categorizer) Classify(description string) string {
	desc := strings.ToLower(strings.TrimSpace(description))

	for _, category := range c.taxonomy {
		for _, keyword := range category.Keywords {
			if keyword == desc {
				c.logDecision(description, keyword, category.Name, "exact")
				return category.Name
			}
		}
	}

	for _, category := range c.taxonomy {
		for _, keyword := range category.Keywords {
			if strings.Contains(desc, keyword) {
				c.logDecision(description, keyword, category.Name, "substring")
				return category.Name
			}
		}
	}

	if isOutgoingTransfer(desc) {
		c.logDecision(description, "", models.CategoryTransfers, "pattern")
		return models.CategoryTransfers
	}

	return models.CategoryOther
}

// isOutgoingTransfer detects pix or wire transfers marked as sent.
func isOutgoingTransfer(desc string) bool {
	sent := strings.Contains(desc, "enviado") || strings.Contains(desc, "enviada")
	if !sent {
		return false
	}
	return strings.Contains(desc, "pix") || strings.Contains(desc, "transferência")
}

func (c *Categorizer) logDecision(description, keyword, category, pass string) {
	c.logger.WithFields(
		logging.Field{Key: "description", Value: description},
		logging.Field{Key: "keyword", Value: keyword},
		logging.Field{Key: "category", Value: category},
		logging.Field{Key: "pass", Value: pass},
	).Debug("Transaction categorized")
}
