// Package dialog implements the message classification and reply generation
// pipeline over a loaded catalog.
package dialog

import (
	"strings"

	"github.com/scentdesk/concierge/internal/catalog"
)

// Intent is a coarse classification label for the purpose of a user message.
type Intent string

// Built-in intent labels. Training data may define further labels; the
// responder falls back for any label it has no branch for.
const (
	IntentGreeting       Intent = "greeting"
	IntentRecommendation Intent = "recommendation"
	IntentPriceInquiry   Intent = "price_inquiry"
	IntentCategoryQuery  Intent = "category_query"
	IntentUnknown        Intent = "unknown"
)

// Keyword ladder applied when no stored intent pattern matches. Matching is
// plain substring containment, and the listed order is the priority.
var (
	greetingWords  = []string{"hi", "hello", "hey"}
	recommendWords = []string{"recommend", "suggest"}
	priceWords     = []string{"price", "how much", "cost"}
	categoryWords  = []string{"floral", "woody", "citrus", "fresh", "oriental"}
)

// Classifier resolves a free-text message to a single intent label.
type Classifier struct {
	store *catalog.Store
}

// NewClassifier creates a classifier over the given catalog.
func NewClassifier(store *catalog.Store) *Classifier {
	return &Classifier{store: store}
}

// Classify returns the best-matching intent for the message. Intent
// definitions from the catalog are checked first, in catalog order, first
// pattern hit wins; the built-in keyword ladder applies only when none of
// them match.
func (c *Classifier) Classify(message string) Intent {
	lower := strings.ToLower(message)

	for _, def := range c.store.Intents() {
		for _, pattern := range def.Patterns {
			if strings.Contains(lower, strings.ToLower(pattern)) {
				if def.Name == "" {
					return IntentUnknown
				}
				return Intent(def.Name)
			}
		}
	}

	switch {
	case containsAny(lower, greetingWords):
		return IntentGreeting
	case containsAny(lower, recommendWords):
		return IntentRecommendation
	case containsAny(lower, priceWords):
		return IntentPriceInquiry
	case containsAny(lower, categoryWords):
		return IntentCategoryQuery
	}

	return IntentUnknown
}

// containsAny reports whether any of the words appears in text as a substring.
func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
