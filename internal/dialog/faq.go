package dialog

import (
	"strings"

	"github.com/scentdesk/concierge/internal/catalog"
)

// FAQMatcher resolves stored questions by crude keyword overlap.
type FAQMatcher struct {
	store *catalog.Store
}

// NewFAQMatcher creates a matcher over the given catalog.
func NewFAQMatcher(store *catalog.Store) *FAQMatcher {
	return &FAQMatcher{store: store}
}

// Match returns the first FAQ, in catalog order, whose stored question shares
// any of its first three words with the message. The overlap check is plain
// substring containment of the lower-cased word, punctuation included.
func (m *FAQMatcher) Match(message string) (catalog.FAQ, bool) {
	lower := strings.ToLower(message)

	for _, faq := range m.store.FAQs() {
		words := strings.Fields(strings.ToLower(faq.Question))
		if len(words) > 3 {
			words = words[:3]
		}
		for _, w := range words {
			if strings.Contains(lower, w) {
				return faq, true
			}
		}
	}

	return catalog.FAQ{}, false
}
