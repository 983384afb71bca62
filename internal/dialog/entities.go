package dialog

import (
	"strings"

	"github.com/scentdesk/concierge/internal/catalog"
)

// EntityMatcher resolves a perfume mentioned in free text.
type EntityMatcher struct {
	store *catalog.Store
}

// NewEntityMatcher creates a matcher over the given catalog.
func NewEntityMatcher(store *catalog.Store) *EntityMatcher {
	return &EntityMatcher{store: store}
}

// Match scans the catalog in three phases: by name, then by category, then by
// note. Each phase walks the full product list in catalog order and the first
// hit wins. The stored value must appear inside the message, not the other
// way around, so short stored values match aggressively.
func (m *EntityMatcher) Match(message string) (catalog.Perfume, bool) {
	lower := strings.ToLower(message)

	for _, p := range m.store.Perfumes() {
		if strings.Contains(lower, strings.ToLower(p.Name)) {
			return p, true
		}
	}

	for _, p := range m.store.Perfumes() {
		if strings.Contains(lower, strings.ToLower(p.Category)) {
			return p, true
		}
	}

	for _, p := range m.store.Perfumes() {
		for _, note := range p.Notes {
			if strings.Contains(lower, strings.ToLower(note)) {
				return p, true
			}
		}
	}

	return catalog.Perfume{}, false
}
