package dialog

import (
	"strings"

	"github.com/scentdesk/concierge/internal/catalog"
)

// Fixed suggestion sets keyed by reply type.
var (
	perfumeInfoSuggestions = []string{"Similar perfumes", "Price range", "Show all", "Recommendations"}
	faqSuggestions         = []string{"More FAQs", "Perfume catalog", "Contact support"}
	defaultSuggestions     = []string{"Recommend perfume", "Show all", "FAQs", "Help"}
)

// SuggestionBuilder derives follow-up prompts from the reply type and the
// original message. It re-examines the message instead of trusting the
// generator's branch, so the two can disagree; that independence is part of
// the contract.
type SuggestionBuilder struct {
	store *catalog.Store
}

// NewSuggestionBuilder creates a builder over the given catalog.
func NewSuggestionBuilder(store *catalog.Store) *SuggestionBuilder {
	return &SuggestionBuilder{store: store}
}

// Build returns the follow-up prompts for a reply.
func (b *SuggestionBuilder) Build(replyType ReplyType, message string) []string {
	lower := strings.ToLower(message)

	switch {
	case replyType == ReplyPerfumeInfo:
		return perfumeInfoSuggestions
	case replyType == ReplyFAQ:
		return faqSuggestions
	case containsAny(lower, recommendWords):
		categories := b.store.Categories()
		if len(categories) > 3 {
			categories = categories[:3]
		}
		return append(categories, "Show all", "Prices")
	case containsAny(lower, priceWords):
		var names []string
		for i, p := range b.store.Perfumes() {
			if i == 3 {
				break
			}
			names = append(names, p.Name)
		}
		return append(names, "All prices", "Budget options")
	default:
		return defaultSuggestions
	}
}
