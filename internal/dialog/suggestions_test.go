package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scentdesk/concierge/internal/catalog"
)

func TestSuggestionBuilder_PerfumeInfoIsFixed(t *testing.T) {
	b := NewSuggestionBuilder(responderStore())

	// The reply type takes precedence over any keyword in the message.
	got := b.Build(ReplyPerfumeInfo, "recommend me the cheapest price")

	assert.Equal(t, []string{"Similar perfumes", "Price range", "Show all", "Recommendations"}, got)
}

func TestSuggestionBuilder_FAQIsFixed(t *testing.T) {
	b := NewSuggestionBuilder(responderStore())

	got := b.Build(ReplyFAQ, "do you ship")

	assert.Equal(t, []string{"More FAQs", "Perfume catalog", "Contact support"}, got)
}

func TestSuggestionBuilder_RecommendWordsListCategories(t *testing.T) {
	b := NewSuggestionBuilder(responderStore())

	got := b.Build(ReplyFallback, "suggest me something")

	assert.Equal(t, []string{"Floral", "Woody", "Citrus", "Show all", "Prices"}, got,
		"at most three categories, in first-seen order")
}

func TestSuggestionBuilder_PriceWordsListProducts(t *testing.T) {
	b := NewSuggestionBuilder(responderStore())

	got := b.Build(ReplyFallback, "how much are these")

	assert.Equal(t, []string{"Floral Dream", "Woody Essence", "Citrus Splash", "All prices", "Budget options"}, got)
}

func TestSuggestionBuilder_IndependentOfGeneratorBranch(t *testing.T) {
	b := NewSuggestionBuilder(responderStore())

	// The generator may have fallen back, but the builder re-reads the
	// message and still detects the price words.
	got := b.Build(ReplyFallback, "price")

	assert.Contains(t, got, "All prices")
}

func TestSuggestionBuilder_Default(t *testing.T) {
	b := NewSuggestionBuilder(responderStore())

	got := b.Build(ReplyGreeting, "hello")

	assert.Equal(t, []string{"Recommend perfume", "Show all", "FAQs", "Help"}, got)
}

func TestSuggestionBuilder_SmallCatalog(t *testing.T) {
	store := catalog.New(catalog.TrainingData{Perfumes: []catalog.Perfume{
		{Name: "Only One", Category: "floral", Price: 10},
	}})
	b := NewSuggestionBuilder(store)

	assert.Equal(t, []string{"Floral", "Show all", "Prices"}, b.Build(ReplyFallback, "recommend"))
	assert.Equal(t, []string{"Only One", "All prices", "Budget options"}, b.Build(ReplyFallback, "cost"))
}
