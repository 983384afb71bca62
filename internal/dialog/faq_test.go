package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scentdesk/concierge/internal/catalog"
)

func faqStore() *catalog.Store {
	return catalog.New(catalog.TrainingData{FAQs: []catalog.FAQ{
		{Question: "Do you ship internationally to most countries?", Answer: "Yes, we ship worldwide."},
		{Question: "What payment methods are accepted?", Answer: "Cards and PayPal."},
	}})
}

func TestFAQMatcher_MatchesOnFirstThreeWords(t *testing.T) {
	m := NewFAQMatcher(faqStore())

	faq, ok := m.Match("can I ship this abroad")
	require.True(t, ok)
	assert.Equal(t, "Yes, we ship worldwide.", faq.Answer)
}

func TestFAQMatcher_IgnoresWordsPastThree(t *testing.T) {
	m := NewFAQMatcher(faqStore())

	// "internationally" is the fourth word of the stored question and never
	// participates in matching.
	_, ok := m.Match("internationally available?")
	assert.False(t, ok)
}

func TestFAQMatcher_FirstMatchWins(t *testing.T) {
	m := NewFAQMatcher(faqStore())

	// "payment" targets the second entry, but "do" from the first entry's
	// keyword set already appears in the message.
	faq, ok := m.Match("what payment do you take")
	require.True(t, ok)
	assert.Equal(t, "Yes, we ship worldwide.", faq.Answer)
}

func TestFAQMatcher_CaseInsensitive(t *testing.T) {
	m := NewFAQMatcher(faqStore())

	faq, ok := m.Match("DO YOU SHIP?")
	require.True(t, ok)
	assert.Equal(t, "Yes, we ship worldwide.", faq.Answer)
}

func TestFAQMatcher_EmptyCatalog(t *testing.T) {
	m := NewFAQMatcher(catalog.New(catalog.TrainingData{}))

	_, ok := m.Match("do you ship")
	assert.False(t, ok)
}
