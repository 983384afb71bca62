package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scentdesk/concierge/internal/catalog"
)

func classifierStore(intents ...catalog.IntentDefinition) *catalog.Store {
	return catalog.New(catalog.TrainingData{Intents: intents})
}

func TestClassifier_StoredIntentsWinOverBuiltins(t *testing.T) {
	store := classifierStore(catalog.IntentDefinition{
		Name:     "order_status",
		Patterns: []string{"track", "where is my order"},
	})
	c := NewClassifier(store)

	// "hello" would hit the greeting ladder, but the stored pattern is
	// checked first.
	assert.Equal(t, Intent("order_status"), c.Classify("Hello, please track my parcel"))
}

func TestClassifier_StoredPatternsAreCaseInsensitive(t *testing.T) {
	store := classifierStore(catalog.IntentDefinition{
		Name:     "order_status",
		Patterns: []string{"TRACK"},
	})
	c := NewClassifier(store)

	assert.Equal(t, Intent("order_status"), c.Classify("track it for me"))
}

func TestClassifier_StoredIntentWithoutNameIsUnknown(t *testing.T) {
	store := classifierStore(catalog.IntentDefinition{Patterns: []string{"zzz"}})
	c := NewClassifier(store)

	assert.Equal(t, IntentUnknown, c.Classify("zzz please"))
}

func TestClassifier_EmptyPatternMatchesEverything(t *testing.T) {
	store := classifierStore(catalog.IntentDefinition{
		Name:     "catchall",
		Patterns: []string{""},
	})
	c := NewClassifier(store)

	// Substring containment treats the empty pattern as a wildcard.
	assert.Equal(t, Intent("catchall"), c.Classify("anything at all"))
}

func TestClassifier_BuiltinLadder(t *testing.T) {
	c := NewClassifier(classifierStore())

	tests := []struct {
		message string
		want    Intent
	}{
		{"hello there", IntentGreeting},
		{"HEY!", IntentGreeting},
		{"can you recommend a perfume", IntentRecommendation},
		{"please suggest a scent", IntentRecommendation},
		{"what does it cost", IntentPriceInquiry},
		{"how much for that", IntentPriceInquiry},
		{"woody options please", IntentCategoryQuery},
		{"tell me more", IntentUnknown},

		// Substring matching, not word matching: "this" and "something"
		// both contain "hi", so greeting shadows everything after it.
		{"this is great", IntentGreeting},
		{"something fresh", IntentGreeting},
	}

	for _, tc := range tests {
		t.Run(tc.message, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Classify(tc.message))
		})
	}
}
