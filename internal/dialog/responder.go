package dialog

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/scentdesk/concierge/internal/catalog"
)

// ReplyType tags which rule produced a reply.
type ReplyType string

// Reply types, one per generator branch.
const (
	ReplyFAQ            ReplyType = "faq"
	ReplyPerfumeInfo    ReplyType = "perfume_info"
	ReplyGreeting       ReplyType = "greeting"
	ReplyRecommendation ReplyType = "recommendation"
	ReplyPriceInfo      ReplyType = "price_info"
	ReplyCategoryInfo   ReplyType = "category_info"
	ReplyFallback       ReplyType = "fallback"
)

// Reply is the generated answer for a single message. Confidence is a fixed
// per-branch constant, not a calibrated probability.
type Reply struct {
	Text       string
	Type       ReplyType
	Confidence float64
	Perfume    *catalog.Perfume  // set for perfume_info replies
	Perfumes   []catalog.Perfume // set for recommendation replies
}

// Rand supplies the randomness used for reply variety. Tests can plug a
// deterministic stub; the default draws from math/rand's locked global source,
// which is safe for concurrent use.
type Rand interface {
	Intn(n int) int
}

type systemRand struct{}

func (systemRand) Intn(n int) int { return rand.Intn(n) }

var greetingReplies = []string{
	"👋 Hello! Welcome to our perfume store! How can I help you today?",
	"🌟 Welcome to our fragrance boutique! What scent are you looking for?",
	"🌸 Hello there! Ready to find your perfect fragrance?",
}

var fallbackReplies = []string{
	"I'm not sure I understood. Try asking about specific perfumes or categories.",
	"Could you be more specific? For example, ask about 'Floral Dream' or 'woody perfumes'.",
	"I'm here to help you find perfumes! Try asking for recommendations or checking prices.",
}

// Responder runs the reply pipeline: FAQ answer, then perfume lookup, then
// intent branches, then fallback. It is stateless apart from the injected
// random source.
type Responder struct {
	store      *catalog.Store
	faqs       *FAQMatcher
	entities   *EntityMatcher
	classifier *Classifier
	rng        Rand
}

// NewResponder wires the pipeline over the store. A nil rng falls back to the
// process-wide random source.
func NewResponder(store *catalog.Store, rng Rand) *Responder {
	if rng == nil {
		rng = systemRand{}
	}
	return &Responder{
		store:      store,
		faqs:       NewFAQMatcher(store),
		entities:   NewEntityMatcher(store),
		classifier: NewClassifier(store),
		rng:        rng,
	}
}

// Respond generates a reply for the message. Branches are tried in a fixed
// priority order and the first hit wins; an empty catalog silently drops the
// recommendation, price, and category branches through to the fallback.
func (r *Responder) Respond(message string) Reply {
	if faq, ok := r.faqs.Match(message); ok {
		return Reply{Text: faq.Answer, Type: ReplyFAQ, Confidence: 0.9}
	}

	if perfume, ok := r.entities.Match(message); ok {
		return Reply{
			Text:       perfumeCard(perfume),
			Type:       ReplyPerfumeInfo,
			Confidence: 0.8,
			Perfume:    &perfume,
		}
	}

	switch r.classifier.Classify(message) {
	case IntentGreeting:
		return Reply{Text: r.pick(greetingReplies), Type: ReplyGreeting, Confidence: 0.9}
	case IntentRecommendation:
		if reply, ok := r.recommend(); ok {
			return reply
		}
	case IntentPriceInquiry:
		if reply, ok := r.priceList(); ok {
			return reply
		}
	case IntentCategoryQuery:
		if reply, ok := r.categoryList(message); ok {
			return reply
		}
	}

	return Reply{Text: r.pick(fallbackReplies), Type: ReplyFallback, Confidence: 0.3}
}

// pick returns a random element of the pool.
func (r *Responder) pick(pool []string) string {
	return pool[r.rng.Intn(len(pool))]
}

// sample returns up to k distinct products drawn without replacement.
func (r *Responder) sample(perfumes []catalog.Perfume, k int) []catalog.Perfume {
	if k > len(perfumes) {
		k = len(perfumes)
	}
	idx := make([]int, len(perfumes))
	for i := range idx {
		idx[i] = i
	}
	picks := make([]catalog.Perfume, 0, k)
	for i := 0; i < k; i++ {
		j := i + r.rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		picks = append(picks, perfumes[idx[i]])
	}
	return picks
}

func (r *Responder) recommend() (Reply, bool) {
	perfumes := r.store.Perfumes()
	if len(perfumes) == 0 {
		return Reply{}, false
	}

	picks := r.sample(perfumes, 3)
	var b strings.Builder
	b.WriteString("✨ **Top Recommendations:**\n\n")
	for _, p := range picks {
		fmt.Fprintf(&b, "⭐ **%s** - $%.2f\n", p.Name, p.Price)
		if p.Description != "" {
			fmt.Fprintf(&b, "   %s\n\n", p.Description)
		}
	}

	return Reply{
		Text:       b.String(),
		Type:       ReplyRecommendation,
		Confidence: 0.8,
		Perfumes:   picks,
	}, true
}

func (r *Responder) priceList() (Reply, bool) {
	perfumes := r.store.Perfumes()
	if len(perfumes) == 0 {
		return Reply{}, false
	}
	if len(perfumes) > 5 {
		perfumes = perfumes[:5]
	}

	var b strings.Builder
	b.WriteString("💰 **Our Perfume Prices:**\n\n")
	for _, p := range perfumes {
		fmt.Fprintf(&b, "• %s: $%.2f\n", p.Name, p.Price)
	}

	return Reply{Text: b.String(), Type: ReplyPriceInfo, Confidence: 0.7}, true
}

func (r *Responder) categoryList(message string) (Reply, bool) {
	lower := strings.ToLower(message)

	var mentioned string
	for _, cat := range categoryWords {
		if strings.Contains(lower, cat) {
			mentioned = cat
			break
		}
	}
	if mentioned == "" {
		return Reply{}, false
	}

	// Stored categories are compared verbatim, so only products whose
	// category exactly equals the lower-cased vocabulary word qualify.
	var matched []catalog.Perfume
	for _, p := range r.store.Perfumes() {
		if p.Category == mentioned {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return Reply{}, false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🌸 **%s Perfumes:**\n\n", catalog.Title(mentioned))
	for _, p := range matched {
		fmt.Fprintf(&b, "• **%s** - $%.2f\n", p.Name, p.Price)
	}

	return Reply{Text: b.String(), Type: ReplyCategoryInfo, Confidence: 0.8}, true
}

// perfumeCard formats the detail card for a single product.
func perfumeCard(p catalog.Perfume) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", p.Name)
	fmt.Fprintf(&b, "💰 Price: $%.2f\n", p.Price)
	if p.Category != "" {
		fmt.Fprintf(&b, "🌸 Category: %s\n", catalog.Title(p.Category))
	}
	if len(p.Notes) > 0 {
		notes := p.Notes
		if len(notes) > 3 {
			notes = notes[:3]
		}
		fmt.Fprintf(&b, "🎀 Notes: %s\n", strings.Join(notes, ", "))
	}
	if p.Description != "" {
		fmt.Fprintf(&b, "\n%s", p.Description)
	}
	return b.String()
}
