package catalog

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/scentdesk/concierge/internal/observability"
)

// ErrPerfumeNotFound is returned when no catalog product has the requested id.
var ErrPerfumeNotFound = errors.New("perfume not found")

// Store is the catalog loaded once at process start. Contents are never
// mutated after construction, so a Store is safe to share across goroutines
// without locking.
type Store struct {
	perfumes []Perfume
	faqs     []FAQ
	intents  []IntentDefinition
}

// New builds a Store from an in-memory document, back-filling missing perfume
// ids sequentially from 1 in source order. A present id is kept as-is.
func New(data TrainingData) *Store {
	for i := range data.Perfumes {
		if data.Perfumes[i].ID == 0 {
			data.Perfumes[i].ID = i + 1
		}
	}
	return &Store{
		perfumes: data.Perfumes,
		faqs:     data.FAQs,
		intents:  data.Intents,
	}
}

// Load reads the training data document at path. A missing file degrades to
// the built-in default product set and a malformed one to empty collections;
// neither condition is an error, so downstream consumers must tolerate empty
// collections. Load happens exactly once per process lifetime.
func Load(path string, logger *observability.Logger) *Store {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn().
				Str("path", path).
				Msg("training data not found, using default perfumes")
			return &Store{perfumes: defaultPerfumes()}
		}
		logger.Error().
			Err(err).
			Str("path", path).
			Msg("training data unreadable, starting with an empty catalog")
		return &Store{}
	}

	var data TrainingData
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Error().
			Err(err).
			Str("path", path).
			Msg("training data is not valid JSON, starting with an empty catalog")
		return &Store{}
	}

	store := New(data)
	logger.Info().
		Int("perfumes", store.NumPerfumes()).
		Int("faqs", store.NumFAQs()).
		Int("intents", store.NumIntents()).
		Msg("training data loaded")
	return store
}

// Perfumes returns all products in catalog order. Callers must not mutate the
// returned slice.
func (s *Store) Perfumes() []Perfume {
	return s.perfumes
}

// FAQs returns all FAQ entries in catalog order.
func (s *Store) FAQs() []FAQ {
	return s.faqs
}

// Intents returns all intent definitions in catalog order.
func (s *Store) Intents() []IntentDefinition {
	return s.intents
}

// PerfumeByID returns the product with the given id, or ErrPerfumeNotFound.
func (s *Store) PerfumeByID(id int) (Perfume, error) {
	for _, p := range s.perfumes {
		if p.ID == id {
			return p, nil
		}
	}
	return Perfume{}, ErrPerfumeNotFound
}

// Categories returns the title-cased category set in first-seen order.
// Mixed-case duplicates collapse to a single entry; empty categories are
// skipped.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{}, len(s.perfumes))
	var categories []string
	for _, p := range s.perfumes {
		if p.Category == "" {
			continue
		}
		title := Title(p.Category)
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		categories = append(categories, title)
	}
	return categories
}

// NumPerfumes returns the number of loaded products.
func (s *Store) NumPerfumes() int { return len(s.perfumes) }

// NumFAQs returns the number of loaded FAQ entries.
func (s *Store) NumFAQs() int { return len(s.faqs) }

// NumIntents returns the number of loaded intent definitions.
func (s *Store) NumIntents() int { return len(s.intents) }

// HasPerfumes reports whether any products were loaded.
func (s *Store) HasPerfumes() bool { return len(s.perfumes) > 0 }

// Title upper-cases the first letter of every word and lower-cases the rest.
// Any non-letter acts as a word boundary.
func Title(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
