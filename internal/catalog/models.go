// Package catalog holds the immutable product knowledge loaded at process
// start: perfumes, FAQ entries, and intent definitions.
package catalog

// Perfume is one catalog product. IDs are assigned sequentially at load time
// when the source omits them.
type Perfume struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Notes       []string `json:"notes,omitempty"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
}

// FAQ is a stored question/answer pair. FAQs carry no identifier and are
// matched by text overlap only.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// IntentDefinition is a named set of trigger substrings. Responses are
// authored alongside the patterns in training data; reply text comes from the
// generator's own templates, so they are carried but not consulted.
type IntentDefinition struct {
	Name      string   `json:"name"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

// TrainingData is the top-level shape of the training data document.
type TrainingData struct {
	Perfumes []Perfume          `json:"perfumes"`
	FAQs     []FAQ              `json:"faqs"`
	Intents  []IntentDefinition `json:"intents"`
}
