// Package bot assembles the catalog and reply pipeline behind a single type,
// for embedding the concierge outside the HTTP service.
package bot

import (
	"github.com/scentdesk/concierge/internal/catalog"
	"github.com/scentdesk/concierge/internal/dialog"
	"github.com/scentdesk/concierge/internal/observability"
)

// Bot is an assembled reply pipeline over a loaded catalog.
type Bot struct {
	store     *catalog.Store
	responder *dialog.Responder
	suggester *dialog.SuggestionBuilder
}

// Options tunes the assembled pipeline.
type Options struct {
	// Rand overrides the random source used for reply variety. Nil means the
	// process-wide source.
	Rand dialog.Rand
	// Logger receives catalog load diagnostics. Nil means errors-only.
	Logger *observability.Logger
}

// Open loads training data from path and assembles a Bot. Missing or
// malformed data degrades the same way the service does: default products or
// an empty catalog, never an error.
func Open(path string, opts Options) *Bot {
	logger := opts.Logger
	if logger == nil {
		logger = observability.NewLogger(observability.LogConfig{
			Level:       "error",
			Format:      "console",
			ServiceName: "concierge-bot",
		})
	}
	return FromStore(catalog.Load(path, logger), opts.Rand)
}

// FromStore assembles a Bot over an already-loaded catalog.
func FromStore(store *catalog.Store, rng dialog.Rand) *Bot {
	return &Bot{
		store:     store,
		responder: dialog.NewResponder(store, rng),
		suggester: dialog.NewSuggestionBuilder(store),
	}
}

// Response is one full chat turn.
type Response struct {
	Text        string   `json:"text"`
	Type        string   `json:"type"`
	Confidence  float64  `json:"confidence"`
	Suggestions []string `json:"suggestions"`
}

// Reply runs the pipeline for one message: generate the reply, then derive
// follow-up suggestions from the reply type and the message itself.
func (b *Bot) Reply(message string) Response {
	reply := b.responder.Respond(message)
	return Response{
		Text:        reply.Text,
		Type:        string(reply.Type),
		Confidence:  reply.Confidence,
		Suggestions: b.suggester.Build(reply.Type, message),
	}
}

// Store exposes the loaded catalog.
func (b *Bot) Store() *catalog.Store {
	return b.store
}
