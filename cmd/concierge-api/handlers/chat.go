package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/scentdesk/concierge/internal/dialog"
	"github.com/scentdesk/concierge/internal/observability"
)

// ChatHandler handles conversational exchanges with the bot.
type ChatHandler struct {
	logger    *observability.Logger
	responder *dialog.Responder
	suggester *dialog.SuggestionBuilder
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(logger *observability.Logger, responder *dialog.Responder, suggester *dialog.SuggestionBuilder) *ChatHandler {
	return &ChatHandler{
		logger:    logger,
		responder: responder,
		suggester: suggester,
	}
}

// ChatRequestDTO represents the API request for a chat exchange. Message is
// a pointer so a missing field can be told apart from an empty one.
type ChatRequestDTO struct {
	Message *string `json:"message"`
	UserID  string  `json:"user_id,omitempty"`
}

// ChatResponseDTO represents the API response for a chat exchange.
type ChatResponseDTO struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
	Confidence  float64  `json:"confidence"`
	Timestamp   string   `json:"timestamp"`
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var reqDTO ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if reqDTO.Message == nil {
		writeError(w, http.StatusBadRequest, "message is required", "")
		return
	}

	userID := reqDTO.UserID
	if userID == "" {
		userID = "anonymous"
	}

	exchangeID := uuid.NewString()
	reply := h.responder.Respond(*reqDTO.Message)
	suggestions := h.suggester.Build(reply.Type, *reqDTO.Message)

	h.logger.WithContext(ctx).Info().
		Str("exchange_id", exchangeID).
		Str("user_id", userID).
		Str("reply_type", string(reply.Type)).
		Float64("confidence", reply.Confidence).
		Msg("chat exchange")

	respDTO := ChatResponseDTO{
		Response:    reply.Text,
		Suggestions: suggestions,
		Confidence:  reply.Confidence,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	writeJSON(w, http.StatusOK, respDTO)
}
