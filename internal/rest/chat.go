package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/moviemagic/internal/config"
	"github.com/s21platform/moviemagic/internal/model"
	"github.com/s21platform/moviemagic/internal/repository"
)

const (
	// CannedReply answers messages nothing in the catalog matches.
	CannedReply         = "I'd love to help you with that! In a fully functional version, I would search the TMDB database and provide personalized recommendations based on your request. 🎬✨"
	recommendationIntro = "Here are a few picks you might enjoy:"
)

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Chat")

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeValidationError(w, "body", "invalid request body")
		return
	}

	if err := h.validator.ValidateChatRequest(&req); err != nil {
		logger.Warn(fmt.Sprintf("chat request validation failed: %v", err))
		h.writeValidationError(w, "body", err.Error())
		return
	}

	movies := h.catalog.Recommend(req.Message)

	message := CannedReply
	reply := model.ConversationMessage{Content: CannedReply, ContentType: model.ContentTypeText}

	if len(movies) > 0 {
		message = recommendationIntro
		content, err := json.Marshal(model.RecommendationPayload{Message: message, Movies: movies})
		if err != nil {
			logger.Error(fmt.Sprintf("failed to encode recommendations: %v", err))
			h.writeError(w, "failed to process message", http.StatusInternalServerError)
			return
		}
		reply = model.ConversationMessage{Content: string(content), ContentType: model.ContentTypeRecommendations}
	}

	conversationID, err := h.repository.AddExchange(r.Context(), req.UserID, req.ConversationID, req.Message, reply)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.writeError(w, "Conversation not found", http.StatusNotFound)
			return
		}
		logger.Error(fmt.Sprintf("failed to save messages: %v", err))
		h.writeError(w, "failed to process message", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, model.ChatResponse{
		Message:        message,
		ConversationID: conversationID,
		Movies:         movies,
	}, http.StatusOK)
}
