package rest

import (
	"errors"
	"fmt"
	"net/http"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/moviemagic/internal/config"
	"github.com/s21platform/moviemagic/internal/repository"
)

const conversationNotFound = "Conversation not found"

func (h *Handler) UserConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UserConversations")

	userID, err := pathString(r, "userID")
	if err != nil {
		h.writeValidationError(w, "path", err.Error())
		return
	}

	conversations, err := h.repository.UserConversations(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversations: %v", err))
		h.writeError(w, "failed to get conversations", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, conversations, http.StatusOK)
}

func (h *Handler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateConversation")

	userID, err := queryString(r, "user_id")
	if err != nil {
		h.writeValidationError(w, "query", err.Error())
		return
	}

	conversation, err := h.repository.CreateConversation(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create conversation: %v", err))
		h.writeError(w, "failed to create conversation", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, conversation, http.StatusCreated)
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversation")

	conversationID, err := pathInt64(r, "conversationID")
	if err != nil {
		h.writeValidationError(w, "path", err.Error())
		return
	}

	conversation, err := h.repository.Conversation(r.Context(), conversationID)
	if err != nil {
		h.writeRepositoryError(w, logger, err, conversationNotFound)
		return
	}

	h.writeJSON(w, conversation, http.StatusOK)
}

func (h *Handler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteConversation")

	conversationID, err := pathInt64(r, "conversationID")
	if err != nil {
		h.writeValidationError(w, "path", err.Error())
		return
	}

	if err := h.repository.DeleteConversation(r.Context(), conversationID); err != nil {
		h.writeRepositoryError(w, logger, err, conversationNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ConversationMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ConversationMessages")

	conversationID, err := pathInt64(r, "conversationID")
	if err != nil {
		h.writeValidationError(w, "path", err.Error())
		return
	}

	messages, err := h.repository.ConversationMessages(r.Context(), conversationID)
	if err != nil {
		h.writeRepositoryError(w, logger, err, conversationNotFound)
		return
	}

	h.writeJSON(w, messages, http.StatusOK)
}

// writeRepositoryError maps ErrNotFound to 404 and anything else to 500.
func (h *Handler) writeRepositoryError(w http.ResponseWriter, logger logger_lib.LoggerInterface, err error, notFound string) {
	if errors.Is(err, repository.ErrNotFound) {
		h.writeError(w, notFound, http.StatusNotFound)
		return
	}

	logger.Error(fmt.Sprintf("repository failure: %v", err))
	h.writeError(w, "internal server error", http.StatusInternalServerError)
}
