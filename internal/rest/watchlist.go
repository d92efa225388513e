package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/moviemagic/internal/config"
	"github.com/s21platform/moviemagic/internal/model"
)

const watchlistItemNotFound = "Watchlist item not found"

func (h *Handler) Watchlist(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Watchlist")

	user, ok := r.Context().Value(config.KeyUser).(*model.User)
	if !ok {
		h.writeError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	items, err := h.repository.Watchlist(r.Context(), user.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get watchlist: %v", err))
		h.writeError(w, "failed to get watchlist", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, items, http.StatusOK)
}

func (h *Handler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AddToWatchlist")

	user, ok := r.Context().Value(config.KeyUser).(*model.User)
	if !ok {
		h.writeError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	var req model.WatchlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeValidationError(w, "body", "invalid request body")
		return
	}

	if err := h.validator.ValidateWatchlistRequest(&req); err != nil {
		h.writeValidationError(w, "body", err.Error())
		return
	}

	item, err := h.repository.AddWatchlistItem(r.Context(), user.ID, req)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to add watchlist item: %v", err))
		h.writeError(w, "failed to add watchlist item", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, item, http.StatusCreated)
}

func (h *Handler) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RemoveFromWatchlist")

	user, ok := r.Context().Value(config.KeyUser).(*model.User)
	if !ok {
		h.writeError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	itemID, err := pathInt64(r, "itemID")
	if err != nil {
		h.writeValidationError(w, "path", err.Error())
		return
	}

	if err := h.repository.RemoveWatchlistItem(r.Context(), user.ID, itemID); err != nil {
		h.writeRepositoryError(w, logger, err, watchlistItemNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RateWatchlistItem(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RateWatchlistItem")

	user, ok := r.Context().Value(config.KeyUser).(*model.User)
	if !ok {
		h.writeError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	itemID, err := pathInt64(r, "itemID")
	if err != nil {
		h.writeValidationError(w, "path", err.Error())
		return
	}

	var update model.RatingUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeValidationError(w, "body", "invalid request body")
		return
	}

	if err := h.validator.ValidateRating(update.Rating); err != nil {
		h.writeValidationError(w, "body", err.Error())
		return
	}

	item, err := h.repository.RateWatchlistItem(r.Context(), user.ID, itemID, update.Rating)
	if err != nil {
		h.writeRepositoryError(w, logger, err, watchlistItemNotFound)
		return
	}

	h.writeJSON(w, item, http.StatusOK)
}

func (h *Handler) SetWatched(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SetWatched")

	user, ok := r.Context().Value(config.KeyUser).(*model.User)
	if !ok {
		h.writeError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	itemID, err := pathInt64(r, "itemID")
	if err != nil {
		h.writeValidationError(w, "path", err.Error())
		return
	}

	var update model.WatchedUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeValidationError(w, "body", "invalid request body")
		return
	}

	item, err := h.repository.SetWatched(r.Context(), user.ID, itemID, update.Watched)
	if err != nil {
		h.writeRepositoryError(w, logger, err, watchlistItemNotFound)
		return
	}

	h.writeJSON(w, item, http.StatusOK)
}
