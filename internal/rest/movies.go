package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/moviemagic/internal/config"
	"github.com/s21platform/moviemagic/internal/model"
)

const (
	movieNotFound      = "Movie not found"
	personNotFound     = "Person not found"
	defaultSearchLimit = 10
)

func (h *Handler) MovieFeed(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MovieFeed")

	page, err := queryPage(r)
	if err != nil {
		h.writeValidationError(w, "query", err.Error())
		return
	}

	movies, err := h.catalog.Feed(r.Context(), model.MovieFeed(chi.URLParam(r, "feed")), page)
	if err != nil {
		h.writeRepositoryError(w, logger, err, "Feed not found")
		return
	}

	h.writeJSON(w, movies, http.StatusOK)
}

func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SearchMovies")

	query, err := queryString(r, "query")
	if err != nil {
		h.writeValidationError(w, "query", err.Error())
		return
	}

	page, err := queryPage(r)
	if err != nil {
		h.writeValidationError(w, "query", err.Error())
		return
	}

	movies, err := h.catalog.Search(r.Context(), query, page)
	if err != nil {
		h.writeRepositoryError(w, logger, err, movieNotFound)
		return
	}

	h.writeJSON(w, movies, http.StatusOK)
}

func (h *Handler) SemanticSearch(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SemanticSearch")

	var req model.SemanticSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeValidationError(w, "body", "invalid request body")
		return
	}

	if err := h.validator.ValidateSemanticSearch(&req); err != nil {
		h.writeValidationError(w, "body", err.Error())
		return
	}

	limit := defaultSearchLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	results, err := h.catalog.SemanticSearch(r.Context(), req.Query, limit)
	if err != nil {
		logger.Error(fmt.Sprintf("semantic search failed: %v", err))
		h.writeError(w, "semantic search failed", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, model.SemanticSearchResponse{
		Query:   req.Query,
		Results: results,
		Count:   len(results),
	}, http.StatusOK)
}

func (h *Handler) MovieDetails(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MovieDetails")

	movieID, err := pathInt64(r, "movieID")
	if err != nil {
		h.writeValidationError(w, "path", err.Error())
		return
	}

	movie, err := h.catalog.Movie(r.Context(), movieID)
	if err != nil {
		h.writeRepositoryError(w, logger, err, movieNotFound)
		return
	}

	h.writeJSON(w, movie, http.StatusOK)
}

func (h *Handler) MovieCredits(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MovieCredits")

	movieID, err := pathInt64(r, "movieID")
	if err != nil {
		h.writeValidationError(w, "path", err.Error())
		return
	}

	credits, err := h.catalog.Credits(r.Context(), movieID)
	if err != nil {
		h.writeRepositoryError(w, logger, err, movieNotFound)
		return
	}

	h.writeJSON(w, credits, http.StatusOK)
}

func (h *Handler) SimilarMovies(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SimilarMovies")

	h.relatedMovies(w, r, logger, h.catalog.Similar)
}

func (h *Handler) MovieRecommendations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MovieRecommendations")

	h.relatedMovies(w, r, logger, h.catalog.Recommendations)
}

func (h *Handler) SearchPeople(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SearchPeople")

	query, err := queryString(r, "query")
	if err != nil {
		h.writeValidationError(w, "query", err.Error())
		return
	}

	page, err := queryPage(r)
	if err != nil {
		h.writeValidationError(w, "query", err.Error())
		return
	}

	people, err := h.catalog.SearchPeople(r.Context(), query, page)
	if err != nil {
		h.writeRepositoryError(w, logger, err, personNotFound)
		return
	}

	h.writeJSON(w, people, http.StatusOK)
}

func (h *Handler) PersonCredits(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("PersonCredits")

	personID, err := pathInt64(r, "personID")
	if err != nil {
		h.writeValidationError(w, "path", err.Error())
		return
	}

	credits, err := h.catalog.PersonCredits(r.Context(), personID)
	if err != nil {
		h.writeRepositoryError(w, logger, err, personNotFound)
		return
	}

	h.writeJSON(w, credits, http.StatusOK)
}

func (h *Handler) relatedMovies(
	w http.ResponseWriter,
	r *http.Request,
	logger logger_lib.LoggerInterface,
	fetch func(ctx context.Context, movieID int64, page int) (*model.PaginatedMovies, error),
) {
	movieID, err := pathInt64(r, "movieID")
	if err != nil {
		h.writeValidationError(w, "path", err.Error())
		return
	}

	page, err := queryPage(r)
	if err != nil {
		h.writeValidationError(w, "query", err.Error())
		return
	}

	movies, err := fetch(r.Context(), movieID, page)
	if err != nil {
		h.writeRepositoryError(w, logger, err, movieNotFound)
		return
	}

	h.writeJSON(w, movies, http.StatusOK)
}
