// Package rest serves the mock movie API over HTTP.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/moviemagic/internal/config"
	"github.com/s21platform/moviemagic/internal/model"
	"github.com/s21platform/moviemagic/internal/repository"
)

const apiVersion = "1.0.0"

type Handler struct {
	repository   DBRepo
	catalog      Catalog
	validator    Validator
	jwtGenerator JWTGenerator

	hashCost int
	now      func() time.Time
}

func New(repo DBRepo, catalog Catalog, validator Validator, jwtGenerator JWTGenerator) *Handler {
	return &Handler{
		repository:   repo,
		catalog:      catalog,
		validator:    validator,
		jwtGenerator: jwtGenerator,
		hashCost:     bcrypt.DefaultCost,
		now:          time.Now,
	}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, model.Health{
		Status:  "healthy",
		Message: "Movie Magic API",
		Version: apiVersion,
	}, http.StatusOK)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, model.Health{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Register")

	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeValidationError(w, "body", "invalid request body")
		return
	}

	if err := h.validator.ValidateCredentials(&creds); err != nil {
		logger.Warn(fmt.Sprintf("credentials validation failed: %v", err))
		h.writeValidationError(w, "body", err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), h.hashCost)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to hash password: %v", err))
		h.writeError(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	user, err := h.repository.CreateUser(r.Context(), creds.Email, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			h.writeError(w, "Email already registered", http.StatusBadRequest)
			return
		}
		logger.Error(fmt.Sprintf("failed to create user: %v", err))
		h.writeError(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("registered user %d", user.ID))

	h.writeJSON(w, user, http.StatusCreated)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Login")

	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeValidationError(w, "body", "invalid request body")
		return
	}

	user, hash, err := h.repository.UserByEmail(r.Context(), creds.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		logger.Error(fmt.Sprintf("failed to get user: %v", err))
		h.writeError(w, "failed to login", http.StatusInternalServerError)
		return
	}

	if err != nil || bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)) != nil {
		w.Header().Set("WWW-Authenticate", "Bearer")
		h.writeError(w, "Incorrect email or password", http.StatusUnauthorized)
		return
	}

	token, _, err := h.jwtGenerator.GenerateAccessToken(user.Email)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, "failed to generate access token", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, model.Token{AccessToken: token, TokenType: model.BearerTokenType}, http.StatusOK)
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(config.KeyUser).(*model.User)
	if !ok {
		h.writeError(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	h.writeJSON(w, user, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

type validationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{Detail: message})
}

func (h *Handler) writeValidationError(w http.ResponseWriter, location, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{Detail: []validationIssue{{
		Loc:  []string{location},
		Msg:  message,
		Type: "value_error",
	}}})
}
