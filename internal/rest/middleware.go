package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/moviemagic/internal/config"
	"github.com/s21platform/moviemagic/internal/repository"
)

// LoggerFactory builds the logger of a single request. Handlers name
// themselves through AddFuncName, so one logger must not serve two requests.
type LoggerFactory func() logger_lib.LoggerInterface

func LoggerHTTP(next http.Handler, newLogger LoggerFactory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, newLogger())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authenticate resolves the bearer token into the signed-in user.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
		logger.AddFuncName("Authenticate")

		scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			h.writeError(w, "Not authenticated", http.StatusUnauthorized)
			return
		}

		claims, err := h.jwtGenerator.ValidateAccessToken(token)
		if err != nil {
			logger.Warn(fmt.Sprintf("rejected access token: %v", err))
			w.Header().Set("WWW-Authenticate", "Bearer")
			h.writeError(w, "Could not validate credentials", http.StatusUnauthorized)
			return
		}

		user, _, err := h.repository.UserByEmail(r.Context(), claims.Subject)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				logger.Error(fmt.Sprintf("failed to get user: %v", err))
				h.writeError(w, "failed to authenticate", http.StatusInternalServerError)
				return
			}
			w.Header().Set("WWW-Authenticate", "Bearer")
			h.writeError(w, "Could not validate credentials", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
