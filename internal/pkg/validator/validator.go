package validator

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/s21platform/moviemagic/internal/model"
)

const (
	minPasswordLength = 6
	maxUserIDLength   = 100
	minRating         = 1
	maxRating         = 5
	minSearchLimit    = 1
	maxSearchLimit    = 50
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCredentials(creds *model.Credentials) error {
	if strings.TrimSpace(creds.Email) == "" {
		return fmt.Errorf("email is required")
	}

	addr, err := mail.ParseAddress(creds.Email)
	if err != nil || addr.Address != creds.Email {
		return fmt.Errorf("email '%s' is not a valid address", creds.Email)
	}

	if len([]rune(creds.Password)) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	return nil
}

func (v *Validator) ValidateChatRequest(req *model.ChatRequest) error {
	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("message cannot be empty")
	}

	userIDLength := len([]rune(req.UserID))
	if userIDLength < 1 || userIDLength > maxUserIDLength {
		return fmt.Errorf("user_id must be between 1 and %d characters", maxUserIDLength)
	}

	if req.ConversationID != nil && *req.ConversationID <= 0 {
		return fmt.Errorf("conversation_id must be positive")
	}

	return nil
}

func (v *Validator) ValidateRating(rating int) error {
	if rating < minRating || rating > maxRating {
		return fmt.Errorf("rating must be between %d and %d, got %d", minRating, maxRating, rating)
	}

	return nil
}

func (v *Validator) ValidateSemanticSearch(req *model.SemanticSearchRequest) error {
	if strings.TrimSpace(req.Query) == "" {
		return fmt.Errorf("query cannot be empty")
	}

	if req.Limit != nil && (*req.Limit < minSearchLimit || *req.Limit > maxSearchLimit) {
		return fmt.Errorf("limit must be between %d and %d", minSearchLimit, maxSearchLimit)
	}

	return nil
}

func (v *Validator) ValidateWatchlistRequest(req *model.WatchlistRequest) error {
	if req.MovieID <= 0 {
		return fmt.Errorf("movie_id must be positive")
	}

	if strings.TrimSpace(req.MovieTitle) == "" {
		return fmt.Errorf("movie_title is required")
	}

	return nil
}
