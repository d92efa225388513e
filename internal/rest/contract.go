//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/s21platform/moviemagic/internal/model"
)

type DBRepo interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, string, error)

	CreateConversation(ctx context.Context, userID string) (*model.Conversation, error)
	Conversation(ctx context.Context, conversationID int64) (*model.Conversation, error)
	UserConversations(ctx context.Context, userID string) ([]model.Conversation, error)
	DeleteConversation(ctx context.Context, conversationID int64) error
	ConversationMessages(ctx context.Context, conversationID int64) ([]model.ConversationMessage, error)
	AddExchange(ctx context.Context, userID string, conversationID *int64, prompt string, reply model.ConversationMessage) (int64, error)

	Watchlist(ctx context.Context, userID int64) ([]model.WatchlistItem, error)
	AddWatchlistItem(ctx context.Context, userID int64, req model.WatchlistRequest) (*model.WatchlistItem, error)
	RemoveWatchlistItem(ctx context.Context, userID, itemID int64) error
	RateWatchlistItem(ctx context.Context, userID, itemID int64, rating int) (*model.WatchlistItem, error)
	SetWatched(ctx context.Context, userID, itemID int64, watched bool) (*model.WatchlistItem, error)
}

type Catalog interface {
	Feed(ctx context.Context, feed model.MovieFeed, page int) (*model.PaginatedMovies, error)
	Search(ctx context.Context, query string, page int) (*model.PaginatedMovies, error)
	SemanticSearch(ctx context.Context, query string, limit int) ([]model.MovieSummary, error)
	Movie(ctx context.Context, movieID int64) (*model.MovieSummary, error)
	Credits(ctx context.Context, movieID int64) (*model.MovieCredits, error)
	Similar(ctx context.Context, movieID int64, page int) (*model.PaginatedMovies, error)
	Recommendations(ctx context.Context, movieID int64, page int) (*model.PaginatedMovies, error)
	SearchPeople(ctx context.Context, query string, page int) (*model.PaginatedPeople, error)
	PersonCredits(ctx context.Context, personID int64) (*model.PersonCredits, error)
	Recommend(message string) []model.MovieRecommendation
}

type Validator interface {
	ValidateCredentials(creds *model.Credentials) error
	ValidateChatRequest(req *model.ChatRequest) error
	ValidateRating(rating int) error
	ValidateSemanticSearch(req *model.SemanticSearchRequest) error
	ValidateWatchlistRequest(req *model.WatchlistRequest) error
}

type JWTGenerator interface {
	GenerateAccessToken(subject string) (string, int64, error)
	ValidateAccessToken(tokenString string) (*model.AccessClaims, error)
}
