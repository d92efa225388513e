//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/s21platform/moviemagic/internal/model"
)

type MovieAPI interface {
	MovieFeed(ctx context.Context, feed model.MovieFeed, page int) (*model.PaginatedMovies, error)
	SearchMovies(ctx context.Context, query string, page int) (*model.PaginatedMovies, error)
	SemanticSearch(ctx context.Context, req model.SemanticSearchRequest) (*model.SemanticSearchResponse, error)
	MovieDetails(ctx context.Context, movieID int64) (*model.MovieSummary, error)
	SimilarMovies(ctx context.Context, movieID int64, page int) (*model.PaginatedMovies, error)
	MovieRecommendations(ctx context.Context, movieID int64, page int) (*model.PaginatedMovies, error)
	MovieCredits(ctx context.Context, movieID int64) (*model.MovieCredits, error)
}

type PeopleAPI interface {
	SearchPeople(ctx context.Context, query string, page int) (*model.PaginatedPeople, error)
	PersonCredits(ctx context.Context, personID int64) (*model.PersonCredits, error)
}

type WatchlistAPI interface {
	Watchlist(ctx context.Context, token string) ([]model.WatchlistItem, error)
	AddToWatchlist(ctx context.Context, token string, req model.WatchlistRequest) (*model.WatchlistItem, error)
	RemoveFromWatchlist(ctx context.Context, token string, itemID int64) error
	RateWatchlistItem(ctx context.Context, token string, itemID int64, rating int) (*model.WatchlistItem, error)
	SetWatched(ctx context.Context, token string, itemID int64, watched bool) (*model.WatchlistItem, error)
}

type ConversationAPI interface {
	ListConversations(ctx context.Context, userID string) ([]model.Conversation, error)
	CreateConversation(ctx context.Context, userID string) (*model.Conversation, error)
	DeleteConversation(ctx context.Context, conversationID int64) error
	ConversationMessages(ctx context.Context, conversationID int64) ([]model.ConversationMessage, error)
}

type SystemAPI interface {
	Root(ctx context.Context) (*model.Health, error)
	Health(ctx context.Context) (*model.Health, error)
}

type TokenSource interface {
	Token() string
}

type Validator interface {
	ValidateSemanticSearch(req *model.SemanticSearchRequest) error
	ValidateRating(rating int) error
	ValidateWatchlistRequest(req *model.WatchlistRequest) error
}
