//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package tui

import (
	"context"

	"github.com/s21platform/moviemagic/internal/chat"
	"github.com/s21platform/moviemagic/internal/model"
)

type Auth interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password string) error
	Logout(ctx context.Context)
	IsAuthenticated() bool
	User() *model.User
}

type Workspace interface {
	Conversations(ctx context.Context) ([]model.Conversation, error)
	Selected() *int64
	BeginSelect(conversationID *int64) (chat.HistoryTicket, bool)
	NewConversation(ctx context.Context) (*model.Conversation, error)
	DeleteConversation(ctx context.Context, conversationID int64) error
}

type ChatSession interface {
	BeginSend(text string) (chat.SendTicket, error)
	Deliver(ctx context.Context, ticket chat.SendTicket) (*model.ChatResponse, error)
	ResolveSend(ticket chat.SendTicket, resp *model.ChatResponse) bool
	FailSend(ticket chat.SendTicket, err error) bool
	FetchHistory(ctx context.Context, ticket chat.HistoryTicket) ([]model.ChatMessage, error)
	ApplyHistory(ticket chat.HistoryTicket, history []model.ChatMessage, err error) bool
	Messages() []model.ChatMessage
	IsBusy() bool
	Err() error
}

type MovieBrowser interface {
	Feed(ctx context.Context, feed model.MovieFeed, page int) (*model.PaginatedMovies, error)
	Search(ctx context.Context, text string) (*model.PaginatedMovies, error)
	Overview(ctx context.Context, movieID int64) (*model.MovieOverview, error)
}

type WatchlistManager interface {
	Enabled() bool
	List(ctx context.Context) ([]model.WatchlistItem, error)
	Add(ctx context.Context, req model.WatchlistRequest) (*model.WatchlistItem, error)
	Remove(ctx context.Context, itemID int64) error
	Rate(ctx context.Context, itemID int64, rating int) (*model.WatchlistItem, error)
	SetWatched(ctx context.Context, itemID int64, watched bool) (*model.WatchlistItem, error)
	Contains(movieID int64) bool
}
