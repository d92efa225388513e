package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/s21platform/moviemagic/internal/model"
	"github.com/s21platform/moviemagic/internal/query"
)

var ErrAuthRequired = errors.New("Authentication required") //nolint:stylecheck // shown to the user as is

var watchlistKey = query.NewKey("watchlist")

type RatingChange struct {
	ItemID int64
	Rating int
}

type WatchedChange struct {
	ItemID  int64
	Watched bool
}

type Watchlist struct {
	api       WatchlistAPI
	cache     *query.Client
	tokens    TokenSource
	validator Validator

	add    *query.Mutation[model.WatchlistRequest, *model.WatchlistItem]
	remove *query.Mutation[int64, struct{}]
	rate   *query.Mutation[RatingChange, *model.WatchlistItem]
	toggle *query.Mutation[WatchedChange, *model.WatchlistItem]
}

func NewWatchlist(api WatchlistAPI, cache *query.Client, tokens TokenSource, validator Validator) *Watchlist {
	s := &Watchlist{
		api:       api,
		cache:     cache,
		tokens:    tokens,
		validator: validator,
	}

	s.add = query.NewMutation(s.addItem, func(context.Context, model.WatchlistRequest, *model.WatchlistItem) { s.invalidate() })
	s.remove = query.NewMutation(s.removeItem, func(context.Context, int64, struct{}) { s.invalidate() })
	s.rate = query.NewMutation(s.rateItem, func(context.Context, RatingChange, *model.WatchlistItem) { s.invalidate() })
	s.toggle = query.NewMutation(s.toggleItem, func(context.Context, WatchedChange, *model.WatchlistItem) { s.invalidate() })

	return s
}

// Enabled reports whether the watchlist can be loaded at all.
func (s *Watchlist) Enabled() bool {
	return s.tokens.Token() != ""
}

func (s *Watchlist) List(ctx context.Context) ([]model.WatchlistItem, error) {
	return query.Fetch(ctx, s.cache, watchlistKey, func(ctx context.Context) ([]model.WatchlistItem, error) {
		token, err := s.requireToken()
		if err != nil {
			return nil, err
		}
		return s.api.Watchlist(ctx, token)
	})
}

func (s *Watchlist) Add(ctx context.Context, req model.WatchlistRequest) (*model.WatchlistItem, error) {
	return s.add.Run(ctx, req)
}

func (s *Watchlist) Remove(ctx context.Context, itemID int64) error {
	_, err := s.remove.Run(ctx, itemID)
	return err
}

func (s *Watchlist) Rate(ctx context.Context, itemID int64, rating int) (*model.WatchlistItem, error) {
	return s.rate.Run(ctx, RatingChange{ItemID: itemID, Rating: rating})
}

func (s *Watchlist) SetWatched(ctx context.Context, itemID int64, watched bool) (*model.WatchlistItem, error) {
	return s.toggle.Run(ctx, WatchedChange{ItemID: itemID, Watched: watched})
}

// Contains reports whether movieID is already in the cached watchlist.
func (s *Watchlist) Contains(movieID int64) bool {
	items, ok := query.GetData[[]model.WatchlistItem](s.cache, watchlistKey)
	if !ok {
		return false
	}
	for _, item := range items {
		if item.MovieID == movieID {
			return true
		}
	}
	return false
}

// Clear drops cached entries so a different user never sees them.
func (s *Watchlist) Clear() {
	s.cache.Remove(watchlistKey)
}

func (s *Watchlist) IsPending() bool {
	return s.add.IsPending() || s.remove.IsPending() || s.rate.IsPending() || s.toggle.IsPending()
}

func (s *Watchlist) addItem(ctx context.Context, req model.WatchlistRequest) (*model.WatchlistItem, error) {
	token, err := s.requireToken()
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateWatchlistRequest(&req); err != nil {
		return nil, fmt.Errorf("invalid watchlist item: %w", err)
	}
	return s.api.AddToWatchlist(ctx, token, req)
}

func (s *Watchlist) removeItem(ctx context.Context, itemID int64) (struct{}, error) {
	token, err := s.requireToken()
	if err != nil {
		return struct{}{}, err
	}
	return struct{}{}, s.api.RemoveFromWatchlist(ctx, token, itemID)
}

func (s *Watchlist) rateItem(ctx context.Context, change RatingChange) (*model.WatchlistItem, error) {
	token, err := s.requireToken()
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateRating(change.Rating); err != nil {
		return nil, fmt.Errorf("invalid rating: %w", err)
	}
	return s.api.RateWatchlistItem(ctx, token, change.ItemID, change.Rating)
}

func (s *Watchlist) toggleItem(ctx context.Context, change WatchedChange) (*model.WatchlistItem, error) {
	token, err := s.requireToken()
	if err != nil {
		return nil, err
	}
	return s.api.SetWatched(ctx, token, change.ItemID, change.Watched)
}

func (s *Watchlist) requireToken() (string, error) {
	token := s.tokens.Token()
	if token == "" {
		return "", ErrAuthRequired
	}
	return token, nil
}

func (s *Watchlist) invalidate() {
	s.cache.Invalidate(watchlistKey)
}
