package api

import (
	"context"
	"net/http"

	"github.com/s21platform/moviemagic/internal/model"
)

func (c *Client) Watchlist(ctx context.Context, token string) ([]model.WatchlistItem, error) {
	var items []model.WatchlistItem
	if err := c.do(ctx, request{method: http.MethodGet, path: "/watchlist", token: token}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AddToWatchlist(ctx context.Context, token string, req model.WatchlistRequest) (*model.WatchlistItem, error) {
	var item model.WatchlistItem
	if err := c.do(ctx, request{method: http.MethodPost, path: "/watchlist", token: token, body: req}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) RemoveFromWatchlist(ctx context.Context, token string, itemID int64) error {
	path, err := watchlistPath(itemID, "")
	if err != nil {
		return err
	}
	return c.do(ctx, request{method: http.MethodDelete, path: path, token: token}, nil)
}

func (c *Client) RateWatchlistItem(ctx context.Context, token string, itemID int64, rating int) (*model.WatchlistItem, error) {
	return c.patchWatchlist(ctx, token, itemID, "/rating", model.RatingUpdate{Rating: rating})
}

func (c *Client) SetWatched(ctx context.Context, token string, itemID int64, watched bool) (*model.WatchlistItem, error) {
	return c.patchWatchlist(ctx, token, itemID, "/watched", model.WatchedUpdate{Watched: watched})
}

func (c *Client) patchWatchlist(ctx context.Context, token string, itemID int64, suffix string, body interface{}) (*model.WatchlistItem, error) {
	path, err := watchlistPath(itemID, suffix)
	if err != nil {
		return nil, err
	}

	var item model.WatchlistItem
	if err := c.do(ctx, request{method: http.MethodPatch, path: path, token: token, body: body}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func watchlistPath(itemID int64, suffix string) (string, error) {
	idParam, err := pathParam("itemId", itemID)
	if err != nil {
		return "", err
	}
	return "/watchlist/" + idParam + suffix, nil
}
