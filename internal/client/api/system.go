package api

import (
	"context"
	"net/http"

	"github.com/s21platform/moviemagic/internal/model"
)

func (c *Client) Root(ctx context.Context) (*model.Health, error) {
	return c.health(ctx, "/")
}

func (c *Client) Health(ctx context.Context) (*model.Health, error) {
	return c.health(ctx, "/health")
}

func (c *Client) health(ctx context.Context, path string) (*model.Health, error) {
	var health model.Health
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &health); err != nil {
		return nil, err
	}
	return &health, nil
}
