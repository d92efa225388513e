package api

import (
	"context"
	"net/http"

	"github.com/s21platform/moviemagic/internal/model"
)

func (c *Client) Register(ctx context.Context, creds model.Credentials) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/register", body: creds}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Login(ctx context.Context, creds model.Credentials) (*model.Token, error) {
	var token model.Token
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/login", body: creds}, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, request{method: http.MethodGet, path: "/auth/me", token: token}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
