package api

import (
	"context"
	"net/http"

	"github.com/s21platform/moviemagic/internal/model"
)

func (c *Client) SendMessage(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error) {
	var resp model.ChatResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: "/chat", body: req}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
