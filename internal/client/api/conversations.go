package api

import (
	"context"
	"net/http"

	"github.com/s21platform/moviemagic/internal/model"
)

func (c *Client) ListConversations(ctx context.Context, userID string) ([]model.Conversation, error) {
	userParam, err := pathParam("userId", userID)
	if err != nil {
		return nil, err
	}

	var conversations []model.Conversation
	if err := c.do(ctx, request{method: http.MethodGet, path: "/conversations/user/" + userParam}, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

func (c *Client) GetConversation(ctx context.Context, conversationID int64) (*model.Conversation, error) {
	idParam, err := pathParam("conversationId", conversationID)
	if err != nil {
		return nil, err
	}

	var conversation model.Conversation
	if err := c.do(ctx, request{method: http.MethodGet, path: "/conversations/" + idParam}, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (c *Client) CreateConversation(ctx context.Context, userID string) (*model.Conversation, error) {
	query, err := queryParams(queryParam{name: "user_id", value: userID})
	if err != nil {
		return nil, err
	}

	var conversation model.Conversation
	if err := c.do(ctx, request{method: http.MethodPost, path: "/conversations", query: query}, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (c *Client) DeleteConversation(ctx context.Context, conversationID int64) error {
	idParam, err := pathParam("conversationId", conversationID)
	if err != nil {
		return err
	}

	return c.do(ctx, request{method: http.MethodDelete, path: "/conversations/" + idParam}, nil)
}

func (c *Client) ConversationMessages(ctx context.Context, conversationID int64) ([]model.ConversationMessage, error) {
	idParam, err := pathParam("conversationId", conversationID)
	if err != nil {
		return nil, err
	}

	var messages []model.ConversationMessage
	if err := c.do(ctx, request{method: http.MethodGet, path: "/conversations/" + idParam + "/messages"}, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
