//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package chat

import (
	"context"

	"github.com/s21platform/moviemagic/internal/model"
)

type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

type ChatAPI interface {
	SendMessage(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error)
}

type HistoryLoader interface {
	Messages(ctx context.Context, conversationID int64) ([]model.ChatMessage, error)
}

type ConversationStore interface {
	HistoryLoader
	List(ctx context.Context, userID string) ([]model.Conversation, error)
	Create(ctx context.Context, userID string) (*model.Conversation, error)
	Delete(ctx context.Context, userID string, conversationID int64) error
	Touch(userID string, conversationID int64, at model.Timestamp)
}
