package service

import (
	"context"
	"fmt"

	"github.com/s21platform/moviemagic/internal/model"
	"github.com/s21platform/moviemagic/internal/query"
)

type Conversations struct {
	api   ConversationAPI
	cache *query.Client
}

func NewConversations(api ConversationAPI, cache *query.Client) *Conversations {
	return &Conversations{
		api:   api,
		cache: cache,
	}
}

func ListKey(userID string) query.Key {
	return query.NewKey("conversations", userID)
}

func MessagesKey(conversationID int64) query.Key {
	return query.NewKey("conversations", conversationID, "messages")
}

// List returns the user's conversations, most recently active first, whatever
// order the server used.
func (s *Conversations) List(ctx context.Context, userID string) ([]model.Conversation, error) {
	conversations, err := query.Fetch(ctx, s.cache, ListKey(userID), func(ctx context.Context) ([]model.Conversation, error) {
		return s.api.ListConversations(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return model.SortByLastMessage(conversations), nil
}

// Cached returns the last loaded list without a network call.
func (s *Conversations) Cached(userID string) []model.Conversation {
	conversations, _ := query.GetData[[]model.Conversation](s.cache, ListKey(userID))
	return model.SortByLastMessage(conversations)
}

func (s *Conversations) Create(ctx context.Context, userID string) (*model.Conversation, error) {
	conversation, err := s.api.CreateConversation(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	query.SetData(s.cache, ListKey(userID), func(current []model.Conversation, _ bool) []model.Conversation {
		return append([]model.Conversation{*conversation}, current...)
	})
	s.cache.Remove(MessagesKey(conversation.ID))
	s.cache.Invalidate(ListKey(userID))

	return conversation, nil
}

func (s *Conversations) Delete(ctx context.Context, userID string, conversationID int64) error {
	if err := s.api.DeleteConversation(ctx, conversationID); err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}

	query.SetData(s.cache, ListKey(userID), func(current []model.Conversation, _ bool) []model.Conversation {
		kept := make([]model.Conversation, 0, len(current))
		for _, conversation := range current {
			if conversation.ID != conversationID {
				kept = append(kept, conversation)
			}
		}
		return kept
	})
	s.cache.Remove(MessagesKey(conversationID))
	s.cache.Invalidate(ListKey(userID))

	return nil
}

// Messages returns the history of a conversation in display form.
func (s *Conversations) Messages(ctx context.Context, conversationID int64) ([]model.ChatMessage, error) {
	history, err := query.Fetch(ctx, s.cache, MessagesKey(conversationID), func(ctx context.Context) ([]model.ConversationMessage, error) {
		return s.api.ConversationMessages(ctx, conversationID)
	})
	if err != nil {
		return nil, err
	}

	messages := make([]model.ChatMessage, 0, len(history))
	for _, entry := range history {
		messages = append(messages, entry.ChatMessage())
	}
	return messages, nil
}

// Touch records activity on a conversation after a send so the list order
// and history reflect it before the next refetch.
func (s *Conversations) Touch(userID string, conversationID int64, at model.Timestamp) {
	s.cache.Remove(MessagesKey(conversationID))

	if _, ok := query.GetData[[]model.Conversation](s.cache, ListKey(userID)); ok {
		query.SetData(s.cache, ListKey(userID), func(current []model.Conversation, _ bool) []model.Conversation {
			updated := make([]model.Conversation, len(current))
			copy(updated, current)
			for i := range updated {
				if updated[i].ID == conversationID {
					updated[i].LastMessageAt = at
				}
			}
			return updated
		})
	}

	s.cache.Invalidate(ListKey(userID))
}
