// Package memory is the in-process data store behind the mock API.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/s21platform/moviemagic/internal/model"
	"github.com/s21platform/moviemagic/internal/repository"
)

type userRecord struct {
	user         model.User
	passwordHash string
}

type Repository struct {
	mu  sync.RWMutex
	now func() time.Time

	users         map[string]*userRecord
	conversations map[int64]*model.Conversation
	messages      map[int64][]model.ConversationMessage
	watchlists    map[int64][]model.WatchlistItem

	lastUserID         int64
	lastConversationID int64
	lastMessageID      int64
	lastItemID         int64
}

func New() *Repository {
	return &Repository{
		now:           time.Now,
		users:         make(map[string]*userRecord),
		conversations: make(map[int64]*model.Conversation),
		messages:      make(map[int64][]model.ConversationMessage),
		watchlists:    make(map[int64][]model.WatchlistItem),
	}
}

func (r *Repository) CreateUser(_ context.Context, email, passwordHash string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email = strings.ToLower(email)
	if _, ok := r.users[email]; ok {
		return nil, repository.ErrAlreadyExists
	}

	r.lastUserID++
	record := &userRecord{
		user: model.User{
			ID:        r.lastUserID,
			Email:     email,
			CreatedAt: model.NewTimestamp(r.now()),
		},
		passwordHash: passwordHash,
	}
	r.users[email] = record

	user := record.user
	return &user, nil
}

// UserByEmail returns the user together with its password hash.
func (r *Repository) UserByEmail(_ context.Context, email string) (*model.User, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.users[strings.ToLower(email)]
	if !ok {
		return nil, "", repository.ErrNotFound
	}

	user := record.user
	return &user, record.passwordHash, nil
}

func (r *Repository) CreateConversation(_ context.Context, userID string) (*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.createConversation(userID), nil
}

func (r *Repository) Conversation(_ context.Context, conversationID int64) (*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conversation, ok := r.conversations[conversationID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	c := *conversation
	return &c, nil
}

// UserConversations lists a user's conversations, most recently active first.
func (r *Repository) UserConversations(_ context.Context, userID string) ([]model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conversations := make([]model.Conversation, 0)
	for _, c := range r.conversations {
		if c.UserID == userID {
			conversations = append(conversations, *c)
		}
	}

	sort.Slice(conversations, func(i, j int) bool { return conversations[i].ID > conversations[j].ID })
	return model.SortByLastMessage(conversations), nil
}

func (r *Repository) DeleteConversation(_ context.Context, conversationID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conversations[conversationID]; !ok {
		return repository.ErrNotFound
	}

	delete(r.conversations, conversationID)
	delete(r.messages, conversationID)
	return nil
}

func (r *Repository) ConversationMessages(_ context.Context, conversationID int64) ([]model.ConversationMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.conversations[conversationID]; !ok {
		return nil, repository.ErrNotFound
	}

	messages := make([]model.ConversationMessage, len(r.messages[conversationID]))
	copy(messages, r.messages[conversationID])
	return messages, nil
}

// AddExchange stores a user message and the assistant reply in one step. A nil
// conversation id starts a new conversation for the user.
func (r *Repository) AddExchange(_ context.Context, userID string, conversationID *int64, prompt string, reply model.ConversationMessage) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var conversation *model.Conversation
	if conversationID == nil {
		conversation = r.conversations[r.createConversation(userID).ID]
	} else {
		var ok bool
		conversation, ok = r.conversations[*conversationID]
		if !ok {
			return 0, repository.ErrNotFound
		}
	}

	now := model.NewTimestamp(r.now())

	r.lastMessageID++
	question := model.ConversationMessage{
		ID:             r.lastMessageID,
		ConversationID: conversation.ID,
		Role:           model.RoleUser,
		Content:        prompt,
		ContentType:    model.ContentTypeText,
		CreatedAt:      now,
	}

	r.lastMessageID++
	reply.ID = r.lastMessageID
	reply.ConversationID = conversation.ID
	reply.Role = model.RoleAssistant
	reply.CreatedAt = now

	r.messages[conversation.ID] = append(r.messages[conversation.ID], question, reply)
	conversation.LastMessageAt = now

	return conversation.ID, nil
}

func (r *Repository) Watchlist(_ context.Context, userID int64) ([]model.WatchlistItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.WatchlistItem, len(r.watchlists[userID]))
	copy(items, r.watchlists[userID])
	return items, nil
}

// AddWatchlistItem adds a movie once. Adding it again returns the existing item.
func (r *Repository) AddWatchlistItem(_ context.Context, userID int64, req model.WatchlistRequest) (*model.WatchlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.watchlists[userID] {
		if item.MovieID == req.MovieID {
			existing := item
			return &existing, nil
		}
	}

	r.lastItemID++
	item := model.WatchlistItem{
		ID:         r.lastItemID,
		MovieID:    req.MovieID,
		MovieTitle: req.MovieTitle,
		PosterPath: req.PosterPath,
		Notes:      req.Notes,
		CreatedAt:  model.NewTimestamp(r.now()),
	}
	r.watchlists[userID] = append(r.watchlists[userID], item)

	return &item, nil
}

func (r *Repository) RemoveWatchlistItem(_ context.Context, userID, itemID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.watchlists[userID]
	for i, item := range items {
		if item.ID == itemID {
			r.watchlists[userID] = append(items[:i:i], items[i+1:]...)
			return nil
		}
	}

	return repository.ErrNotFound
}

func (r *Repository) RateWatchlistItem(_ context.Context, userID, itemID int64, rating int) (*model.WatchlistItem, error) {
	return r.updateWatchlistItem(userID, itemID, func(item *model.WatchlistItem) {
		item.Rating = &rating
	})
}

func (r *Repository) SetWatched(_ context.Context, userID, itemID int64, watched bool) (*model.WatchlistItem, error) {
	return r.updateWatchlistItem(userID, itemID, func(item *model.WatchlistItem) {
		item.Watched = watched
	})
}

func (r *Repository) updateWatchlistItem(userID, itemID int64, update func(item *model.WatchlistItem)) (*model.WatchlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.watchlists[userID]
	for i := range items {
		if items[i].ID == itemID {
			update(&items[i])
			item := items[i]
			return &item, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *Repository) createConversation(userID string) *model.Conversation {
	r.lastConversationID++
	now := model.NewTimestamp(r.now())

	conversation := &model.Conversation{
		ID:            r.lastConversationID,
		UserID:        userID,
		StartedAt:     now,
		LastMessageAt: now,
	}
	r.conversations[conversation.ID] = conversation

	c := *conversation
	return &c
}
