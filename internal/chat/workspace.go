package chat

import (
	"context"
	"fmt"
	"sync"

	"github.com/s21platform/moviemagic/internal/model"
)

// Workspace ties the conversation list to the active chat session.
type Workspace struct {
	session       *Session
	conversations ConversationStore
	logger        Logger

	mu       sync.Mutex
	userID   string
	selected *int64
}

func NewWorkspace(api ChatAPI, conversations ConversationStore, logger Logger, userID string, opts ...Option) *Workspace {
	w := &Workspace{
		conversations: conversations,
		logger:        logger,
		userID:        userID,
	}

	opts = append(opts, WithConversationResolved(w.conversationResolved))
	w.session = NewSession(api, conversations, logger, userID, opts...)

	return w
}

func (w *Workspace) Session() *Session {
	return w.session
}

func (w *Workspace) UserID() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.userID == "" {
		return model.GuestUserID
	}
	return w.userID
}

func (w *Workspace) Selected() *int64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.selected == nil {
		return nil
	}
	id := *w.selected
	return &id
}

// SetUser switches identity. The selection is cleared because conversations
// belong to a user.
func (w *Workspace) SetUser(userID string) {
	w.mu.Lock()
	w.userID = userID
	w.selected = nil
	w.mu.Unlock()

	w.session.SetUser(userID)
}

func (w *Workspace) Conversations(ctx context.Context) ([]model.Conversation, error) {
	return w.conversations.List(ctx, w.UserID())
}

// BeginSelect records the selection and returns the history ticket to load.
func (w *Workspace) BeginSelect(conversationID *int64) (HistoryTicket, bool) {
	w.setSelected(conversationID)
	return w.session.Select(conversationID)
}

func (w *Workspace) SelectConversation(ctx context.Context, conversationID *int64) error {
	ticket, ok := w.BeginSelect(conversationID)
	if !ok {
		return nil
	}

	history, err := w.session.FetchHistory(ctx, ticket)
	w.session.ApplyHistory(ticket, history, err)
	return err
}

// NewConversation creates an empty conversation and makes it active.
func (w *Workspace) NewConversation(ctx context.Context) (*model.Conversation, error) {
	conversation, err := w.conversations.Create(ctx, w.UserID())
	if err != nil {
		return nil, err
	}

	w.logger.Info(fmt.Sprintf("created conversation %d", conversation.ID))

	ticket, ok := w.BeginSelect(&conversation.ID)
	if ok {
		w.session.ApplyHistory(ticket, nil, nil)
	}

	return conversation, nil
}

// DeleteConversation removes a conversation. Deleting the active one clears
// the selection and starts over with a greeting.
func (w *Workspace) DeleteConversation(ctx context.Context, conversationID int64) error {
	if err := w.conversations.Delete(ctx, w.UserID(), conversationID); err != nil {
		return err
	}

	w.mu.Lock()
	active := w.selected != nil && *w.selected == conversationID
	if active {
		w.selected = nil
	}
	w.mu.Unlock()

	if active {
		w.session.Select(nil)
	}

	return nil
}

func (w *Workspace) Send(ctx context.Context, text string) error {
	return w.session.Send(ctx, text)
}

func (w *Workspace) conversationResolved(conversationID int64) {
	w.setSelected(&conversationID)
	w.conversations.Touch(w.UserID(), conversationID, model.NewTimestamp(w.session.now()))
}

func (w *Workspace) setSelected(conversationID *int64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if conversationID == nil {
		w.selected = nil
		return
	}
	id := *conversationID
	w.selected = &id
}
