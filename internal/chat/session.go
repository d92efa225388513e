// Package chat holds the client side of a conversation: the ordered message
// list, the pending reply placeholder and history loading.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/moviemagic/internal/model"
)

type State string

const (
	StateIdle             State = "idle"
	StateAwaitingHistory  State = "awaiting-history"
	StateAwaitingResponse State = "awaiting-response"
)

const (
	// ThinkingMarker is the text of the placeholder shown while a reply is pending.
	ThinkingMarker = "Thinking…"
	errorPrefix    = "⚠️ "
)

var (
	ErrEmptyMessage = errors.New("message cannot be empty")
	ErrBusy         = errors.New("wait for the current reply before sending another message")
)

// HistoryTicket identifies one history load. It is stale once the selection
// changes again.
type HistoryTicket struct {
	Epoch          uint64
	ConversationID int64
}

// SendTicket identifies one send and the placeholder it created.
type SendTicket struct {
	PendingID string
	Epoch     uint64
	Request   model.ChatRequest
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Session) {
		s.newID = newID
	}
}

// WithConversationResolved registers a callback for the conversation id the
// server assigns to a send.
func WithConversationResolved(fn func(conversationID int64)) Option {
	return func(s *Session) {
		s.onResolved = append(s.onResolved, fn)
	}
}

type Session struct {
	api     ChatAPI
	history HistoryLoader
	logger  Logger

	now        func() time.Time
	newID      func() string
	onResolved []func(int64)

	mu             sync.Mutex
	userID         string
	messages       []model.ChatMessage
	state          State
	err            error
	conversationID *int64
	epoch          uint64
	pending        *SendTicket
}

func NewSession(api ChatAPI, history HistoryLoader, logger Logger, userID string, opts ...Option) *Session {
	s := &Session{
		api:     api,
		history: history,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
		userID:  userID,
		state:   StateIdle,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.messages = []model.ChatMessage{s.greeting()}
	return s
}

// Select switches to a conversation. A nil id starts over with a greeting and
// needs no load. Otherwise the returned ticket must be settled with
// ApplyHistory.
func (s *Session) Select(conversationID *int64) (HistoryTicket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.err = nil
	s.pending = nil

	if conversationID == nil {
		s.conversationID = nil
		s.messages = []model.ChatMessage{s.greeting()}
		s.state = StateIdle
		return HistoryTicket{}, false
	}

	id := *conversationID
	s.conversationID = &id
	s.state = StateAwaitingHistory

	return HistoryTicket{Epoch: s.epoch, ConversationID: id}, true
}

func (s *Session) FetchHistory(ctx context.Context, ticket HistoryTicket) ([]model.ChatMessage, error) {
	return s.history.Messages(ctx, ticket.ConversationID)
}

// ApplyHistory settles a history load. Results for a superseded selection are
// dropped and false is returned.
func (s *Session) ApplyHistory(ticket HistoryTicket, history []model.ChatMessage, err error) bool {
	if !s.applyHistory(ticket, history, err) {
		return false
	}

	if err != nil {
		s.logger.Warn(fmt.Sprintf("failed to load history of conversation %d: %v", ticket.ConversationID, err))
	}
	return true
}

func (s *Session) applyHistory(ticket HistoryTicket, history []model.ChatMessage, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket.Epoch != s.epoch || s.state != StateAwaitingHistory {
		return false
	}

	s.state = StateIdle

	if err != nil {
		s.err = err
		s.messages = []model.ChatMessage{s.greeting()}
		return true
	}

	if len(history) == 0 {
		s.messages = []model.ChatMessage{s.greeting()}
		return true
	}

	s.messages = make([]model.ChatMessage, len(history))
	copy(s.messages, history)
	return true
}

// LoadConversation selects a conversation and waits for its history.
func (s *Session) LoadConversation(ctx context.Context, conversationID *int64) error {
	ticket, ok := s.Select(conversationID)
	if !ok {
		return nil
	}

	history, err := s.FetchHistory(ctx, ticket)
	s.ApplyHistory(ticket, history, err)
	return err
}

// BeginSend appends the user message and a pending assistant placeholder.
func (s *Session) BeginSend(text string) (SendTicket, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return SendTicket{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return SendTicket{}, ErrBusy
	}

	now := s.now()
	placeholder := model.ChatMessage{
		ID:        s.newID(),
		Role:      model.RoleAssistant,
		Content:   ThinkingMarker,
		CreatedAt: now,
		Pending:   true,
	}

	s.messages = append(s.messages,
		model.ChatMessage{
			ID:        s.newID(),
			Role:      model.RoleUser,
			Content:   text,
			CreatedAt: now,
		},
		placeholder,
	)

	var conversationID *int64
	if s.conversationID != nil {
		id := *s.conversationID
		conversationID = &id
	}

	ticket := SendTicket{
		PendingID: placeholder.ID,
		Epoch:     s.epoch,
		Request: model.ChatRequest{
			UserID:         s.requestUserID(),
			Message:        text,
			ConversationID: conversationID,
		},
	}

	s.pending = &ticket
	s.state = StateAwaitingResponse
	s.err = nil

	return ticket, nil
}

func (s *Session) Deliver(ctx context.Context, ticket SendTicket) (*model.ChatResponse, error) {
	return s.api.SendMessage(ctx, ticket.Request)
}

// ResolveSend fills the placeholder with the reply and binds the conversation
// the server used. A superseded ticket changes nothing.
func (s *Session) ResolveSend(ticket SendTicket, resp *model.ChatResponse) bool {
	s.mu.Lock()

	if !s.isCurrent(ticket) {
		s.mu.Unlock()
		return false
	}

	if i := s.indexOf(ticket.PendingID); i >= 0 {
		s.messages[i].Content = resp.Message
		s.messages[i].Movies = resp.Movies
		s.messages[i].CreatedAt = s.now()
		s.messages[i].Pending = false
	}

	conversationID := resp.ConversationID
	s.conversationID = &conversationID
	s.pending = nil
	s.state = StateIdle

	callbacks := s.onResolved
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(conversationID)
	}
	return true
}

// FailSend drops the placeholder and appends one error message in its place.
func (s *Session) FailSend(ticket SendTicket, err error) bool {
	if !s.failSend(ticket, err) {
		return false
	}

	s.logger.Warn(fmt.Sprintf("failed to send chat message: %v", err))
	return true
}

func (s *Session) failSend(ticket SendTicket, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isCurrent(ticket) {
		return false
	}

	if i := s.indexOf(ticket.PendingID); i >= 0 {
		s.messages = append(s.messages[:i], s.messages[i+1:]...)
	}

	s.messages = append(s.messages, model.ChatMessage{
		ID:        s.newID(),
		Role:      model.RoleAssistant,
		Content:   errorPrefix + err.Error(),
		CreatedAt: s.now(),
	})
	s.err = err
	s.pending = nil
	s.state = StateIdle

	return true
}

// Send runs a full send. Delivery failures end up in the message list and
// Err, so only rejected input is returned.
func (s *Session) Send(ctx context.Context, text string) error {
	ticket, err := s.BeginSend(text)
	if err != nil {
		return err
	}

	resp, err := s.Deliver(ctx, ticket)
	if err != nil {
		s.FailSend(ticket, err)
		return nil
	}

	s.ResolveSend(ticket, resp)
	return nil
}

// Reset replaces the messages with a fresh greeting. The bound conversation
// is kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.pending = nil
	s.err = nil
	s.state = StateIdle
	s.messages = []model.ChatMessage{s.greeting()}
}

// SetUser switches the signed-in identity and starts over.
func (s *Session) SetUser(userID string) {
	s.mu.Lock()
	s.userID = userID
	s.mu.Unlock()

	s.Select(nil)
}

func (s *Session) Messages() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]model.ChatMessage, len(s.messages))
	copy(messages, s.messages)
	return messages
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) IsBusy() bool {
	return s.State() == StateAwaitingResponse
}

// Err returns the last send or history error, cleared by the next attempt.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Session) ConversationID() *int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conversationID == nil {
		return nil
	}
	id := *s.conversationID
	return &id
}

func (s *Session) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

func (s *Session) greeting() model.ChatMessage {
	return model.ChatMessage{
		ID:        s.newID(),
		Role:      model.RoleAssistant,
		Content:   GreetingText(s.userID, s.now()),
		CreatedAt: s.now(),
	}
}

func (s *Session) requestUserID() string {
	if s.userID == "" {
		return model.GuestUserID
	}
	return s.userID
}

func (s *Session) isCurrent(ticket SendTicket) bool {
	return s.pending != nil && s.pending.PendingID == ticket.PendingID && ticket.Epoch == s.epoch
}

func (s *Session) indexOf(id string) int {
	for i, msg := range s.messages {
		if msg.ID == id {
			return i
		}
	}
	return -1
}
