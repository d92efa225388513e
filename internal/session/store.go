// Package session keeps the signed-in user and the bearer token, and persists
// the token between runs.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/s21platform/moviemagic/internal/model"
)

type Status string

const (
	StatusUnauthenticated Status = "unauthenticated"
	StatusRestoring       Status = "restoring"
	StatusAuthenticated   Status = "authenticated"
)

// TokenKey is the storage key of the persisted bearer token.
const TokenKey = "movie-magic-token"

// Listener is notified after every status change.
type Listener func(status Status, user *model.User)

type Store struct {
	api       AuthAPI
	storage   Storage
	validator Validator
	inspector TokenInspector
	logger    Logger
	now       func() time.Time

	mu        sync.RWMutex
	status    Status
	token     string
	user      *model.User
	listeners []Listener
}

func New(api AuthAPI, storage Storage, validator Validator, inspector TokenInspector, logger Logger) *Store {
	return &Store{
		api:       api,
		storage:   storage,
		validator: validator,
		inspector: inspector,
		logger:    logger,
		now:       time.Now,
		status:    StatusUnauthenticated,
	}
}

func (s *Store) Subscribe(listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// Init restores a persisted session. An unusable token is dropped and the
// store stays unauthenticated; only storage failures are returned.
func (s *Store) Init(ctx context.Context) error {
	token, ok, err := s.storage.Get(ctx, TokenKey)
	if err != nil {
		return fmt.Errorf("failed to read stored token: %w", err)
	}
	if !ok || token == "" {
		s.setState(StatusUnauthenticated, "", nil)
		return nil
	}

	if s.inspector.IsExpired(token, s.now()) {
		s.logger.Info("stored token has expired")
		s.clear(ctx)
		return nil
	}

	s.setState(StatusRestoring, token, nil)

	user, err := s.api.CurrentUser(ctx, token)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("failed to restore session: %v", err))
		s.clear(ctx)
		return nil
	}

	s.setState(StatusAuthenticated, token, user)
	return nil
}

func (s *Store) Login(ctx context.Context, email, password string) error {
	creds := model.Credentials{Email: email, Password: password}
	if err := s.validator.ValidateCredentials(&creds); err != nil {
		return err
	}

	token, err := s.api.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}

	s.mu.Lock()
	s.token = token.AccessToken
	s.mu.Unlock()

	if err := s.storage.Set(ctx, TokenKey, token.AccessToken); err != nil {
		s.logger.Warn(fmt.Sprintf("failed to persist token: %v", err))
	}

	user, err := s.api.CurrentUser(ctx, token.AccessToken)
	if err != nil {
		s.clear(ctx)
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	s.setState(StatusAuthenticated, token.AccessToken, user)
	s.logger.Info(fmt.Sprintf("signed in as %s", user.Email))
	return nil
}

// Register creates the account and signs in with the same credentials.
func (s *Store) Register(ctx context.Context, email, password string) error {
	creds := model.Credentials{Email: email, Password: password}
	if err := s.validator.ValidateCredentials(&creds); err != nil {
		return err
	}

	if _, err := s.api.Register(ctx, creds); err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}

	return s.Login(ctx, email, password)
}

func (s *Store) Logout(ctx context.Context) {
	s.clear(ctx)
}

// Expire drops a session the server no longer accepts.
func (s *Store) Expire(ctx context.Context) {
	s.logger.Warn("session expired")
	s.clear(ctx)
}

func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusUnauthenticated
	s.token = ""
	s.user = nil
	s.listeners = nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Store) IsAuthenticated() bool {
	return s.Status() == StatusAuthenticated
}

// UserID is the identity chat requests are made with.
func (s *Store) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil || s.user.Email == "" {
		return model.GuestUserID
	}
	return s.user.Email
}

func (s *Store) clear(ctx context.Context) {
	if err := s.storage.Remove(ctx, TokenKey); err != nil {
		s.logger.Warn(fmt.Sprintf("failed to remove stored token: %v", err))
	}
	s.setState(StatusUnauthenticated, "", nil)
}

func (s *Store) setState(status Status, token string, user *model.User) {
	s.mu.Lock()
	changed := s.status != status || !sameUser(s.user, user)
	s.status = status
	s.token = token
	s.user = user
	listeners := s.listeners
	s.mu.Unlock()

	if !changed {
		return
	}

	for _, listener := range listeners {
		var copied *model.User
		if user != nil {
			u := *user
			copied = &u
		}
		listener(status, copied)
	}
}

func sameUser(a, b *model.User) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID && a.Email == b.Email
}
