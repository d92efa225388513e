//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package session

import (
	"context"
	"time"

	"github.com/s21platform/moviemagic/internal/model"
)

type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type AuthAPI interface {
	Register(ctx context.Context, creds model.Credentials) (*model.User, error)
	Login(ctx context.Context, creds model.Credentials) (*model.Token, error)
	CurrentUser(ctx context.Context, token string) (*model.User, error)
}

type Validator interface {
	ValidateCredentials(creds *model.Credentials) error
}

type TokenInspector interface {
	IsExpired(token string, now time.Time) bool
}
