//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package api

import "context"

type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Interceptor observes every failed request before the error reaches the caller.
type Interceptor interface {
	OnError(ctx context.Context, err *Error)
}

type SessionTerminator interface {
	Expire(ctx context.Context)
}

type Navigator interface {
	CurrentRoute() string
	Redirect(route string)
}
