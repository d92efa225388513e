package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const (
	LoginExpiredRoute = "/auth/login?expired=true"
	authRoutePrefix   = "/auth"
)

var protectedEndpoints = []string{"/watchlist", "/auth/me"}

// IsProtectedEndpoint reports whether a 401 from path means the session is gone.
func IsProtectedEndpoint(path string) bool {
	for _, endpoint := range protectedEndpoints {
		if strings.Contains(path, endpoint) {
			return true
		}
	}
	return false
}

// SessionGuard ends the session when a protected endpoint rejects the token
// and sends the user to the login screen.
type SessionGuard struct {
	session   SessionTerminator
	navigator Navigator
	logger    Logger
}

func NewSessionGuard(session SessionTerminator, navigator Navigator, logger Logger) *SessionGuard {
	return &SessionGuard{
		session:   session,
		navigator: navigator,
		logger:    logger,
	}
}

func (g *SessionGuard) OnError(ctx context.Context, err *Error) {
	switch {
	case err.Status == http.StatusUnauthorized && IsProtectedEndpoint(err.Path):
		g.logger.Warn(fmt.Sprintf("session rejected by %s %s: %s", err.Method, err.Path, err.Message))
		g.session.Expire(ctx)

		if !strings.HasPrefix(g.navigator.CurrentRoute(), authRoutePrefix) {
			g.navigator.Redirect(LoginExpiredRoute)
		}
	case err.Status == http.StatusForbidden:
		g.logger.Error(fmt.Sprintf("access forbidden: %s", err.Message))
	case err.Status >= http.StatusInternalServerError:
		g.logger.Error(fmt.Sprintf("server error: %s", err.Message))
	}
}
