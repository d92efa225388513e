package tui

import (
	"net/url"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	RouteLogin     = "/auth/login"
	RouteRegister  = "/auth/register"
	RouteChat      = "/chat"
	RouteMovies    = "/movies"
	RouteWatchlist = "/watchlist"
)

type Location struct {
	Path    string
	Expired bool
}

func ParseRoute(route string) Location {
	u, err := url.Parse(route)
	if err != nil {
		return Location{Path: route}
	}
	return Location{
		Path:    u.Path,
		Expired: u.Query().Get("expired") == "true",
	}
}

// Router holds the current screen route. It is shared with the HTTP session
// guard, which redirects from request goroutines.
type Router struct {
	mu    sync.Mutex
	route string
	send  func(tea.Msg)
}

func NewRouter(initial string) *Router {
	return &Router{route: initial}
}

// Attach delivers later redirects to the running program, usually p.Send.
func (r *Router) Attach(send func(tea.Msg)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.send = send
}

func (r *Router) CurrentRoute() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.route
}

// Redirect changes the route from outside the event loop. Calling it from
// Update would block the program, use Navigate there.
func (r *Router) Redirect(route string) {
	r.mu.Lock()
	r.route = route
	send := r.send
	r.mu.Unlock()

	if send != nil {
		send(routeMsg{route: route})
	}
}

func (r *Router) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.route = route
}
