// Package tui is the terminal front end: sign in, chat with the assistant,
// browse movies and keep a watchlist.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// header and footer lines
const appChromeHeight = 2

type Deps struct {
	Auth      Auth
	Workspace Workspace
	Session   ChatSession
	Movies    MovieBrowser
	Watchlist WatchlistManager
}

type App struct {
	ctx    context.Context
	router *Router
	auth   Auth

	keys globalKeys
	help help.Model

	location  Location
	login     *loginView
	chat      *chatView
	movies    *moviesView
	watchlist *watchlistView

	width  int
	height int
}

func NewApp(ctx context.Context, router *Router, deps Deps) *App {
	return &App{
		ctx:       ctx,
		router:    router,
		auth:      deps.Auth,
		keys:      newGlobalKeys(),
		help:      help.New(),
		login:     newLoginView(ctx, deps.Auth),
		chat:      newChatView(ctx, deps.Workspace, deps.Session),
		movies:    newMoviesView(ctx, deps.Movies, deps.Watchlist),
		watchlist: newWatchlistView(ctx, deps.Watchlist),
	}
}

func (a *App) Init() tea.Cmd {
	return a.enter(a.router.CurrentRoute())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width

		contentHeight := msg.Height - appChromeHeight
		a.chat.SetSize(msg.Width, contentHeight)
		a.movies.SetSize(msg.Width, contentHeight)
		a.watchlist.SetSize(msg.Width, contentHeight)
		return a, nil

	case routeMsg:
		return a, a.enter(msg.route)

	case navigateMsg:
		return a, a.navigate(msg.route)

	case authDoneMsg:
		return a, a.login.Update(msg)

	// The spinner keeps ticking off screen so a pending reply still animates
	// when the user comes back.
	case spinner.TickMsg, conversationsMsg, historyMsg, replyMsg, conversationCreatedMsg, conversationDeletedMsg:
		return a, a.chat.Update(msg)

	case moviesMsg, overviewMsg, savedMsg:
		return a, a.movies.Update(msg)

	case watchlistMsg, watchlistUpdatedMsg:
		return a, a.watchlist.Update(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Chat):
			return a, a.navigate(RouteChat)
		case key.Matches(msg, a.keys.Movies):
			return a, a.navigate(RouteMovies)
		case key.Matches(msg, a.keys.Watchlist):
			return a, a.navigate(RouteWatchlist)
		case key.Matches(msg, a.keys.Account):
			return a, a.toggleAccount()
		}
	}

	return a, a.active(msg)
}

func (a *App) active(msg tea.Msg) tea.Cmd {
	switch a.location.Path {
	case RouteLogin, RouteRegister:
		return a.login.Update(msg)
	case RouteMovies:
		return a.movies.Update(msg)
	case RouteWatchlist:
		return a.watchlist.Update(msg)
	default:
		return a.chat.Update(msg)
	}
}

func (a *App) navigate(route string) tea.Cmd {
	a.router.Navigate(route)
	return a.enter(route)
}

func (a *App) enter(route string) tea.Cmd {
	a.location = ParseRoute(route)

	switch a.location.Path {
	case RouteLogin:
		return a.login.Enter(modeLogin, a.location.Expired)
	case RouteRegister:
		return a.login.Enter(modeRegister, false)
	case RouteMovies:
		return a.movies.Enter()
	case RouteWatchlist:
		return a.watchlist.Enter()
	default:
		a.location.Path = RouteChat
		return a.chat.Enter()
	}
}

func (a *App) toggleAccount() tea.Cmd {
	if !a.auth.IsAuthenticated() {
		return a.navigate(RouteLogin)
	}

	ctx, auth := a.ctx, a.auth
	return func() tea.Msg {
		auth.Logout(ctx)
		return navigateMsg{route: RouteLogin}
	}
}

func (a *App) View() string {
	var body string
	switch a.location.Path {
	case RouteLogin, RouteRegister:
		body = a.login.View()
	case RouteMovies:
		body = a.movies.View()
	case RouteWatchlist:
		body = a.watchlist.View()
	default:
		body = a.chat.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.header(),
		body,
		a.help.ShortHelpView(a.keys.bindings()),
	)
}

func (a *App) header() string {
	tabs := []struct {
		route string
		title string
	}{
		{RouteChat, "Chat"},
		{RouteMovies, "Movies"},
		{RouteWatchlist, "Watchlist"},
	}

	rendered := []string{titleStyle.Render("🎬 Movie Magic")}
	for _, tab := range tabs {
		if tab.route == a.location.Path {
			rendered = append(rendered, activeTabStyle.Render(tab.title))
			continue
		}
		rendered = append(rendered, tabStyle.Render(tab.title))
	}

	account := "guest"
	if user := a.auth.User(); user != nil {
		account = user.Email
	}
	rendered = append(rendered, mutedStyle.Render("  "+account))

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
