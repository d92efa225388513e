package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/s21platform/moviemagic/internal/chat"
	"github.com/s21platform/moviemagic/internal/model"
)

// routeMsg is a redirect that came from outside the event loop.
type routeMsg struct {
	route string
}

// navigateMsg is a route change requested by a screen.
type navigateMsg struct {
	route string
}

func navigate(route string) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{route: route}
	}
}

type authDoneMsg struct {
	err error
}

type conversationsMsg struct {
	conversations []model.Conversation
	err           error
}

type historyMsg struct {
	ticket   chat.HistoryTicket
	messages []model.ChatMessage
	err      error
}

type replyMsg struct {
	ticket chat.SendTicket
	resp   *model.ChatResponse
	err    error
}

type conversationCreatedMsg struct {
	conversation *model.Conversation
	err          error
}

type conversationDeletedMsg struct {
	conversationID int64
	err            error
}

type moviesMsg struct {
	title  string
	movies *model.PaginatedMovies
	err    error
}

type overviewMsg struct {
	overview *model.MovieOverview
	err      error
}

type savedMsg struct {
	title string
	err   error
}

type watchlistMsg struct {
	items []model.WatchlistItem
	err   error
}

type watchlistUpdatedMsg struct {
	status string
	err    error
}
