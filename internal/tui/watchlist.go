package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/s21platform/moviemagic/internal/model"
)

const signInForWatchlist = "Sign in to use your watchlist"

type watchlistView struct {
	ctx       context.Context
	watchlist WatchlistManager

	items   []model.WatchlistItem
	cursor  int
	loading bool
	status  string
	notice  string

	width  int
	height int
}

func newWatchlistView(ctx context.Context, watchlist WatchlistManager) *watchlistView {
	return &watchlistView{
		ctx:       ctx,
		watchlist: watchlist,
	}
}

func (v *watchlistView) Enter() tea.Cmd {
	v.notice = ""
	if !v.watchlist.Enabled() {
		v.items = nil
		v.status = signInForWatchlist
		return nil
	}
	v.status = ""
	return v.load()
}

func (v *watchlistView) SetSize(width, height int) {
	v.width, v.height = width, height
}

func (v *watchlistView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case watchlistMsg:
		v.loading = false
		if msg.err != nil {
			v.status = msg.err.Error()
			return nil
		}
		v.status = ""
		v.items = msg.items
		if v.cursor >= len(v.items) {
			v.cursor = len(v.items) - 1
		}
		if v.cursor < 0 {
			v.cursor = 0
		}
		return nil

	case watchlistUpdatedMsg:
		if msg.err != nil {
			v.status = msg.err.Error()
			return nil
		}
		v.notice = msg.status
		return v.load()

	case tea.KeyMsg:
		v.notice = ""
		if !v.watchlist.Enabled() {
			return nil
		}
		return v.updateList(msg)
	}

	return nil
}

func (v *watchlistView) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keyReload):
		return v.load()
	case key.Matches(msg, keyUp):
		if v.cursor > 0 {
			v.cursor--
		}
		return nil
	case key.Matches(msg, keyDown):
		if v.cursor < len(v.items)-1 {
			v.cursor++
		}
		return nil
	}

	if len(v.items) == 0 {
		return nil
	}
	item := v.items[v.cursor]

	switch {
	case key.Matches(msg, keyWatched), key.Matches(msg, keyEnter):
		return v.setWatched(item, !item.Watched)
	case key.Matches(msg, keyRate):
		rating, err := strconv.Atoi(msg.String())
		if err != nil {
			return nil
		}
		return v.rate(item, rating)
	case key.Matches(msg, keyDelete):
		return v.remove(item)
	}
	return nil
}

func (v *watchlistView) load() tea.Cmd {
	v.loading = true

	ctx, watchlist := v.ctx, v.watchlist
	return func() tea.Msg {
		items, err := watchlist.List(ctx)
		return watchlistMsg{items: items, err: err}
	}
}

func (v *watchlistView) setWatched(item model.WatchlistItem, watched bool) tea.Cmd {
	status := fmt.Sprintf("Marked %s as watched", item.MovieTitle)
	if !watched {
		status = fmt.Sprintf("Marked %s as not watched", item.MovieTitle)
	}

	ctx, watchlist := v.ctx, v.watchlist
	return func() tea.Msg {
		_, err := watchlist.SetWatched(ctx, item.ID, watched)
		return watchlistUpdatedMsg{status: status, err: err}
	}
}

func (v *watchlistView) rate(item model.WatchlistItem, rating int) tea.Cmd {
	ctx, watchlist := v.ctx, v.watchlist
	return func() tea.Msg {
		_, err := watchlist.Rate(ctx, item.ID, rating)
		return watchlistUpdatedMsg{status: fmt.Sprintf("Rated %s %d/5", item.MovieTitle, rating), err: err}
	}
}

func (v *watchlistView) remove(item model.WatchlistItem) tea.Cmd {
	ctx, watchlist := v.ctx, v.watchlist
	return func() tea.Msg {
		return watchlistUpdatedMsg{
			status: fmt.Sprintf("Removed %s from your watchlist", item.MovieTitle),
			err:    watchlist.Remove(ctx, item.ID),
		}
	}
}

func (v *watchlistView) View() string {
	sections := []string{titleStyle.Render("My watchlist"), ""}

	switch {
	case !v.watchlist.Enabled():
	case len(v.items) == 0 && !v.loading:
		sections = append(sections, mutedStyle.Render("Your watchlist is empty. Press f2 to browse movies."))
	default:
		for i, item := range v.items {
			line := watchlistLine(item)
			if i == v.cursor {
				line = selectedStyle.Render("› " + line)
			} else {
				line = "  " + line
			}
			sections = append(sections, line)
		}
		sections = append(sections, "", mutedStyle.Render("space toggle watched • 1-5 rate • d remove • r reload"))
	}

	switch {
	case v.loading:
		sections = append(sections, mutedStyle.Render("Loading…"))
	case v.status != "":
		sections = append(sections, errorStyle.Render(v.status))
	case v.notice != "":
		sections = append(sections, selectedStyle.Render(v.notice))
	}

	return lipgloss.NewStyle().
		Padding(0, 2).
		MaxHeight(v.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func watchlistLine(item model.WatchlistItem) string {
	mark := "[ ]"
	if item.Watched {
		mark = "[x]"
	}

	stars := mutedStyle.Render("not rated")
	if item.Rating != nil && *item.Rating >= 0 && *item.Rating <= 5 {
		stars = ratingStyle.Render(strings.Repeat("★", *item.Rating) + strings.Repeat("☆", 5-*item.Rating))
	}

	return fmt.Sprintf("%s %s  %s", mark, item.MovieTitle, stars)
}
