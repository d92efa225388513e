package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/s21platform/moviemagic/internal/model"
	"github.com/s21platform/moviemagic/internal/pkg/format"
)

const overviewListLimit = 5

var feedTabs = []struct {
	feed  model.MovieFeed
	title string
}{
	{feed: model.FeedPopular, title: "Popular"},
	{feed: model.FeedTopRated, title: "Top rated"},
	{feed: model.FeedUpcoming, title: "Upcoming"},
}

type moviesView struct {
	ctx       context.Context
	movies    MovieBrowser
	watchlist WatchlistManager

	tab        int
	page       int
	totalPages int
	title      string
	results    []model.MovieSummary
	cursor     int

	search    textinput.Model
	searching bool
	query     string

	overview *model.MovieOverview
	loaded   bool
	loading  bool
	status   string
	notice   string

	width  int
	height int
}

func newMoviesView(ctx context.Context, movies MovieBrowser, watchlist WatchlistManager) *moviesView {
	search := textinput.New()
	search.Placeholder = "Search movies (3+ characters)"
	search.Prompt = "/ "
	search.CharLimit = 100

	return &moviesView{
		ctx:       ctx,
		movies:    movies,
		watchlist: watchlist,
		page:      1,
		search:    search,
	}
}

func (v *moviesView) Enter() tea.Cmd {
	if v.loaded {
		return nil
	}
	return v.loadFeed(1)
}

func (v *moviesView) SetSize(width, height int) {
	v.width, v.height = width, height
	v.search.Width = width - 6
}

func (v *moviesView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case moviesMsg:
		v.loading = false
		if msg.err != nil {
			v.status = msg.err.Error()
			return nil
		}
		if msg.movies == nil {
			msg.movies = &model.PaginatedMovies{Page: 1}
		}
		v.loaded = true
		v.status = ""
		v.title = msg.title
		v.results = msg.movies.Results
		v.page = msg.movies.Page
		v.totalPages = msg.movies.TotalPages
		v.cursor = 0
		return nil

	case overviewMsg:
		v.loading = false
		if msg.err != nil {
			v.status = msg.err.Error()
			return nil
		}
		v.status = ""
		v.overview = msg.overview
		return nil

	case savedMsg:
		if msg.err != nil {
			v.status = msg.err.Error()
			return nil
		}
		v.status = ""
		v.notice = fmt.Sprintf("Added %s to your watchlist", msg.title)
		return nil

	case tea.KeyMsg:
		v.notice = ""
		if v.searching {
			return v.updateSearch(msg)
		}
		if v.overview != nil {
			return v.updateOverview(msg)
		}
		return v.updateList(msg)
	}

	return nil
}

func (v *moviesView) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		v.searching = false
		v.search.Blur()
		return nil
	case tea.KeyEnter:
		v.searching = false
		v.search.Blur()
		return v.runSearch(v.search.Value())
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	return cmd
}

func (v *moviesView) updateOverview(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keyBack), msg.Type == tea.KeyBackspace:
		v.overview = nil
		v.status = ""
	case key.Matches(msg, keySave):
		details := v.overview.Details
		return v.save(details)
	}
	return nil
}

func (v *moviesView) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keySearch):
		v.searching = true
		return v.search.Focus()
	case key.Matches(msg, keyBack):
		if v.query != "" {
			v.query = ""
			v.search.Reset()
			return v.loadFeed(1)
		}
	case key.Matches(msg, keyLeft):
		v.tab = (v.tab + len(feedTabs) - 1) % len(feedTabs)
		v.query = ""
		return v.loadFeed(1)
	case key.Matches(msg, keyRight):
		v.tab = (v.tab + 1) % len(feedTabs)
		v.query = ""
		return v.loadFeed(1)
	case key.Matches(msg, keyNextPage):
		if v.query == "" && v.page < v.totalPages {
			return v.loadFeed(v.page + 1)
		}
	case key.Matches(msg, keyPrevPage):
		if v.query == "" && v.page > 1 {
			return v.loadFeed(v.page - 1)
		}
	case key.Matches(msg, keyUp):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, keyDown):
		if v.cursor < len(v.results)-1 {
			v.cursor++
		}
	case key.Matches(msg, keySave):
		if len(v.results) > 0 {
			return v.save(v.results[v.cursor])
		}
	case key.Matches(msg, keyEnter):
		if len(v.results) > 0 {
			return v.loadOverview(v.results[v.cursor].ID)
		}
	}
	return nil
}

func (v *moviesView) loadFeed(page int) tea.Cmd {
	tab := feedTabs[v.tab]
	v.loading = true

	ctx, movies := v.ctx, v.movies
	return func() tea.Msg {
		result, err := movies.Feed(ctx, tab.feed, page)
		return moviesMsg{title: tab.title, movies: result, err: err}
	}
}

func (v *moviesView) runSearch(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	v.query = text
	v.loading = true

	ctx, movies := v.ctx, v.movies
	return func() tea.Msg {
		result, err := movies.Search(ctx, text)
		return moviesMsg{title: fmt.Sprintf("Results for %q", text), movies: result, err: err}
	}
}

func (v *moviesView) loadOverview(movieID int64) tea.Cmd {
	v.loading = true

	ctx, movies := v.ctx, v.movies
	return func() tea.Msg {
		overview, err := movies.Overview(ctx, movieID)
		return overviewMsg{overview: overview, err: err}
	}
}

func (v *moviesView) save(movie model.MovieSummary) tea.Cmd {
	switch {
	case !v.watchlist.Enabled():
		v.status = "Sign in to save movies to your watchlist"
		return nil
	case v.watchlist.Contains(movie.ID):
		v.status = fmt.Sprintf("%s is already in your watchlist", movie.Title)
		return nil
	}

	req := model.WatchlistRequest{
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
		PosterPath: movie.PosterPath,
	}

	ctx, watchlist := v.ctx, v.watchlist
	return func() tea.Msg {
		_, err := watchlist.Add(ctx, req)
		return savedMsg{title: movie.Title, err: err}
	}
}

func (v *moviesView) View() string {
	var sections []string

	if v.overview != nil {
		sections = append(sections, renderOverview(v.overview, v.width-4))
		sections = append(sections, "", mutedStyle.Render("w add to watchlist • esc back"))
	} else {
		sections = append(sections, v.renderTabs(), "")
		if v.searching || v.query != "" {
			sections = append(sections, v.search.View(), "")
		}
		sections = append(sections, v.renderResults())
		sections = append(sections, "", mutedStyle.Render("←/→ feed • [/] page • / search • enter details • w add to watchlist"))
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

func (v *moviesView) renderTabs() string {
	tabs := make([]string, 0, len(feedTabs))
	for i, tab := range feedTabs {
		if i == v.tab && v.query == "" {
			tabs = append(tabs, activeTabStyle.Render(tab.title))
			continue
		}
		tabs = append(tabs, tabStyle.Render(tab.title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (v *moviesView) renderResults() string {
	if len(v.results) == 0 {
		if v.loading {
			return ""
		}
		return mutedStyle.Render("No movies found")
	}

	lines := make([]string, 0, len(v.results)+1)
	header := v.title
	if v.query == "" && v.totalPages > 1 {
		header = fmt.Sprintf("%s · page %d of %d", v.title, v.page, v.totalPages)
	}
	lines = append(lines, titleStyle.Render(header))

	for i, movie := range v.results {
		line := movieLine(movie)
		if v.watchlist.Contains(movie.ID) {
			line += " " + mutedStyle.Render("[saved]")
		}
		if i == v.cursor {
			line = selectedStyle.Render("› " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func movieLine(movie model.MovieSummary) string {
	return fmt.Sprintf("%s (%s) ★ %s", movie.Title, format.ReleaseYear(movie.ReleaseDate), format.Rating(movie.VoteAverage))
}

// renderOverview lays out the detail page of a movie.
func renderOverview(overview *model.MovieOverview, width int) string {
	details := overview.Details
	if width < 20 {
		width = 80
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s (%s)", details.Title, format.ReleaseYear(details.ReleaseDate))),
		ratingStyle.Render("★ "+format.Rating(details.VoteAverage)) + "  " + format.Runtime(details.Runtime),
	}

	if len(details.Genres) > 0 {
		names := make([]string, 0, len(details.Genres))
		for _, genre := range details.Genres {
			names = append(names, genre.Name)
		}
		lines = append(lines, mutedStyle.Render(strings.Join(names, ", ")))
	}

	if details.Overview != "" {
		lines = append(lines, "", lipgloss.NewStyle().Width(width).Render(details.Overview))
	}

	var directors []string
	for _, crew := range overview.Credits.Crew {
		if crew.Job == "Director" {
			directors = append(directors, crew.Name)
		}
	}
	if len(directors) > 0 {
		lines = append(lines, "", "Directed by "+strings.Join(directors, ", "))
	}

	if len(overview.Credits.Cast) > 0 {
		lines = append(lines, "", titleStyle.Render("Cast"))
		for i, cast := range overview.Credits.Cast {
			if i == overviewListLimit {
				break
			}
			line := cast.Name
			if cast.Character != "" {
				line += mutedStyle.Render(" as " + cast.Character)
			}
			lines = append(lines, "  "+line)
		}
	}

	lines = append(lines, relatedSection("Similar", overview.Similar.Results)...)
	lines = append(lines, relatedSection("Recommended", overview.Recommendations.Results)...)

	return strings.Join(lines, "\n")
}

func relatedSection(title string, movies []model.MovieSummary) []string {
	if len(movies) == 0 {
		return nil
	}

	lines := []string{"", titleStyle.Render(title)}
	for i, movie := range movies {
		if i == overviewListLimit {
			break
		}
		lines = append(lines, "  "+movieLine(movie))
	}
	return lines
}
