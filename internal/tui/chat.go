package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/s21platform/moviemagic/internal/chat"
	"github.com/s21platform/moviemagic/internal/model"
	"github.com/s21platform/moviemagic/internal/pkg/format"
)

const (
	sidebarWidth = 28
	// composer line, status line
	chatChromeHeight = 2
)

type chatFocus int

const (
	focusComposer chatFocus = iota
	focusSidebar
)

type chatView struct {
	ctx       context.Context
	workspace Workspace
	session   ChatSession
	now       func() time.Time

	conversations []model.Conversation
	cursor        int
	focus         chatFocus
	status        string

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	width  int
	height int
}

func newChatView(ctx context.Context, workspace Workspace, session ChatSession) *chatView {
	input := textinput.New()
	input.Placeholder = "Ask for a movie… (enter to send, tab for conversations)"
	input.Prompt = "› "
	input.CharLimit = 2000
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = assistantLabelStyle

	return &chatView{
		ctx:       ctx,
		workspace: workspace,
		session:   session,
		now:       time.Now,
		input:     input,
		viewport:  viewport.New(0, 0),
		spinner:   s,
	}
}

func (v *chatView) Enter() tea.Cmd {
	v.refresh()
	return tea.Batch(textinput.Blink, v.spinner.Tick, v.loadConversations())
}

func (v *chatView) SetSize(width, height int) {
	v.width, v.height = width, height

	mainWidth := width - sidebarWidth - 1
	if mainWidth < 20 {
		mainWidth = 20
	}
	viewportHeight := height - chatChromeHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	v.viewport.Width = mainWidth
	v.viewport.Height = viewportHeight
	v.input.Width = mainWidth - 4

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(mainWidth-4),
	)
	if err == nil {
		v.renderer = renderer
	}

	v.refresh()
}

func (v *chatView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		if v.session.IsBusy() {
			v.refresh()
		}
		return cmd

	case conversationsMsg:
		if msg.err != nil {
			v.status = "Failed to load conversations: " + msg.err.Error()
			return nil
		}
		v.conversations = msg.conversations
		v.clampCursor()
		return nil

	case historyMsg:
		if !v.session.ApplyHistory(msg.ticket, msg.messages, msg.err) {
			return nil
		}
		if msg.err != nil {
			v.status = "Failed to load conversation: " + msg.err.Error()
		}
		v.refresh()
		return nil

	case replyMsg:
		var applied bool
		if msg.err != nil {
			applied = v.session.FailSend(msg.ticket, msg.err)
		} else {
			applied = v.session.ResolveSend(msg.ticket, msg.resp)
		}
		if !applied {
			return nil
		}
		v.refresh()
		return v.loadConversations()

	case conversationCreatedMsg:
		if msg.err != nil {
			v.status = "Failed to create conversation: " + msg.err.Error()
			return nil
		}
		v.status = ""
		v.focusComposer()
		v.refresh()
		return v.loadConversations()

	case conversationDeletedMsg:
		if msg.err != nil {
			v.status = "Failed to delete conversation: " + msg.err.Error()
			return nil
		}
		v.status = fmt.Sprintf("Deleted conversation #%d", msg.conversationID)
		v.refresh()
		return v.loadConversations()

	case tea.KeyMsg:
		if key.Matches(msg, keyTab) {
			if v.focus == focusComposer {
				v.focus = focusSidebar
				v.input.Blur()
				return nil
			}
			v.focusComposer()
			return textinput.Blink
		}

		if v.focus == focusSidebar {
			return v.updateSidebar(msg)
		}

		switch msg.Type {
		case tea.KeyEnter:
			return v.send()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			v.viewport, cmd = v.viewport.Update(msg)
			return cmd
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *chatView) updateSidebar(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keyUp):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, keyDown):
		if v.cursor < len(v.conversations)-1 {
			v.cursor++
		}
	case key.Matches(msg, keyNew):
		return v.newConversation()
	case key.Matches(msg, keyEnter):
		if len(v.conversations) == 0 {
			return nil
		}
		id := v.conversations[v.cursor].ID
		v.focusComposer()
		return tea.Batch(textinput.Blink, v.selectConversation(&id))
	case key.Matches(msg, keyDelete):
		if len(v.conversations) == 0 {
			return nil
		}
		return v.deleteConversation(v.conversations[v.cursor].ID)
	}
	return nil
}

func (v *chatView) send() tea.Cmd {
	ticket, err := v.session.BeginSend(v.input.Value())
	if err != nil {
		v.status = err.Error()
		return nil
	}

	v.input.Reset()
	v.status = ""
	v.refresh()

	ctx, session := v.ctx, v.session
	return func() tea.Msg {
		resp, err := session.Deliver(ctx, ticket)
		return replyMsg{ticket: ticket, resp: resp, err: err}
	}
}

func (v *chatView) selectConversation(conversationID *int64) tea.Cmd {
	ticket, ok := v.workspace.BeginSelect(conversationID)
	v.status = ""
	v.refresh()
	if !ok {
		return nil
	}

	ctx, session := v.ctx, v.session
	return func() tea.Msg {
		messages, err := session.FetchHistory(ctx, ticket)
		return historyMsg{ticket: ticket, messages: messages, err: err}
	}
}

func (v *chatView) newConversation() tea.Cmd {
	ctx, workspace := v.ctx, v.workspace
	return func() tea.Msg {
		conversation, err := workspace.NewConversation(ctx)
		return conversationCreatedMsg{conversation: conversation, err: err}
	}
}

func (v *chatView) deleteConversation(conversationID int64) tea.Cmd {
	ctx, workspace := v.ctx, v.workspace
	return func() tea.Msg {
		return conversationDeletedMsg{
			conversationID: conversationID,
			err:            workspace.DeleteConversation(ctx, conversationID),
		}
	}
}

func (v *chatView) loadConversations() tea.Cmd {
	ctx, workspace := v.ctx, v.workspace
	return func() tea.Msg {
		conversations, err := workspace.Conversations(ctx)
		return conversationsMsg{conversations: conversations, err: err}
	}
}

func (v *chatView) focusComposer() {
	v.focus = focusComposer
	v.input.Focus()
}

func (v *chatView) clampCursor() {
	if v.cursor >= len(v.conversations) {
		v.cursor = len(v.conversations) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *chatView) refresh() {
	v.viewport.SetContent(v.renderMessages())
	v.viewport.GotoBottom()
}

func (v *chatView) renderMessages() string {
	width := v.viewport.Width - 2
	if width < 20 {
		width = 60
	}

	var b strings.Builder
	for _, msg := range v.session.Messages() {
		switch {
		case msg.Role == model.RoleUser:
			b.WriteString(userLabelStyle.Render("You"))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Width(width).Render(msg.Content))
			b.WriteString("\n\n")
		case msg.Pending:
			b.WriteString(assistantLabelStyle.Render("Movie Magic"))
			b.WriteString("\n")
			b.WriteString(v.spinner.View() + " " + mutedStyle.Render(chat.ThinkingMarker))
			b.WriteString("\n\n")
		default:
			b.WriteString(assistantLabelStyle.Render("Movie Magic"))
			b.WriteString("\n")
			b.WriteString(v.renderMarkdown(msg.Content))
			for _, movie := range msg.Movies {
				b.WriteString(renderMovieCard(movie, width))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (v *chatView) renderMarkdown(content string) string {
	if v.renderer == nil {
		return content + "\n"
	}
	out, err := v.renderer.Render(content)
	if err != nil {
		return content + "\n"
	}
	return strings.TrimLeft(out, "\n")
}

// renderMovieCard draws one recommendation attached to an assistant reply.
func renderMovieCard(movie model.MovieRecommendation, width int) string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s (%s)", movie.Title, format.ReleaseYear(movie.ReleaseDate))) +
			"  " + ratingStyle.Render("★ "+format.Rating(movie.VoteAverage)),
	}
	if movie.Reason != "" {
		lines = append(lines, movie.Reason)
	}
	if movie.Overview != "" {
		lines = append(lines, mutedStyle.Render(movie.Overview))
	}
	if movie.TrailerKey != nil && *movie.TrailerKey != "" {
		lines = append(lines, mutedStyle.Render("Trailer: https://www.youtube.com/watch?v="+*movie.TrailerKey))
	}
	if len(movie.Thrillers) > 0 {
		titles := make([]string, 0, len(movie.Thrillers))
		for _, related := range movie.Thrillers {
			titles = append(titles, related.Title)
		}
		lines = append(lines, "If you like thrillers: "+strings.Join(titles, ", "))
	}

	return cardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (v *chatView) renderSidebar() string {
	now := v.now()
	selected := v.workspace.Selected()

	lines := []string{titleStyle.Render("Conversations"), ""}
	if len(v.conversations) == 0 {
		lines = append(lines, mutedStyle.Render("No conversations yet"))
	}

	for i, conversation := range v.conversations {
		label := fmt.Sprintf("Chat #%d", conversation.ID)
		when := format.RelativeTime(conversation.LastMessageAt.Time, now)

		prefix := "  "
		if v.focus == focusSidebar && i == v.cursor {
			prefix = "› "
		}

		line := prefix + label
		if selected != nil && *selected == conversation.ID {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line, "  "+mutedStyle.Render(when))
	}

	if v.focus == focusSidebar {
		lines = append(lines, "", mutedStyle.Render("enter open • n new • d delete"))
	}

	return sidebarStyle.
		Width(sidebarWidth).
		Height(v.height).
		Render(strings.Join(lines, "\n"))
}

func (v *chatView) statusLine() string {
	switch {
	case v.status != "":
		return errorStyle.Render(v.status)
	case v.session.Err() != nil:
		return errorStyle.Render(v.session.Err().Error())
	case v.session.IsBusy():
		return mutedStyle.Render(v.spinner.View() + " waiting for a reply")
	}
	return ""
}

func (v *chatView) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		v.viewport.View(),
		v.input.View(),
		v.statusLine(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, v.renderSidebar(), body)
}
