package tui

import "github.com/charmbracelet/bubbles/key"

type globalKeys struct {
	Quit      key.Binding
	Chat      key.Binding
	Movies    key.Binding
	Watchlist key.Binding
	Account   key.Binding
}

func newGlobalKeys() globalKeys {
	return globalKeys{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Chat:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "chat")),
		Movies:    key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "movies")),
		Watchlist: key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "watchlist")),
		Account:   key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "sign in/out")),
	}
}

func (k globalKeys) bindings() []key.Binding {
	return []key.Binding{k.Chat, k.Movies, k.Watchlist, k.Account, k.Quit}
}

var (
	keyUp       = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	keyDown     = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	keyLeft     = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev tab"))
	keyRight    = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next tab"))
	keyEnter    = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	keyBack     = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
	keyTab      = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus"))
	keyShiftTab = key.NewBinding(key.WithKeys("shift+tab"))
	keyNew      = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new chat"))
	keyDelete   = key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete"))
	keySearch   = key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search"))
	keySave     = key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "add to watchlist"))
	keyNextPage = key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next page"))
	keyPrevPage = key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev page"))
	keyWatched  = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle watched"))
	keyRate     = key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "rate"))
	keyReload   = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
	keyToggle   = key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "sign in/register"))
)
