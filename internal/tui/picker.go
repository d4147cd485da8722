package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yehuihe/paper-rock-scissors/internal/game"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Choose   key.Binding
	Rock     key.Binding
	Paper    key.Binding
	Scissors key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rock, k.Paper, k.Scissors},
		{k.Up, k.Down, k.Choose, k.Quit},
	}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "play"),
	),
	Rock: key.NewBinding(
		key.WithKeys("1", "r"),
		key.WithHelp("1/r", "rock"),
	),
	Paper: key.NewBinding(
		key.WithKeys("2", "p"),
		key.WithHelp("2/p", "paper"),
	),
	Scissors: key.NewBinding(
		key.WithKeys("3", "s"),
		key.WithHelp("3/s", "scissors"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// Picker is a bubbletea model that asks one player for one move
type Picker struct {
	name      string
	cursor    int
	chosen    game.Move
	cancelled bool
	help      help.Model
}

// NewPicker creates a picker for the named player
func NewPicker(name string) *Picker {
	return &Picker{name: name, help: help.New()}
}

// Chosen returns the selected move, or false if the picker was cancelled
// or has not finished.
func (p *Picker) Chosen() (game.Move, bool) {
	return p.chosen, p.chosen.Valid()
}

// Cancelled reports whether the player quit instead of choosing
func (p *Picker) Cancelled() bool { return p.cancelled }

func (p *Picker) Init() tea.Cmd { return nil }

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		p.cancelled = true
		return p, tea.Quit
	case key.Matches(keyMsg, keys.Up):
		p.cursor = (p.cursor + len(game.Moves) - 1) % len(game.Moves)
	case key.Matches(keyMsg, keys.Down):
		p.cursor = (p.cursor + 1) % len(game.Moves)
	case key.Matches(keyMsg, keys.Choose):
		return p.choose(game.Moves[p.cursor])
	case key.Matches(keyMsg, keys.Rock):
		return p.choose(game.Rock)
	case key.Matches(keyMsg, keys.Paper):
		return p.choose(game.Paper)
	case key.Matches(keyMsg, keys.Scissors):
		return p.choose(game.Scissors)
	}
	return p, nil
}

func (p *Picker) choose(m game.Move) (tea.Model, tea.Cmd) {
	p.chosen = m
	p.cursor = m.Key() - 1
	return p, tea.Quit
}

func (p *Picker) View() string {
	if p.chosen.Valid() || p.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%s's turn", p.name)))
	b.WriteString("\n\n")
	for i, m := range game.Moves {
		line := fmt.Sprintf("%s %s", KeyStyle.Render(fmt.Sprintf("%d.", m.Key())), m)
		if i == p.cursor {
			b.WriteString(SelectedStyle.Render("> " + line))
		} else {
			b.WriteString(ItemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(p.help.View(keys)))
	b.WriteString("\n")
	return b.String()
}
