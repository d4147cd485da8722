package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DisplayStyles contains styling for match output
type DisplayStyles struct {
	Header    lipgloss.Style
	Rule      lipgloss.Style
	Label     lipgloss.Style
	Move      lipgloss.Style
	Winner    lipgloss.Style
	Draw      lipgloss.Style
	Warning   lipgloss.Style
	Separator lipgloss.Style
}

// NewDisplayStyles creates styles bound to renderer r
func NewDisplayStyles(r *lipgloss.Renderer) *DisplayStyles {
	return &DisplayStyles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		Rule: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Move: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")).
			Bold(true),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Draw: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Separator: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// StateView is a snapshot of the match used for the state block
type StateView struct {
	FirstName   string
	FirstScore  int
	SecondName  string
	SecondScore int
	TargetScore int
	Round       int
	MaxRounds   int
	Sleep       int
	Winner      string
}

// Display renders match progress to a writer
type Display struct {
	w      io.Writer
	styles *DisplayStyles
}

// NewDisplay creates a display for w. Colours are dropped when w is not a
// terminal or NO_COLOR is set.
func NewDisplay(w io.Writer) *Display {
	r := lipgloss.NewRenderer(w)
	if termenv.EnvNoColor() {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Display{w: w, styles: NewDisplayStyles(r)}
}

// Rules prints the winning conditions
func (d *Display) Rules() {
	fmt.Fprintln(d.w, d.styles.Header.Render("Paper-Rock-Scissors"))
	fmt.Fprintln(d.w, "Current winning conditions of the Paper-Rock-Scissors:")
	for _, m := range []Move{Paper, Rock, Scissors} {
		fmt.Fprintln(d.w, d.styles.Rule.Render(fmt.Sprintf("%s beats (%s) %s",
			capitalize(m), m.Verb(), strings.ToLower(beatenBy(m).String()))))
	}
	fmt.Fprintln(d.w, "Game ends when there is a winner (score reaches the target score) "+
		"or total rounds reach the maximum.")
	fmt.Fprintln(d.w, d.styles.Label.Render("Press ctrl + C to quit the game."))
}

// State prints the state block
func (d *Display) State(v StateView) {
	label := d.styles.Label.Render
	fmt.Fprintln(d.w, d.styles.Separator.Render(strings.Repeat("-", 32)))
	fmt.Fprintln(d.w, "Current state of the game:")
	fmt.Fprintf(d.w, "%s %d\n", label(v.FirstName+" score:"), v.FirstScore)
	fmt.Fprintf(d.w, "%s %d\n", label(v.SecondName+" score:"), v.SecondScore)
	fmt.Fprintf(d.w, "%s %d\n", label("Target Score:"), v.TargetScore)
	fmt.Fprintf(d.w, "%s %d\n", label("Current Round:"), v.Round)
	fmt.Fprintf(d.w, "%s %d\n", label("Maximum Rounds:"), v.MaxRounds)
	fmt.Fprintf(d.w, "%s %d\n", label("Sleep:"), v.Sleep)
	winner := v.Winner
	if winner == "" {
		winner = "None"
	}
	fmt.Fprintf(d.w, "%s %s\n", label("Winner:"), winner)
}

// Played announces a role's move
func (d *Display) Played(name string, m Move) {
	fmt.Fprintf(d.w, "%s's move: %s\n", name, d.styles.Move.Render(m.String()))
}

// Deciding announces that a role is about to draw its move
func (d *Display) Deciding(name string) {
	fmt.Fprintf(d.w, "\n%s is making a decision...\n", name)
}

// Versus prints both moves of the round
func (d *Display) Versus(first, second Move) {
	fmt.Fprintf(d.w, "Current round is: %s vs %s\n",
		d.styles.Move.Render(first.String()), d.styles.Move.Render(second.String()))
}

// RoundWinner announces the winner of a single round
func (d *Display) RoundWinner(name string) {
	fmt.Fprintf(d.w, "Winner of the current round is: %s\n\n", d.styles.Winner.Render(name))
}

// RoundDraw announces a drawn round
func (d *Display) RoundDraw() {
	fmt.Fprintln(d.w, d.styles.Draw.Render("It's a draw for this round"))
	fmt.Fprintln(d.w)
}

// MatchWinner announces the winner of the match
func (d *Display) MatchWinner(name string) {
	fmt.Fprintf(d.w, "Winner of the game: %s\n\n", d.styles.Winner.Render(name))
}

// Banner prints a framed title line, used for mode headers
func (d *Display) Banner(title string) {
	fmt.Fprintln(d.w)
	fmt.Fprintln(d.w, d.styles.Header.Render(title))
}

func beatenBy(m Move) Move {
	for _, other := range Moves {
		if m.Beats(other) {
			return other
		}
	}
	return 0
}

func capitalize(m Move) string {
	s := strings.ToLower(m.String())
	return strings.ToUpper(s[:1]) + s[1:]
}
