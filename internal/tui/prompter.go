package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/yehuihe/paper-rock-scissors/internal/game"
)

// ErrCancelled is returned when the player quits the picker
var ErrCancelled = errors.New("move selection cancelled")

// Prompter asks for moves with an interactive picker. It satisfies
// game.Prompter and can replace the line-based console prompter.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	logger *log.Logger
}

// NewPrompter creates a picker-based prompter reading keys from in
func NewPrompter(in io.Reader, out io.Writer, logger *log.Logger) *Prompter {
	return &Prompter{
		in:     in,
		out:    out,
		logger: logger.WithPrefix("tui"),
	}
}

// Prompt runs the picker until a move is chosen
func (p *Prompter) Prompt(ctx context.Context, name string) (game.Move, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	picker := NewPicker(name)
	prog := tea.NewProgram(picker,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithoutSignalHandler(),
	)

	final, err := prog.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, fmt.Errorf("move picker: %w", err)
	}

	picked, ok := final.(*Picker)
	if !ok {
		return 0, fmt.Errorf("move picker returned %T", final)
	}
	if picked.Cancelled() {
		return 0, ErrCancelled
	}
	move, ok := picked.Chosen()
	if !ok {
		return 0, ErrCancelled
	}

	p.logger.Debug("Move picked", "name", name, "move", move)
	return move, nil
}
