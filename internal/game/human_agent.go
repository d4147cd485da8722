package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// ErrInputClosed is returned when the input source ends before a move is chosen
var ErrInputClosed = errors.New("input closed before a move was chosen")

// Prompter asks a human for a move. Implementations re-prompt on invalid
// input and only return an error when no move can be obtained at all.
type Prompter interface {
	Prompt(ctx context.Context, name string) (Move, error)
}

// HumanRole represents a role whose moves come from a person
type HumanRole struct {
	Seat
	prompter Prompter
}

// NewHumanRole creates a human role with a prompter for its moves
func NewHumanRole(p Profile, prompter Prompter) (*HumanRole, []Notice, error) {
	if prompter == nil {
		panic("prompter is required for a human role")
	}
	seat, notices, err := NewSeat(p)
	if err != nil {
		return nil, nil, err
	}
	return &HumanRole{Seat: seat, prompter: prompter}, notices, nil
}

// Move prompts the human for this round's move
func (h *HumanRole) Move(ctx context.Context) (Move, error) {
	return h.prompter.Prompt(ctx, h.Name())
}

// ConsolePrompter reads numbered selections line by line
type ConsolePrompter struct {
	out    io.Writer
	in     io.Reader
	prompt string

	once      sync.Once
	closeOnce sync.Once
	lines     chan string
	done      chan struct{}
	stopped   chan struct{}
	err       error
}

// NewConsolePrompter creates a prompter reading from in and writing menus to out
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		in:      in,
		out:     out,
		prompt:  "Choose a move for this round: ",
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Close stops the line reader. Prompts after Close return ErrInputClosed.
// A read already blocked on the input is not interrupted.
func (p *ConsolePrompter) Close() error {
	p.closeOnce.Do(func() { close(p.done) })
	return nil
}

// Prompt shows the move menu and blocks until a valid key is entered.
// Non-integer and out of range input is rejected with a warning and the
// menu is shown again.
func (p *ConsolePrompter) Prompt(ctx context.Context, name string) (Move, error) {
	p.once.Do(p.startReader)

	for {
		_, _ = fmt.Fprint(p.out, moveMenu(name))
		_, _ = fmt.Fprint(p.out, p.prompt)

		var line string
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-p.done:
			return 0, ErrInputClosed
		case l, ok := <-p.lines:
			if !ok {
				if p.err != nil {
					return 0, fmt.Errorf("reading move: %w", p.err)
				}
				return 0, ErrInputClosed
			}
			line = l
		}

		key, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			p.warnInvalid()
			continue
		}
		move, err := MoveFromKey(key)
		if err != nil {
			p.warnInvalid()
			continue
		}
		return move, nil
	}
}

func (p *ConsolePrompter) warnInvalid() {
	_, _ = fmt.Fprintf(p.out, "Warning: Invalid input. Please enter an integer from 1 to %d\n", len(Moves))
}

// startReader pumps lines from the input on a single goroutine so a pending
// read never blocks cancellation of the prompt.
func (p *ConsolePrompter) startReader() {
	p.lines = make(chan string)
	go func() {
		defer close(p.stopped)
		defer close(p.lines)
		scanner := bufio.NewScanner(p.in)
		for scanner.Scan() {
			select {
			case p.lines <- scanner.Text():
			case <-p.done:
				return
			}
		}
		p.err = scanner.Err()
	}()
}

func moveMenu(name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s's turn. Choose current round move within the following:\n", name)
	for _, m := range Moves {
		fmt.Fprintf(&sb, "%d. %s\n", m.Key(), m)
	}
	return sb.String()
}
