package game

import (
	"errors"
	"fmt"
)

// Move is one of the three hand shapes
type Move int

const (
	Rock Move = iota + 1
	Paper
	Scissors
)

// Moves lists every move in selection-key order (1, 2, 3)
var Moves = []Move{Rock, Paper, Scissors}

// ErrInvalidMove is returned when a selection key does not map to a move
var ErrInvalidMove = errors.New("invalid move")

func (m Move) String() string {
	switch m {
	case Rock:
		return "ROCK"
	case Paper:
		return "PAPER"
	case Scissors:
		return "SCISSORS"
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// Key returns the integer a human types to select this move
func (m Move) Key() int {
	return int(m)
}

// Valid reports whether m is one of Rock, Paper or Scissors
func (m Move) Valid() bool {
	return m >= Rock && m <= Scissors
}

// MoveFromKey maps a selection key (1..3) to its move
func MoveFromKey(key int) (Move, error) {
	m := Move(key)
	if !m.Valid() {
		return 0, fmt.Errorf("%w: key %d, want 1 to %d", ErrInvalidMove, key, len(Moves))
	}
	return m, nil
}

// Beats reports whether m defeats other.
func (m Move) Beats(other Move) bool {
	switch m {
	case Paper:
		return other == Rock
	case Rock:
		return other == Scissors
	case Scissors:
		return other == Paper
	}
	return false
}

// Verb describes how m defeats the move it beats
func (m Move) Verb() string {
	switch m {
	case Paper:
		return "wraps"
	case Rock:
		return "blunts"
	case Scissors:
		return "cuts"
	}
	return ""
}

// Outcome is the result of a round from the first role's point of view
type Outcome int

const (
	Win Outcome = iota + 1
	Lose
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "WIN"
	case Lose:
		return "LOSE"
	case Draw:
		return "DRAW"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Resolve compares two moves and returns the outcome for first. It panics
// if either move is not valid; callers check moves from roles first.
func Resolve(first, second Move) Outcome {
	switch {
	case !first.Valid() || !second.Valid():
		panic(fmt.Sprintf("game: cannot resolve %s against %s", first, second))
	case first == second:
		return Draw
	case first.Beats(second):
		return Win
	case second.Beats(first):
		return Lose
	}
	panic(fmt.Sprintf("game: no rule for %s against %s", first, second))
}
