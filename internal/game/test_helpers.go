package game

import (
	"context"
	"fmt"
)

// ScriptedRole plays a fixed sequence of moves. It is intended for tests
// that need a fully predictable opponent.
type ScriptedRole struct {
	Seat
	moves []Move
	next  int
	loop  bool
}

// NewScriptedRole creates a role that plays moves in order. When loop is
// true the sequence repeats; otherwise running out of moves is an error.
func NewScriptedRole(name string, loop bool, moves ...Move) *ScriptedRole {
	seat, _, err := NewSeat(Profile{Name: name})
	if err != nil {
		panic(err)
	}
	return &ScriptedRole{Seat: seat, moves: moves, loop: loop}
}

// Move returns the next scripted move
func (s *ScriptedRole) Move(ctx context.Context) (Move, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.next >= len(s.moves) {
		if !s.loop || len(s.moves) == 0 {
			return 0, fmt.Errorf("%s: script exhausted after %d moves", s.Name(), s.next)
		}
		s.next = 0
	}
	m := s.moves[s.next]
	s.next++
	return m, nil
}

// MovesFromKeys converts selection keys to moves, panicking on bad keys
func MovesFromKeys(keys ...int) []Move {
	moves := make([]Move, len(keys))
	for i, k := range keys {
		m, err := MoveFromKey(k)
		if err != nil {
			panic(err)
		}
		moves[i] = m
	}
	return moves
}
