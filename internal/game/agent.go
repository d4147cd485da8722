package game

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidName is returned when a role is constructed without a usable name
var ErrInvalidName = errors.New("role name must be non-empty text")

// Role represents any participant (human or computer) that produces a move
// each round. Roles do not know about the match they are playing in; the
// match owns round and score bookkeeping and calls AddPoint on the winner.
type Role interface {
	Name() string
	Score() int
	AddPoint()

	// Move returns the move for the current round. Human roles block until
	// a valid selection is made; an error means the match cannot continue.
	Move(ctx context.Context) (Move, error)
}

// Profile is the unvalidated identity of a role
type Profile struct {
	Name  string
	Score int
}

// Validate checks the profile. A blank name is fatal; a negative score is
// reset to zero and reported as a notice.
func (p Profile) Validate() (Profile, []Notice, error) {
	if strings.TrimSpace(p.Name) == "" {
		return p, nil, ErrInvalidName
	}

	var notices []Notice
	if p.Score < 0 {
		notices = append(notices, newNotice("score", p.Score, 0, "score must be a non-negative integer"))
		p.Score = 0
	}
	return p, notices, nil
}

// Seat holds the name and score shared by every role implementation.
// Embed it to satisfy the bookkeeping half of Role.
type Seat struct {
	name  string
	score int
}

// NewSeat validates p and returns a seat for it
func NewSeat(p Profile) (Seat, []Notice, error) {
	p, notices, err := p.Validate()
	if err != nil {
		return Seat{}, nil, err
	}
	return Seat{name: p.Name, score: p.Score}, notices, nil
}

func (s *Seat) Name() string { return s.name }

func (s *Seat) Score() int { return s.score }

// AddPoint increments the score by one
func (s *Seat) AddPoint() { s.score++ }
