package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// ErrMatchOver is returned when Play is called on a decided match
var ErrMatchOver = errors.New("match already has a winner")

// DecidedBy records how a match ended
type DecidedBy int

const (
	InProgress DecidedBy = iota
	ByScore
	ByCap
)

func (d DecidedBy) String() string {
	switch d {
	case InProgress:
		return "in-progress"
	case ByScore:
		return "score"
	case ByCap:
		return "cap"
	}
	return fmt.Sprintf("DecidedBy(%d)", int(d))
}

// Round is the record of a single resolved round
type Round struct {
	Number      int
	FirstMove   Move
	SecondMove  Move
	Outcome     Outcome
	FirstScore  int
	SecondScore int
}

// Result summarises a finished match
type Result struct {
	ID          string
	Winner      string
	FirstWon    bool
	FirstScore  int
	SecondScore int
	Rounds      int
	Draws       int
	DecidedBy   DecidedBy
}

// Match drives two roles through rounds until one reaches the target score
// or the round cap is hit. A match is single-use and not safe for
// concurrent use; run independent matches on separate goroutines instead.
type Match struct {
	id       string
	first    Role
	second   Role
	settings Settings

	round     int
	draws     int
	winner    Role
	decidedBy DecidedBy

	validated bool
	notices   []Notice

	clock   quartz.Clock
	display *Display
	logger  *log.Logger
	hooks   []RoundHook
}

// NewMatch creates a match between first and second. Settings are validated
// when play starts (or when Validate is called), not here.
func NewMatch(first, second Role, settings Settings, opts ...MatchOption) *Match {
	if first == nil || second == nil {
		panic("two roles are required for a match")
	}

	cfg := &matchConfig{
		out: io.Discard,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	return &Match{
		id:       cfg.id,
		first:    first,
		second:   second,
		settings: settings,
		clock:    cfg.clock,
		display:  NewDisplay(cfg.out),
		logger:   cfg.logger.WithPrefix("match"),
		hooks:    cfg.hooks,
	}
}

// Validate corrects the match settings once and returns the notices raised.
// Later calls return the same notices without validating again.
func (m *Match) Validate() []Notice {
	if m.validated {
		return m.notices
	}
	m.settings, m.notices = m.settings.Validate()
	m.validated = true
	LogNotices(m.logger, m.notices)
	return m.notices
}

// Play runs rounds until the match is decided and returns the result.
// Cancelling ctx aborts the match between or during moves; the partial
// state is discarded by the caller.
func (m *Match) Play(ctx context.Context) (Result, error) {
	if m.winner != nil {
		return m.Result(), ErrMatchOver
	}
	m.Validate()

	m.logger.Info("Match started",
		"id", m.id,
		"first", m.first.Name(),
		"second", m.second.Name(),
		"target", m.settings.TargetScore,
		"max_rounds", m.settings.MaxRounds)

	m.display.Rules()

	for m.winner == nil && m.round < m.settings.MaxRounds {
		if err := ctx.Err(); err != nil {
			return m.Result(), err
		}
		if m.settings.Verbosity >= 1 {
			m.display.State(m.State())
		}
		if _, err := m.playRound(ctx); err != nil {
			return m.Result(), err
		}
	}

	if m.winner == nil {
		m.decideByCap()
	}

	m.logger.Info("Match finished",
		"id", m.id,
		"winner", m.winner.Name(),
		"decided_by", m.decidedBy,
		"rounds", m.round)

	m.display.MatchWinner(m.winner.Name())
	m.display.State(m.State())

	return m.Result(), nil
}

func (m *Match) playRound(ctx context.Context) (Round, error) {
	verbose := m.settings.Verbosity >= 1

	firstMove, err := m.nextMove(ctx, m.first)
	if err != nil {
		return Round{}, err
	}
	if verbose {
		m.display.Played(m.first.Name(), firstMove)
		m.display.Deciding(m.second.Name())
	}

	if err := m.pause(ctx); err != nil {
		return Round{}, err
	}

	secondMove, err := m.nextMove(ctx, m.second)
	if err != nil {
		return Round{}, err
	}
	if verbose {
		m.display.Played(m.second.Name(), secondMove)
		m.display.Versus(firstMove, secondMove)
	}

	outcome := Resolve(firstMove, secondMove)
	switch outcome {
	case Win:
		m.first.AddPoint()
		if verbose {
			m.display.RoundWinner(m.first.Name())
		}
	case Lose:
		m.second.AddPoint()
		if verbose {
			m.display.RoundWinner(m.second.Name())
		}
	case Draw:
		m.draws++
		if verbose {
			m.display.RoundDraw()
		}
	}
	m.round++

	r := Round{
		Number:      m.round,
		FirstMove:   firstMove,
		SecondMove:  secondMove,
		Outcome:     outcome,
		FirstScore:  m.first.Score(),
		SecondScore: m.second.Score(),
	}
	m.logger.Debug("Round resolved",
		"id", m.id,
		"round", r.Number,
		"first_move", firstMove,
		"second_move", secondMove,
		"outcome", outcome,
		"first_score", r.FirstScore,
		"second_score", r.SecondScore)

	// Only an exact hit counts; a role seeded above the target plays on to the cap.
	switch {
	case m.first.Score() == m.settings.TargetScore:
		m.decide(m.first, ByScore)
	case m.second.Score() == m.settings.TargetScore:
		m.decide(m.second, ByScore)
	}

	for _, hook := range m.hooks {
		hook(r)
	}
	return r, nil
}

func (m *Match) nextMove(ctx context.Context, r Role) (Move, error) {
	move, err := r.Move(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s move: %w", r.Name(), err)
	}
	if !move.Valid() {
		return 0, fmt.Errorf("%s move %s: %w", r.Name(), move, ErrInvalidMove)
	}
	return move, nil
}

// decideByCap picks the strictly higher score; a tie goes to the second role.
func (m *Match) decideByCap() {
	if m.first.Score() > m.second.Score() {
		m.decide(m.first, ByCap)
		return
	}
	m.decide(m.second, ByCap)
}

func (m *Match) decide(winner Role, by DecidedBy) {
	if m.winner != nil {
		return
	}
	m.winner = winner
	m.decidedBy = by
}

func (m *Match) pause(ctx context.Context) error {
	d := m.settings.Delay()
	if d <= 0 {
		return nil
	}
	timer := m.clock.NewTimer(d, "match", "pause")
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ID returns the match identifier
func (m *Match) ID() string { return m.id }

// Round returns the number of rounds played so far
func (m *Match) Round() int { return m.round }

// Settings returns the current (possibly corrected) settings
func (m *Match) Settings() Settings { return m.settings }

// First returns the first role
func (m *Match) First() Role { return m.first }

// Second returns the second role
func (m *Match) Second() Role { return m.second }

// Winner returns the winning role, or nil while the match is in progress
func (m *Match) Winner() Role { return m.winner }

// DecidedBy reports how the match ended
func (m *Match) DecidedBy() DecidedBy { return m.decidedBy }

// State returns a snapshot for display
func (m *Match) State() StateView {
	v := StateView{
		FirstName:   m.first.Name(),
		FirstScore:  m.first.Score(),
		SecondName:  m.second.Name(),
		SecondScore: m.second.Score(),
		TargetScore: m.settings.TargetScore,
		Round:       m.round,
		MaxRounds:   m.settings.MaxRounds,
		Sleep:       m.settings.Sleep,
	}
	if m.winner != nil {
		v.Winner = m.winner.Name()
	}
	return v
}

// Result returns the summary of the match so far
func (m *Match) Result() Result {
	r := Result{
		ID:          m.id,
		FirstScore:  m.first.Score(),
		SecondScore: m.second.Score(),
		Rounds:      m.round,
		Draws:       m.draws,
		DecidedBy:   m.decidedBy,
	}
	if m.winner != nil {
		r.Winner = m.winner.Name()
		r.FirstWon = m.winner == m.first
	}
	return r
}
