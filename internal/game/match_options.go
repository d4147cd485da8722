package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// MatchOption configures a Match during creation.
type MatchOption func(*matchConfig)

// matchConfig holds the optional collaborators of a match.
type matchConfig struct {
	id     string
	clock  quartz.Clock
	out    io.Writer
	logger *log.Logger
	hooks  []RoundHook
}

// RoundHook observes each resolved round
type RoundHook func(Round)

// WithID sets the match identifier used in logs and results.
// Default is empty.
func WithID(id string) MatchOption {
	return func(c *matchConfig) {
		c.id = id
	}
}

// WithClock sets the clock used for the inter-round pause.
// Default is the real clock; tests pass quartz.NewMock(t).
func WithClock(clock quartz.Clock) MatchOption {
	return func(c *matchConfig) {
		c.clock = clock
	}
}

// WithOutput sets where rules, state and round lines are printed.
// Default is io.Discard.
func WithOutput(w io.Writer) MatchOption {
	return func(c *matchConfig) {
		c.out = w
	}
}

// WithLogger sets the structured logger for match events.
func WithLogger(logger *log.Logger) MatchOption {
	return func(c *matchConfig) {
		c.logger = logger
	}
}

// WithRoundHook registers fn to be called after every round.
// Hooks run in registration order on the match goroutine.
func WithRoundHook(fn RoundHook) MatchOption {
	return func(c *matchConfig) {
		c.hooks = append(c.hooks, fn)
	}
}
