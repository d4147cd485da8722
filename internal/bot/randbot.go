package bot

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yehuihe/paper-rock-scissors/internal/game"
	"github.com/yehuihe/paper-rock-scissors/internal/randutil"
)

// SeedMode controls how a seeded RandBot uses its seed.
type SeedMode int

const (
	// Reseed re-seeds the generator before every draw, so a seeded bot
	// plays the same move every round.
	Reseed SeedMode = iota
	// Stream seeds the generator once; successive draws vary but the
	// whole sequence is reproducible.
	Stream
)

func (m SeedMode) String() string {
	switch m {
	case Reseed:
		return "reseed"
	case Stream:
		return "stream"
	default:
		return fmt.Sprintf("SeedMode(%d)", int(m))
	}
}

// ParseSeedMode maps "reseed" or "stream" to a SeedMode.
func ParseSeedMode(s string) (SeedMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reseed":
		return Reseed, nil
	case "stream":
		return Stream, nil
	default:
		return Reseed, fmt.Errorf("unknown seed mode %q", s)
	}
}

// ParseSeed converts raw seed text. Empty text means no seed. Text that is
// not an integer is reported as a notice and also yields no seed.
func ParseSeed(raw string) (*int64, []game.Notice) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, []game.Notice{{
			Field:   "seed",
			Got:     raw,
			Applied: "none",
			Reason:  "seed must be an integer",
		}}
	}
	return &v, nil
}

// RandBot is a computer role that picks a uniformly random move each round
type RandBot struct {
	game.Seat

	seed   *int64
	mode   SeedMode
	rng    *rand.Rand
	logger *log.Logger
}

// RandBotOption configures a RandBot.
type RandBotOption func(*RandBot)

// WithSeedMode selects how the seed is applied. Default is Reseed.
func WithSeedMode(mode SeedMode) RandBotOption {
	return func(b *RandBot) {
		b.mode = mode
	}
}

// WithLogger sets the logger used for per-draw debug output.
func WithLogger(logger *log.Logger) RandBotOption {
	return func(b *RandBot) {
		b.logger = logger
	}
}

// NewRandBot creates a bot for profile p. A nil seed draws from an
// unseeded generator.
func NewRandBot(p game.Profile, seed *int64, opts ...RandBotOption) (*RandBot, []game.Notice, error) {
	seat, notices, err := game.NewSeat(p)
	if err != nil {
		return nil, nil, err
	}

	b := &RandBot{Seat: seat, mode: Reseed}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = log.New(io.Discard)
	}
	b.logger = b.logger.WithPrefix("bot")

	if seed != nil {
		s := *seed
		b.seed = &s
		b.rng = randutil.New(s)
	} else {
		b.rng = randutil.NewUnseeded()
	}
	return b, notices, nil
}

// Seed returns the bot's seed, or nil when unseeded.
func (b *RandBot) Seed() *int64 { return b.seed }

// Mode returns the seed mode.
func (b *RandBot) Mode() SeedMode { return b.mode }

// Move draws the next move.
func (b *RandBot) Move(ctx context.Context) (game.Move, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if b.seed != nil && b.mode == Reseed {
		b.rng = randutil.New(*b.seed)
	}
	m := game.Moves[b.rng.IntN(len(game.Moves))]
	b.logger.Debug("Drew move", "name", b.Name(), "move", m)
	return m, nil
}
