// Package mode builds the pair of roles for a match. A mode decides which
// side is driven by a person and which by the random bot.
package mode

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yehuihe/paper-rock-scissors/internal/bot"
	"github.com/yehuihe/paper-rock-scissors/internal/game"
)

// ErrUnknownMode is returned by Lookup for names outside Names()
var ErrUnknownMode = errors.New("unknown mode")

// Controller says who drives a role
type Controller int

const (
	Human Controller = iota
	Computer
)

func (c Controller) String() string {
	if c == Human {
		return "human"
	}
	return "computer"
}

// Mode pairs a controller with each side of the match
type Mode struct {
	Name   string
	Title  string
	First  Controller
	Second Controller
}

var (
	Standard = Mode{Name: "standard", Title: "Standard Mode", First: Human, Second: Computer}
	Dual     = Mode{Name: "dual", Title: "Dual Mode", First: Human, Second: Human}
	AI       = Mode{Name: "ai", Title: "AI Mode", First: Computer, Second: Computer}
)

var registry = map[string]Mode{
	Standard.Name: Standard,
	Dual.Name:     Dual,
	AI.Name:       AI,
}

// Names returns the registered mode names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a mode by case-insensitive name
func Lookup(name string) (Mode, error) {
	m, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Mode{}, fmt.Errorf("%w %q (valid: %s)", ErrUnknownMode, name, strings.Join(Names(), ", "))
	}
	return m, nil
}

// Banner is the heading printed before the match starts
func (m Mode) Banner() string {
	return fmt.Sprintf("------ %s ------", m.Title)
}

func (m Mode) String() string { return m.Name }

// Options carries everything needed to construct both roles
type Options struct {
	First    game.Profile
	Second   game.Profile
	Seed     *int64
	SeedMode bot.SeedMode
	Prompter game.Prompter
	Logger   *log.Logger
}

// Lineup is the constructed pair of roles plus any validation notices
type Lineup struct {
	First   game.Role
	Second  game.Role
	Notices []game.Notice
}

// Build constructs the roles for m. Human roles share opts.Prompter.
// When both sides are computers and a seed is given, the second side uses
// seed+1 so the two bots do not mirror each other.
func Build(m Mode, opts Options) (Lineup, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	var lineup Lineup
	first, notices, err := newRole(m.First, opts.First, opts, opts.Seed)
	if err != nil {
		return Lineup{}, fmt.Errorf("first role: %w", err)
	}
	lineup.First = first
	lineup.Notices = append(lineup.Notices, notices...)

	secondSeed := opts.Seed
	if m.First == Computer && m.Second == Computer && opts.Seed != nil {
		s := *opts.Seed + 1
		secondSeed = &s
	}
	second, notices, err := newRole(m.Second, opts.Second, opts, secondSeed)
	if err != nil {
		return Lineup{}, fmt.Errorf("second role: %w", err)
	}
	lineup.Second = second
	lineup.Notices = append(lineup.Notices, notices...)

	return lineup, nil
}

func newRole(c Controller, p game.Profile, opts Options, seed *int64) (game.Role, []game.Notice, error) {
	switch c {
	case Human:
		if opts.Prompter == nil {
			return nil, nil, fmt.Errorf("%s needs a prompter for human input", p.Name)
		}
		return game.NewHumanRole(p, opts.Prompter)
	case Computer:
		return bot.NewRandBot(p, seed, bot.WithSeedMode(opts.SeedMode), bot.WithLogger(opts.Logger))
	default:
		return nil, nil, fmt.Errorf("unknown controller %d", int(c))
	}
}
