package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/yehuihe/paper-rock-scissors/cmd/prs/shared"
	"github.com/yehuihe/paper-rock-scissors/internal/bot"
	"github.com/yehuihe/paper-rock-scissors/internal/game"
	"github.com/yehuihe/paper-rock-scissors/internal/matchid"
	"github.com/yehuihe/paper-rock-scissors/internal/mode"
	"github.com/yehuihe/paper-rock-scissors/internal/tui"
)

type PlayCmd struct {
	TargetScore   int    `short:"t" default:"10" env:"PRS_TARGET_SCORE" help:"Target score of the game. The game ends once one side reaches it"`
	MaxRounds     int    `short:"m" default:"20" env:"PRS_MAX_ROUNDS" help:"Maximum rounds of the game. The game ends once this many rounds are played"`
	PlayerName    string `default:"player" env:"PRS_PLAYER_NAME" help:"Name of the first role"`
	PlayerScore   int    `default:"0" env:"PRS_PLAYER_SCORE" help:"Initial score of the first role"`
	ComputerName  string `default:"ai" env:"PRS_COMPUTER_NAME" help:"Name of the second role"`
	ComputerScore int    `default:"0" env:"PRS_COMPUTER_SCORE" help:"Initial score of the second role"`
	Seed          string `short:"s" env:"PRS_SEED" help:"Computer random number generator seed"`
	SeedMode      string `default:"reseed" enum:"reseed,stream" env:"PRS_SEED_MODE" help:"Reseed before every draw, or seed once (reseed|stream)"`
	Sleep         int    `default:"1" env:"PRS_SLEEP" help:"Seconds to pause while the computer is making a decision"`
	Verbose       int    `short:"v" type:"counter" default:"1" help:"Verbosity level (repeat for more)"`
	Mode          string `default:"standard" env:"PRS_MODE" help:"Game mode (standard|dual|ai)"`
	TUI           bool   `name:"tui" env:"PRS_TUI" help:"Pick moves with an interactive menu instead of typing numbers"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	return c.run(context.Background(), globals, os.Stdin, os.Stdout, os.Stderr)
}

func (c *PlayCmd) run(parent context.Context, globals *Globals, in io.Reader, out, errOut io.Writer) error {
	logger, err := shared.SetupLogger(errOut, globals.LogLevel, c.Verbose)
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(parent, logger)
	defer cancel()

	m, err := mode.Lookup(c.Mode)
	if err != nil {
		return err
	}
	seedMode, err := bot.ParseSeedMode(c.SeedMode)
	if err != nil {
		return err
	}
	seed, notices := bot.ParseSeed(c.Seed)

	console := game.NewConsolePrompter(in, out)
	defer console.Close()

	var prompter game.Prompter = console
	if c.TUI {
		prompter = tui.NewPrompter(in, out, logger)
	}

	lineup, err := mode.Build(m, mode.Options{
		First:    game.Profile{Name: c.PlayerName, Score: c.PlayerScore},
		Second:   game.Profile{Name: c.ComputerName, Score: c.ComputerScore},
		Seed:     seed,
		SeedMode: seedMode,
		Prompter: prompter,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	game.LogNotices(logger, append(notices, lineup.Notices...))

	game.NewDisplay(out).Banner(m.Banner())

	match := game.NewMatch(lineup.First, lineup.Second, game.Settings{
		TargetScore: c.TargetScore,
		MaxRounds:   c.MaxRounds,
		Sleep:       c.Sleep,
		Verbosity:   c.Verbose,
	},
		game.WithID(matchid.New()),
		game.WithOutput(out),
		game.WithLogger(logger),
	)

	if _, err := match.Play(ctx); err != nil {
		return fmt.Errorf("match %s: %w", match.ID(), err)
	}

	fmt.Fprintln(out, "Thank you for playing!")
	return nil
}
