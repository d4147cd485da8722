package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/yehuihe/paper-rock-scissors/cmd/prs/shared"
	"github.com/yehuihe/paper-rock-scissors/internal/game"
	"github.com/yehuihe/paper-rock-scissors/internal/simulator"
)

type SimulateCmd struct {
	Matches      int           `short:"n" default:"1000" env:"PRS_MATCHES" help:"Number of matches to play"`
	Workers      int           `short:"w" default:"0" env:"PRS_WORKERS" help:"Concurrent matches (0 = one per CPU)"`
	Seed         int64         `short:"s" default:"1" env:"PRS_SEED" help:"Base seed; match i uses a seed derived from it"`
	TargetScore  int           `short:"t" default:"10" env:"PRS_TARGET_SCORE" help:"Target score of each match"`
	MaxRounds    int           `short:"m" default:"20" env:"PRS_MAX_ROUNDS" help:"Maximum rounds of each match"`
	PlayerName   string        `default:"ai-1" env:"PRS_PLAYER_NAME" help:"Name of the first computer"`
	ComputerName string        `default:"ai-2" env:"PRS_COMPUTER_NAME" help:"Name of the second computer"`
	Timeout      time.Duration `default:"10s" help:"Per-match time limit"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	return c.run(context.Background(), globals, os.Stdout, os.Stderr)
}

func (c *SimulateCmd) run(parent context.Context, globals *Globals, out, errOut io.Writer) error {
	logger, err := shared.SetupLogger(errOut, globals.LogLevel, game.DefaultVerbosity)
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(parent, logger)
	defer cancel()

	start := time.Now()
	stats, err := simulator.New(simulator.Config{
		Matches: c.Matches,
		Workers: c.Workers,
		Seed:    c.Seed,
		Settings: game.Settings{
			TargetScore: c.TargetScore,
			MaxRounds:   c.MaxRounds,
		},
		First:   game.Profile{Name: c.PlayerName},
		Second:  game.Profile{Name: c.ComputerName},
		Timeout: c.Timeout,
		Logger:  logger,
	}).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	simulator.PrintSummary(out, stats)
	fmt.Fprintf(out, "Elapsed: %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}
