package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/yehuihe/paper-rock-scissors/internal/bot"
	"github.com/yehuihe/paper-rock-scissors/internal/game"
	"github.com/yehuihe/paper-rock-scissors/internal/matchid"
	"github.com/yehuihe/paper-rock-scissors/internal/mode"
	"github.com/yehuihe/paper-rock-scissors/internal/randutil"
	"github.com/yehuihe/paper-rock-scissors/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Matches  int
	Workers  int // Concurrent matches; <= 0 means GOMAXPROCS
	Seed     int64
	Settings game.Settings
	First    game.Profile
	Second   game.Profile
	Timeout  time.Duration // Per-match limit; 0 disables it
	Logger   *log.Logger
}

// Simulator runs batches of computer-vs-computer matches
type Simulator struct {
	config  Config
	notices []game.Notice
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.First.Name == "" {
		config.First.Name = "ai-1"
	}
	if config.Second.Name == "" {
		config.Second.Name = "ai-2"
	}
	// Simulated matches never pause or print
	config.Settings.Sleep = 0
	config.Settings.Verbosity = 0

	var notices []game.Notice
	config.Settings, notices = config.Settings.Validate()
	return &Simulator{config: config, notices: notices}
}

// Run plays every match and returns the aggregate. Each worker plays an
// interleaved shard of the batch into its own Statistics and the shards
// are merged at the end. Match i is seeded with randutil.Derive(Seed, i),
// so the aggregate for a given seed does not depend on worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Matches <= 0 {
		return nil, fmt.Errorf("matches must be positive, got %d", s.config.Matches)
	}

	logger := s.config.Logger.WithPrefix("sim")
	game.LogNotices(logger, s.notices)
	logger.Info("Simulation started", "matches", s.config.Matches, "workers", s.config.Workers, "seed", s.config.Seed)

	workers := min(s.config.Workers, s.config.Matches)
	shards := make([]*statistics.Statistics, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		shard := &statistics.Statistics{}
		shards[w] = shard
		g.Go(func() error {
			for i := w; i < s.config.Matches; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				result, err := s.playMatch(gctx, i)
				if err != nil {
					return fmt.Errorf("match %d: %w", i+1, err)
				}
				shard.Add(result)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, shard := range shards {
		stats.Merge(shard)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Info("Simulation finished", "matches", stats.Matches, "first_win_rate", stats.FirstWinRate())
	return stats, nil
}

// playMatch plays the i-th match of the batch
func (s *Simulator) playMatch(ctx context.Context, i int) (statistics.MatchResult, error) {
	seed := randutil.Derive(s.config.Seed, i)

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	lineup, err := mode.Build(mode.AI, mode.Options{
		First:    s.config.First,
		Second:   s.config.Second,
		Seed:     &seed,
		SeedMode: bot.Stream,
		Logger:   log.New(io.Discard),
	})
	if err != nil {
		return statistics.MatchResult{}, err
	}

	// per-match start/finish lines only at debug level
	matchLogger := log.New(io.Discard)
	if s.config.Logger.GetLevel() <= log.DebugLevel {
		matchLogger = s.config.Logger
	}

	m := game.NewMatch(lineup.First, lineup.Second, s.config.Settings,
		game.WithID(matchid.New()),
		game.WithLogger(matchLogger),
	)
	result, err := m.Play(ctx)
	if err != nil {
		return statistics.MatchResult{}, err
	}

	return statistics.MatchResult{
		Seed:        seed,
		Rounds:      result.Rounds,
		FirstScore:  result.FirstScore,
		SecondScore: result.SecondScore,
		FirstWon:    result.FirstWon,
		Draws:       result.Draws,
		ByCap:       result.DecidedBy == game.ByCap,
	}, nil
}

// PrintSummary writes a summary of simulation results to w
func PrintSummary(w io.Writer, stats *statistics.Statistics) {
	low, high := stats.WinRateCI95()
	roundsLow, roundsHigh := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== SIMULATION RESULTS ===\n")
	fmt.Fprintf(w, "Matches played: %d\n", stats.Matches)
	fmt.Fprintf(w, "First role wins: %d (%.1f%%), 95%% CI [%.3f, %.3f]\n",
		stats.FirstWins, stats.FirstWinRate()*100, low, high)
	fmt.Fprintf(w, "Second role wins: %d\n", stats.SecondWins)
	fmt.Fprintf(w, "Decided at round cap: %d (%d tie-breaks)\n", stats.ByCap, stats.TieBreaks)

	fmt.Fprintf(w, "\n=== ROUNDS PER MATCH ===\n")
	fmt.Fprintf(w, "Mean: %.2f, Median: %.1f, Std Dev: %.2f\n", stats.Mean(), stats.Median(), stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%.2f, %.2f]\n", roundsLow, roundsHigh)
	fmt.Fprintf(w, "Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))
	fmt.Fprintf(w, "Draws per match: %.2f\n", stats.DrawsPerMatch())
}
