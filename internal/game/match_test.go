package game

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// humanKeys is a fixed sequence of selections used for replay scenarios.
var humanKeys = []int{1, 2, 1, 3, 2, 3, 1, 2, 1, 1, 3, 2, 3, 2, 2, 3, 3, 1, 2, 1, 3, 1}

func scriptedInput(keys []int) string {
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%d\n", k)
	}
	return sb.String()
}

func newHuman(t *testing.T, name string, keys []int) *HumanRole {
	t.Helper()
	h, _, err := NewHumanRole(Profile{Name: name}, NewConsolePrompter(strings.NewReader(scriptedInput(keys)), io.Discard))
	require.NoError(t, err)
	return h
}

func TestMatchReachTargetScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opponent    Move
		firstWins   bool
		firstScore  int
		secondScore int
		rounds      int
	}{
		{Rock, true, 5, 4, 14},
		{Paper, false, 2, 5, 10},
		{Scissors, true, 5, 3, 10},
	}

	for _, tt := range tests {
		t.Run(tt.opponent.String(), func(t *testing.T) {
			player := newHuman(t, "player", humanKeys)
			computer := NewScriptedRole("ai", true, tt.opponent)

			m := NewMatch(player, computer, Settings{TargetScore: 5, MaxRounds: 20, Sleep: 0, Verbosity: 0})
			result, err := m.Play(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.firstWins, result.FirstWon)
			assert.Equal(t, tt.firstScore, result.FirstScore)
			assert.Equal(t, tt.secondScore, result.SecondScore)
			assert.Equal(t, tt.rounds, result.Rounds)
			assert.Equal(t, ByScore, result.DecidedBy)
			if tt.firstWins {
				assert.Same(t, Role(player), m.Winner())
			} else {
				assert.Same(t, Role(computer), m.Winner())
			}
		})
	}
}

func TestMatchReplayIsReproducible(t *testing.T) {
	t.Parallel()

	play := func() Result {
		player := newHuman(t, "player", humanKeys)
		computer := NewScriptedRole("ai", true, MovesFromKeys(3, 1, 2, 2, 1)...)
		m := NewMatch(player, computer, Settings{TargetScore: 5, MaxRounds: 20, Sleep: 0})
		result, err := m.Play(context.Background())
		require.NoError(t, err)
		return result
	}

	first := play()
	for range 5 {
		assert.Equal(t, first, play())
	}
}

func TestMatchReachMaxRounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opponent    Move
		firstWins   bool
		firstScore  int
		secondScore int
	}{
		{Rock, true, 3, 2},
		{Paper, false, 2, 5},
		{Scissors, true, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.opponent.String(), func(t *testing.T) {
			player := newHuman(t, "player", humanKeys)
			computer := NewScriptedRole("ai", true, tt.opponent)

			m := NewMatch(player, computer, Settings{TargetScore: 10, MaxRounds: 10, Sleep: 0})
			result, err := m.Play(context.Background())
			require.NoError(t, err)

			assert.Equal(t, 10, result.Rounds)
			assert.Equal(t, ByCap, result.DecidedBy)
			assert.Equal(t, tt.firstWins, result.FirstWon)
			assert.Equal(t, tt.firstScore, result.FirstScore)
			assert.Equal(t, tt.secondScore, result.SecondScore)
		})
	}
}

func TestMatchTieAtCapFavoursSecond(t *testing.T) {
	t.Parallel()

	// Rock beats scissors, loses to paper: alternating gives 5-5 after 10 rounds.
	first := NewScriptedRole("first", true, Rock)
	second := NewScriptedRole("second", true, Scissors, Paper)

	m := NewMatch(first, second, Settings{TargetScore: 10, MaxRounds: 10})
	result, err := m.Play(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, result.FirstScore)
	assert.Equal(t, 5, result.SecondScore)
	assert.Equal(t, "second", result.Winner)
	assert.False(t, result.FirstWon)
	assert.Equal(t, ByCap, result.DecidedBy)
}

func TestMatchAllDrawsAtCap(t *testing.T) {
	t.Parallel()

	first := NewScriptedRole("first", true, Paper)
	second := NewScriptedRole("second", true, Paper)

	m := NewMatch(first, second, Settings{TargetScore: 3, MaxRounds: 4})
	result, err := m.Play(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, result.Rounds)
	assert.Equal(t, 4, result.Draws)
	assert.Equal(t, "second", result.Winner)
}

func TestMatchInvariants(t *testing.T) {
	t.Parallel()

	first := NewScriptedRole("first", true, MovesFromKeys(1, 2, 3, 3, 1, 2, 2)...)
	second := NewScriptedRole("second", true, MovesFromKeys(2, 2, 1, 3, 3, 1)...)

	var rounds []Round
	m := NewMatch(first, second, Settings{TargetScore: 4, MaxRounds: 12},
		WithRoundHook(func(r Round) { rounds = append(rounds, r) }))

	assert.Nil(t, m.Winner())
	assert.Equal(t, InProgress, m.DecidedBy())

	result, err := m.Play(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, rounds)

	prev := Round{}
	for _, r := range rounds {
		assert.Equal(t, prev.Number+1, r.Number)
		assert.GreaterOrEqual(t, r.FirstScore, prev.FirstScore)
		assert.GreaterOrEqual(t, r.SecondScore, prev.SecondScore)
		assert.LessOrEqual(t, r.FirstScore+r.SecondScore-prev.FirstScore-prev.SecondScore, 1)
		assert.Equal(t, Resolve(r.FirstMove, r.SecondMove), r.Outcome)
		prev = r
	}
	assert.Equal(t, len(rounds), result.Rounds)
	assert.NotNil(t, m.Winner())

	winner := m.Winner()
	_, err = m.Play(context.Background())
	assert.ErrorIs(t, err, ErrMatchOver)
	assert.Same(t, winner, m.Winner())
}

func TestMatchValidation(t *testing.T) {
	t.Parallel()

	t.Run("negative target score", func(t *testing.T) {
		m := NewMatch(NewScriptedRole("a", true, Rock), NewScriptedRole("b", true, Rock), Settings{TargetScore: -1, MaxRounds: 20})
		notices := m.Validate()
		require.Len(t, notices, 1)
		assert.Equal(t, 10, m.Settings().TargetScore)
	})

	t.Run("max rounds corrected", func(t *testing.T) {
		m := NewMatch(NewScriptedRole("a", true, Rock), NewScriptedRole("b", true, Rock), Settings{TargetScore: 10, MaxRounds: 5})
		notices := m.Validate()
		require.Len(t, notices, 1)
		assert.Equal(t, m.Settings().TargetScore, m.Settings().MaxRounds)
	})

	t.Run("validation runs once", func(t *testing.T) {
		m := NewMatch(NewScriptedRole("a", true, Rock), NewScriptedRole("b", true, Scissors), Settings{TargetScore: 2, MaxRounds: 5, Verbosity: 7})
		first := m.Validate()
		require.Len(t, first, 1)
		assert.Equal(t, first, m.Validate())

		_, err := m.Play(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, m.Settings().Verbosity)
	})

	t.Run("corrected settings drive play", func(t *testing.T) {
		first := NewScriptedRole("a", true, Rock)
		second := NewScriptedRole("b", true, Rock)
		m := NewMatch(first, second, Settings{TargetScore: 3, MaxRounds: 1})
		result, err := m.Play(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, result.Rounds)
	})
}

func TestMatchOutput(t *testing.T) {
	t.Parallel()

	t.Run("verbose prints rounds", func(t *testing.T) {
		var out bytes.Buffer
		m := NewMatch(NewScriptedRole("alice", true, Paper), NewScriptedRole("hal", true, Rock),
			Settings{TargetScore: 1, MaxRounds: 1, Verbosity: 1}, WithOutput(&out))
		_, err := m.Play(context.Background())
		require.NoError(t, err)

		s := out.String()
		assert.Contains(t, s, "Paper beats (wraps) rock")
		assert.Contains(t, s, "Rock beats (blunts) scissors")
		assert.Contains(t, s, "Scissors beats (cuts) paper")
		assert.Contains(t, s, "Current state of the game:")
		assert.Contains(t, s, "alice's move:")
		assert.Contains(t, s, "hal is making a decision...")
		assert.Contains(t, s, "Current round is:")
		assert.Contains(t, s, "Winner of the current round is:")
		assert.Contains(t, s, "Winner of the game:")
	})

	t.Run("quiet prints rules and result only", func(t *testing.T) {
		var out bytes.Buffer
		m := NewMatch(NewScriptedRole("alice", true, Paper), NewScriptedRole("hal", true, Paper),
			Settings{TargetScore: 1, MaxRounds: 1, Verbosity: 0}, WithOutput(&out))
		_, err := m.Play(context.Background())
		require.NoError(t, err)

		s := out.String()
		assert.Contains(t, s, "Current winning conditions")
		assert.NotContains(t, s, "Current round is:")
		assert.NotContains(t, s, "It's a draw for this round")
		assert.Contains(t, s, "Winner of the game:")
		assert.Contains(t, s, "hal")
	})
}

func TestMatchDelayUsesClock(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mClock := quartz.NewMock(t)
	start := mClock.Now()

	first := NewScriptedRole("first", true, Rock, Paper)
	second := NewScriptedRole("second", true, Paper)
	m := NewMatch(first, second, Settings{TargetScore: 2, MaxRounds: 4, Sleep: 2}, WithClock(mClock))

	done := make(chan Result, 1)
	errc := make(chan error, 1)
	go func() {
		r, err := m.Play(ctx)
		errc <- err
		done <- r
	}()

	// Each round waits for exactly one two-second timer.
	var result Result
	for waiting := true; waiting; {
		select {
		case err := <-errc:
			require.NoError(t, err)
			result = <-done
			waiting = false
		default:
			mClock.Advance(2 * time.Second).MustWait(ctx)
			time.Sleep(time.Millisecond)
		}
	}

	// lose, draw, lose: second reaches the target on round three
	assert.Equal(t, 3, result.Rounds)
	assert.False(t, result.FirstWon)
	assert.GreaterOrEqual(t, mClock.Now().Sub(start), 3*2*time.Second)
}

func TestMatchCancellation(t *testing.T) {
	t.Parallel()

	t.Run("cancelled before play", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		m := NewMatch(NewScriptedRole("a", true, Rock), NewScriptedRole("b", true, Rock), Settings{TargetScore: 1, MaxRounds: 1})
		_, err := m.Play(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, m.Winner())
	})

	t.Run("cancelled during pause", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		mClock := quartz.NewMock(t)

		m := NewMatch(NewScriptedRole("a", true, Rock), NewScriptedRole("b", true, Rock),
			Settings{TargetScore: 1, MaxRounds: 3, Sleep: 30}, WithClock(mClock))

		errc := make(chan error, 1)
		go func() {
			_, err := m.Play(ctx)
			errc <- err
		}()
		cancel()

		select {
		case err := <-errc:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Fatal("match did not stop after cancellation")
		}
	})

	t.Run("invalid role move aborts", func(t *testing.T) {
		first := NewScriptedRole("a", true, Move(0))
		second := NewScriptedRole("b", true, Rock)

		m := NewMatch(first, second, Settings{TargetScore: 3, MaxRounds: 5})
		_, err := m.Play(context.Background())
		require.ErrorIs(t, err, ErrInvalidMove)
		assert.Nil(t, m.Winner())
	})

	t.Run("role error aborts", func(t *testing.T) {
		first := NewScriptedRole("a", false, Rock)
		second := NewScriptedRole("b", true, Rock)

		m := NewMatch(first, second, Settings{TargetScore: 3, MaxRounds: 5})
		_, err := m.Play(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "script exhausted")
		assert.Equal(t, 1, m.Round())
	})
}

func TestMatchInitialScores(t *testing.T) {
	t.Parallel()

	seat, _, err := NewSeat(Profile{Name: "ahead", Score: 4})
	require.NoError(t, err)
	first := &ScriptedRole{Seat: seat, moves: []Move{Rock}, loop: true}
	second := NewScriptedRole("behind", true, Scissors)

	m := NewMatch(first, second, Settings{TargetScore: 5, MaxRounds: 10})
	result, err := m.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Rounds)
	assert.True(t, result.FirstWon)
}

func TestMatchScoreMustEqualTarget(t *testing.T) {
	t.Parallel()

	seeded := func(name string, score int, move Move) *ScriptedRole {
		seat, _, err := NewSeat(Profile{Name: name, Score: score})
		require.NoError(t, err)
		return &ScriptedRole{Seat: seat, moves: []Move{move}, loop: true}
	}

	tests := []struct {
		name        string
		firstScore  int
		secondScore int
		firstMove   Move
		secondMove  Move
		winner      string
		decidedBy   DecidedBy
		rounds      int
	}{
		{
			name:       "second hits target while first is above it",
			firstScore: 12, secondScore: 9,
			firstMove: Rock, secondMove: Paper,
			winner: "second", decidedBy: ByScore, rounds: 1,
		},
		{
			name:       "first above target plays on to the cap",
			firstScore: 15, secondScore: 0,
			firstMove: Rock, secondMove: Rock,
			winner: "first", decidedBy: ByCap, rounds: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := seeded("first", tt.firstScore, tt.firstMove)
			second := seeded("second", tt.secondScore, tt.secondMove)

			m := NewMatch(first, second, Settings{TargetScore: 10, MaxRounds: 10})
			result, err := m.Play(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.winner, result.Winner)
			assert.Equal(t, tt.decidedBy, result.DecidedBy)
			assert.Equal(t, tt.rounds, result.Rounds)
		})
	}
}

func TestNewMatchRequiresRoles(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewMatch(nil, NewScriptedRole("b", true, Rock), DefaultSettings())
	})
}
