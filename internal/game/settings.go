package game

import "time"

// Defaults applied when a setting fails validation
const (
	DefaultTargetScore = 10
	DefaultMaxRounds   = 20
	DefaultSleep       = 1
	DefaultVerbosity   = 1
	MaxVerbosity       = 3
)

// Settings controls how a match is played
type Settings struct {
	TargetScore int // score at which a role wins immediately
	MaxRounds   int // rounds played before the score comparison decides
	Sleep       int // seconds paused before the second role moves
	Verbosity   int // 0 (quiet) to 3 (debug)
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		TargetScore: DefaultTargetScore,
		MaxRounds:   DefaultMaxRounds,
		Sleep:       DefaultSleep,
		Verbosity:   DefaultVerbosity,
	}
}

// Validate returns a corrected copy of s together with a notice for each
// value that had to be replaced. The max rounds check runs against the
// corrected target score.
func (s Settings) Validate() (Settings, []Notice) {
	var notices []Notice

	if s.TargetScore <= 0 {
		notices = append(notices, newNotice("target_score", s.TargetScore, DefaultTargetScore,
			"target score must be a positive integer"))
		s.TargetScore = DefaultTargetScore
	}

	if s.MaxRounds < s.TargetScore {
		notices = append(notices, newNotice("max_rounds", s.MaxRounds, s.TargetScore,
			"max rounds must be greater than or equal to target score"))
		s.MaxRounds = s.TargetScore
	}

	if s.Sleep < 0 {
		notices = append(notices, newNotice("sleep", s.Sleep, DefaultSleep,
			"sleep must be a non-negative integer"))
		s.Sleep = DefaultSleep
	}

	if s.Verbosity < 0 || s.Verbosity > MaxVerbosity {
		notices = append(notices, newNotice("verbose", s.Verbosity, DefaultVerbosity,
			"verbose must be an integer between 0 and 3"))
		s.Verbosity = DefaultVerbosity
	}

	return s, notices
}

// Delay is the pause taken before the second role draws its move
func (s Settings) Delay() time.Duration {
	return time.Duration(s.Sleep) * time.Second
}
