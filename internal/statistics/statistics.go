package statistics

import (
	"fmt"
	"math"
	"sort"
)

// MatchResult represents the outcome of a single simulated match
type MatchResult struct {
	Seed        int64 // RNG seed for this match (for replay)
	Rounds      int   // Rounds played
	FirstScore  int
	SecondScore int
	FirstWon    bool
	Draws       int  // Drawn rounds
	ByCap       bool // Decided by the round cap rather than the target score
}

// Statistics aggregates simulated match results. Rounds per match is the
// sampled value for mean, variance and percentiles.
type Statistics struct {
	Matches    int
	SumRounds  float64
	SumRounds2 float64   // Sum of squares for variance calculation
	Values     []float64 // Rounds per match for median/percentile calculation

	FirstWins  int
	SecondWins int
	ByCap      int // Matches decided at the round cap
	TieBreaks  int // Cap decisions with level scores, awarded to the second role
	Draws      int // Drawn rounds across all matches
}

// Add incorporates a new match result into the statistics
func (s *Statistics) Add(result MatchResult) {
	rounds := float64(result.Rounds)
	s.Matches++
	s.SumRounds += rounds
	s.SumRounds2 += rounds * rounds
	s.Values = append(s.Values, rounds)
	s.Draws += result.Draws

	if result.FirstWon {
		s.FirstWins++
	} else {
		s.SecondWins++
	}

	if result.ByCap {
		s.ByCap++
		if result.FirstScore == result.SecondScore {
			s.TieBreaks++
		}
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Matches += other.Matches
	s.SumRounds += other.SumRounds
	s.SumRounds2 += other.SumRounds2
	s.Values = append(s.Values, other.Values...)
	s.FirstWins += other.FirstWins
	s.SecondWins += other.SecondWins
	s.ByCap += other.ByCap
	s.TieBreaks += other.TieBreaks
	s.Draws += other.Draws
}

// Mean returns the mean number of rounds per match
func (s *Statistics) Mean() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.SumRounds / float64(s.Matches)
}

// Variance returns the sample variance of rounds per match
func (s *Statistics) Variance() float64 {
	if s.Matches < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumRounds2 - float64(s.Matches)*mean*mean) / float64(s.Matches-1)
}

// StdDev returns the sample standard deviation of rounds per match
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Matches))
}

// ConfidenceInterval95 returns the 95% confidence interval for mean rounds
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// DrawsPerMatch returns the mean number of drawn rounds per match
func (s *Statistics) DrawsPerMatch() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.Draws) / float64(s.Matches)
}

// FirstWinRate returns the fraction of matches won by the first role
func (s *Statistics) FirstWinRate() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.FirstWins) / float64(s.Matches)
}

// WinRateCI95 returns the normal-approximation 95% interval for the first
// role's win rate, clamped to [0, 1].
func (s *Statistics) WinRateCI95() (float64, float64) {
	if s.Matches == 0 {
		return 0, 0
	}
	p := s.FirstWinRate()
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(s.Matches))
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// Median returns the median rounds per match
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the aggregate counters are mutually consistent
func (s *Statistics) Validate() error {
	if s.Matches <= 0 {
		return fmt.Errorf("invalid matches count: %d", s.Matches)
	}

	if len(s.Values) != s.Matches {
		return fmt.Errorf("values array length (%d) does not match matches count (%d)",
			len(s.Values), s.Matches)
	}

	if s.FirstWins+s.SecondWins != s.Matches {
		return fmt.Errorf("wins (%d + %d) do not add up to matches (%d)",
			s.FirstWins, s.SecondWins, s.Matches)
	}

	if s.TieBreaks > s.ByCap || s.ByCap > s.Matches {
		return fmt.Errorf("cap decisions out of range: tie-breaks=%d cap=%d matches=%d",
			s.TieBreaks, s.ByCap, s.Matches)
	}

	return nil
}
