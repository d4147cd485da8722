package shared

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// LevelForVerbosity maps the game's -v counter to a log level: the default
// verbosity keeps only warnings, -v adds match info, -vv adds round detail.
func LevelForVerbosity(verbosity int) log.Level {
	switch {
	case verbosity >= 3:
		return log.DebugLevel
	case verbosity == 2:
		return log.InfoLevel
	default:
		return log.WarnLevel
	}
}

// SetupLogger configures a charmbracelet logger writing to w. An explicit
// level name wins over the verbosity-derived level.
func SetupLogger(w io.Writer, level string, verbosity int) (*log.Logger, error) {
	lvl := LevelForVerbosity(verbosity)
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}), nil
}
