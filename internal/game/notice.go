package game

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Notice records a configuration value that was rejected and replaced.
// Notices are advisory: the corrected value is already in effect.
type Notice struct {
	Field   string
	Got     string
	Applied string
	Reason  string
}

func newNotice(field string, got, applied any, reason string) Notice {
	return Notice{
		Field:   field,
		Got:     fmt.Sprint(got),
		Applied: fmt.Sprint(applied),
		Reason:  reason,
	}
}

func (n Notice) String() string {
	return fmt.Sprintf("%s: %s; got %s, using %s", n.Field, n.Reason, n.Got, n.Applied)
}

// LogNotices writes each notice to logger as a warning
func LogNotices(logger *log.Logger, notices []Notice) {
	if logger == nil {
		return
	}
	for _, n := range notices {
		logger.Warn(n.Reason, "field", n.Field, "got", n.Got, "using", n.Applied)
	}
}
