package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures the CLI logger. Verbose runs log every round at
// debug level; the default keeps the console quiet apart from progress and
// warnings.
func SetupLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
	})
}
