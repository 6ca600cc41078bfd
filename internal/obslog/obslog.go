// Package obslog wires up the process-wide logger. Every status line
// and error the driver and CLI emit goes to stderr — stdout is
// reserved for the plan wire protocol the judge server reads.
package obslog

import (
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
	runID  string
)

// Logger returns the process-wide logger, tagged with a per-run
// correlation id so multiple concurrent judge invocations on the same
// host don't interleave indistinguishably in a shared log sink.
func Logger() zerolog.Logger {
	once.Do(func() {
		runID = uuid.NewString()
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}).
			With().
			Timestamp().
			Str("run_id", runID).
			Logger()
	})
	return logger
}

// RunID returns the correlation id generated for this process's
// logger. Calling it before Logger forces initialization.
func RunID() string {
	Logger()
	return runID
}
