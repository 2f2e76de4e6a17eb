package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Log is the process-wide logger. It discards everything until Init runs.
var Log = zerolog.Nop()

// Init initializes the global logger.
// Output goes to stderr so it never interleaves with rendered cards.
func Init(level string) {
	InitWriter(os.Stderr, level, term.IsTerminal(int(os.Stderr.Fd())))
}

// InitWriter initializes the global logger on w
func InitWriter(w io.Writer, level string, pretty bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}

	if pretty {
		// Pretty console output for interactive use
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	Log = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Helper functions for common log levels
func Info() *zerolog.Event {
	return Log.Info()
}

func Error() *zerolog.Event {
	return Log.Error()
}

func Warn() *zerolog.Event {
	return Log.Warn()
}

func Debug() *zerolog.Event {
	return Log.Debug()
}
