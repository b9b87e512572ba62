// Package cli holds the command-line plumbing shared by zrep commands.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger creates a logger for the given verbosity.
//
//   - verbose: debug level
//   - quiet: warn level
//   - default: info level
//
// Console output is human readable on a TTY and JSON otherwise. When logFile
// is set, JSON lines are also written there with rotation. The returned
// closer releases the log file.
func InitLogger(verbose, quiet bool, logFile string) (zerolog.Logger, io.Closer) {
	console := selectOutput(os.Stderr)

	writer := console
	var closer io.Closer = nopCloser{}
	if logFile != "" {
		rotating := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		writer = zerolog.MultiLevelWriter(console, rotating)
		closer = rotating
	}

	logger := zerolog.New(writer).Level(selectLevel(verbose, quiet)).With().Timestamp().Logger()
	return logger, closer
}

func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

func selectOutput(f *os.File) io.Writer {
	if _, noColor := os.LookupEnv("NO_COLOR"); !noColor && term.IsTerminal(int(f.Fd())) {
		return zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	return f
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
