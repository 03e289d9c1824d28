// Package logging configures the process-wide zerolog logger.
//
// Diagnostics go to stderr through a console writer; an optional log file
// receives the same events as JSON and is rotated by lumberjack.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultLevel keeps normal runs quiet: only degraded features are reported.
const DefaultLevel = "warn"

// Options controls Setup.
type Options struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	Level string
	// File, when set, receives every event as JSON.
	File string
	// Console defaults to os.Stderr.
	Console io.Writer
}

// Setup configures the global logger and returns a closer for the log
// file, if any.
func Setup(opts Options) (io.Closer, error) {
	if opts.Level == "" {
		opts.Level = DefaultLevel
	}
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	zerolog.SetGlobalLevel(level)

	if opts.Console == nil {
		opts.Console = os.Stderr
	}

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        opts.Console,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(opts.Console),
	}}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		writers = append(writers, file)
		closer = file
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	if level <= zerolog.DebugLevel {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Str("level", level.String()).Str("file", opts.File).Msg("logger initialized")
	return closer, nil
}

// Get returns the global logger tagged with a component name.
func Get(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Disable silences all logging. Intended for tests.
func Disable() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
