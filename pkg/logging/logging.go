// Package logging configures the process-wide zerolog logger and
// exposes the verbosity gate the status-line drawer consults before
// drawing anything.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger configures the global logger based on verbosity level.
// Console output goes to stderr so it scrolls above the status region;
// a file sink under the XDG state directory is added when available.
func SetupLogger(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    false,
	}

	writers := []io.Writer{consoleWriter}

	logFile, err := setupLogFile()
	if err == nil {
		writers = append(writers, logFile)
	}

	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	if err != nil {
		log.Warn().Err(err).Msg("Failed to create log file, logging to console only")
	}

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

// InfoEnabled reports whether informational logging is currently
// enabled. The global level may change while the process runs, so this
// is evaluated on every call rather than cached.
func InfoEnabled() bool {
	level := zerolog.GlobalLevel()
	return level <= zerolog.InfoLevel && level != zerolog.Disabled
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// setupLogFile opens the log file under the XDG state directory,
// creating parent directories as needed.
func setupLogFile() (*os.File, error) {
	logPath, err := xdg.StateFile("statline/statline.log")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log file path: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}
