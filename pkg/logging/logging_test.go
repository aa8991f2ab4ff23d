package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_STATE_HOME", t.TempDir())

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}
		})
	}
}

func TestInfoEnabled(t *testing.T) {
	tests := []struct {
		name  string
		level zerolog.Level
		want  bool
	}{
		{"trace", zerolog.TraceLevel, true},
		{"debug", zerolog.DebugLevel, true},
		{"info", zerolog.InfoLevel, true},
		{"warn", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"disabled", zerolog.Disabled, false},
	}

	previous := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(previous)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zerolog.SetGlobalLevel(tt.level)
			if got := InfoEnabled(); got != tt.want {
				t.Errorf("InfoEnabled() at %v = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("drawer")
	// The component field only shows on emitted events; this just
	// confirms a usable logger comes back.
	logger.Debug().Msg("logger created")
}
