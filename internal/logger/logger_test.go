package logger

import (
	"log/slog"
	"testing"
)

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"debug", "DEBUG", slog.LevelDebug},
		{"warn", "WARN", slog.LevelWarn},
		{"error", "ERROR", slog.LevelError},
		{"unset defaults to info", "", slog.LevelInfo},
		{"garbage defaults to info", "VERBOSE", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOGDECK_LOG_LEVEL", tt.value)
			if got := getLogLevel(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	slog.Info("logger smoke test")
}
