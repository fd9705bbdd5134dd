package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		isTerminal bool
		level      slog.Level
		expected   bool
	}{
		{"terminal with info level", true, slog.LevelInfo, true},
		{"terminal with debug level", true, slog.LevelDebug, false},
		{"pipe with info level", false, slog.LevelInfo, false},
		{"pipe with debug level", false, slog.LevelDebug, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, showProgress(tt.isTerminal, tt.level))
		})
	}
}
