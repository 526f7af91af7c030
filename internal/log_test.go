package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"ERROR", LogLevelError},
		{"warn", LogLevelWarn},
		{" Info ", LogLevelInfo},
		{"DEBUG", LogLevelDebug},
		{"TRACE", LogLevelTrace},
		{"", LogLevelWarn},
		{"verbose", LogLevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLogLevel(tt.input, LogLevelWarn))
		})
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogLevelWarn, &buf)

	logger.Error("failed %d", 1)
	logger.Warn("careful")
	logger.Info("hidden")
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "[ERROR] failed 1")
	assert.Contains(t, out, "[WARN] careful")
	assert.NotContains(t, out, "hidden")
	assert.Equal(t, LogLevelWarn, logger.GetLevel())
}
