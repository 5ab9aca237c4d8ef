package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Level
		expectError bool
	}{
		{
			name:        "parse error level",
			input:       "error",
			expected:    LevelError,
			expectError: false,
		},
		{
			name:        "parse warn level",
			input:       "warn",
			expected:    LevelWarn,
			expectError: false,
		},
		{
			name:        "parse warning level",
			input:       "warning",
			expected:    LevelWarn,
			expectError: false,
		},
		{
			name:        "parse info level",
			input:       "info",
			expected:    LevelInfo,
			expectError: false,
		},
		{
			name:        "parse debug level",
			input:       "debug",
			expected:    LevelDebug,
			expectError: false,
		},
		{
			name:        "parse uppercase level",
			input:       "INFO",
			expected:    LevelInfo,
			expectError: false,
		},
		{
			name:        "parse mixed case level",
			input:       "WaRn",
			expected:    LevelWarn,
			expectError: false,
		},
		{
			name:        "parse invalid level",
			input:       "invalid",
			expected:    Level(0),
			expectError: true,
		},
		{
			name:        "parse empty string",
			input:       "",
			expected:    Level(0),
			expectError: true,
		},
		{
			name:        "parse panic level - not supported",
			input:       "panic",
			expected:    Level(0),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.input)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, level)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelError, "error"},
		{LevelWarn, "warn"},
		{LevelInfo, "info"},
		{LevelDebug, "debug"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestFieldConstructors(t *testing.T) {
	assert.Equal(t, Field{Key: "s", Value: "v"}, String("s", "v"))
	assert.Equal(t, Field{Key: "i", Value: 7}, Int("i", 7))
	assert.Equal(t, Field{Key: "b", Value: true}, Bool("b", true))
	assert.Equal(t, Field{Key: "a", Value: []int{1}}, Any("a", []int{1}))
}

func TestErrFieldUsesConventionalKey(t *testing.T) {
	err := assert.AnError
	field := Err(err)

	assert.Equal(t, "error", field.Key)
	assert.Equal(t, err, field.Value)
}

func TestNopHandlerDropsEverything(t *testing.T) {
	handler := NewNop()

	assert.NotPanics(t, func() {
		handler.Log(context.Background(), LevelError, "dropped")
		handler.SetLevel(LevelDebug)
	})

	assert.False(t, handler.Enabled(LevelError))
	assert.NoError(t, handler.Sync(context.Background()))
}
