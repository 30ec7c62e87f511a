package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	lv, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lv)

	lv, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lv)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestTextAppLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewTextAppLogger(&buf, "warn")
	require.NoError(t, err)

	l.Info("出力されない")
	l.With("session_id", "abc").Warn("出力される", "count", 3)

	out := buf.String()
	assert.NotContains(t, out, "出力されない")
	assert.Contains(t, out, "出力される")
	assert.Contains(t, out, "session_id=abc")
	assert.Contains(t, out, "count=3")
}
