package logging

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestInit_EmptyPathDisables(t *testing.T) {
	Init(Config{FilePath: filepath.Join(t.TempDir(), "dialer.log")})
	assert.Assert(t, Enabled())

	Init(Config{})
	assert.Assert(t, !Enabled())
	assert.Assert(t, Get() != nil)
}

func TestInitWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, Config{Level: slog.LevelInfo})
	t.Cleanup(func() { Init(Config{}) })

	Debug("hidden", "k", 1)
	Info("shown", "k", 2)

	assert.Assert(t, !bytes.Contains(buf.Bytes(), []byte("hidden")))
	assert.Assert(t, is.Contains(buf.String(), "msg=shown"))
	assert.Assert(t, is.Contains(buf.String(), "k=2"))
}

func TestInitWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, Config{Level: slog.LevelDebug, JSON: true})
	t.Cleanup(func() { Init(Config{}) })

	Warn("column missing", "column", "callable_extra_number")

	assert.Assert(t, is.Contains(buf.String(), `"column":"callable_extra_number"`))
	assert.Assert(t, is.Contains(buf.String(), `"level":"WARN"`))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, ParseLevel(tt.in), tt.want)
		})
	}
}
