package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": LevelDebug,
		"warn":  LevelWarn,
		"error": LevelError,
		"info":  LevelInfo,
		"bogus": LevelInfo,
		"":      LevelInfo,
	}
	for s, want := range cases {
		assert.Equal(t, want, ParseLevel(s), "ParseLevel(%q)", s)
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}

func TestStdFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)
	l.Debug("should not appear")
	l.Info("should not appear either")
	assert.Empty(t, buf.String())

	l.Warn("warn visible")
	assert.Contains(t, buf.String(), "WARN: warn visible")
}

func TestStdFormatsArgs(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)
	l.Info("count=%d name=%s", 3, "vec")
	assert.Contains(t, buf.String(), "count=3 name=vec")
}

func TestStdWithFieldAddsContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf).WithField("vector", 7)
	l.Info("pushed")
	out := buf.String()
	assert.Contains(t, out, "pushed")
	assert.Contains(t, out, "vector")
	assert.Contains(t, out, "7")
}

func TestStdWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	base := New(LevelDebug, &buf)
	child := base.WithField("op", "push")
	base.Info("base message")
	child.Info("child message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	a := assert.New(t)
	a.Len(lines, 2)
	a.NotContains(lines[0], "op")
	a.Contains(lines[1], "op")
}
