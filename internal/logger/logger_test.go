package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedLogger(buf *bytes.Buffer, verbose bool) *Logger {
	l := New(buf, verbose, false)
	l.now = func() time.Time {
		return time.Date(2024, 1, 2, 15, 4, 5, 6_000_000, time.UTC)
	}
	return l
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, false)

	l.Info("scanning %s", "root")
	assert.Equal(t, "[15:04:05.006 INFO] scanning root\n", buf.String())
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, false)

	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l.WithLevel(LevelWarn)
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown too")
	assert.Equal(t, "[15:04:05.006 WARN] shown\n[15:04:05.006 ERROR] shown too\n", buf.String())

	buf.Reset()
	l.SetLevel("none")
	l.Error("silenced")
	assert.Empty(t, buf.String())
}

func TestLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, true)

	assert.True(t, l.Verbose())
	l.Debug("details")
	assert.Equal(t, "[15:04:05.006 DEBUG] details\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelNone, ParseLevel("off"))
	assert.Equal(t, LevelInfo, ParseLevel("chatty"))
}
