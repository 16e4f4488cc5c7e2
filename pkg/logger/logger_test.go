package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Format: "json", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"theme": "dracula", "command": "export"})
	log.Info("stylesheet written")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "stylesheet written", entry["message"])
	require.Equal(t, "dracula", entry["theme"])
	require.Equal(t, "export", entry["command"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "INFO", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.With("file", "orders.yaml").Error(errors.New("boom"), "build failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "build failed", entry["message"])
	require.Equal(t, "orders.yaml", entry["file"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerConsoleFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", Format: "console", NoColor: true, Writer: buf})
	require.NoError(t, err)

	log.Warn("unknown theme")
	out := buf.String()
	require.Contains(t, out, "WRN")
	require.Contains(t, out, "unknown theme")
	require.NotContains(t, out, "\x1b[")
}

func TestLoggerRejectsBadOptions(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)

	_, err = New(Options{Format: "xml"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.Nil(t, log.With("k", "v"))
	log.Info("ignored")
	log.Error(errors.New("ignored"), "ignored")

	Nop().WithFields(map[string]any{"k": 1}).Warn("ignored")
}
