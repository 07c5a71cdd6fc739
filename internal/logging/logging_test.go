package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "WARN")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("small question bank", "size", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "small question bank")
	assert.Contains(t, out, "size=3")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quizbank.log")
	logger, closer, err := Open(path, "debug", nil)
	require.NoError(t, err)
	logger.Debug("session started", "questions", 4)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
}

func TestOpen_Fallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := Open("", "info", &buf)
	require.NoError(t, err)
	logger.Info("listening")
	assert.NoError(t, closer.Close())
	assert.Contains(t, buf.String(), "listening")
}
