package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitLogger(dir, true))
	t.Cleanup(Close)

	path := LogPath()
	require.NotEmpty(t, path)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "hadikit-"))

	Info("advice requested", "request_id", "abc")
	Debug("debug line")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Logger initialized")
	assert.Contains(t, content, "advice requested")
	assert.Contains(t, content, "abc")
	assert.Contains(t, content, "debug line")
	assert.Empty(t, LogPath(), "Close resets logger")
}

func TestLogger_NoopBeforeInit(t *testing.T) {
	assert.Empty(t, LogPath())
	assert.NotPanics(t, func() {
		Info("nobody listens")
		Error("still nobody", "k", 1)
		Close()
	})
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "****", MaskKey(""))
	assert.Equal(t, "****", MaskKey("short"))
	assert.Equal(t, "AIza...wxyz", MaskKey("AIzaSyD-1234567890wxyz"))
}
