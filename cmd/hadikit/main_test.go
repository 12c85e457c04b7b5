package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig пишет минимальный конфиг без рабочего ключа модели.
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
models:
  default_chat: offline
  definitions:
    offline: {provider: openai, model_name: gpt-4o-mini, api_key: ""}
ui:
  markdown_style: ""
app:
  log_dir: `+filepath.Join(dir, "logs")+`
`), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCatalogCmd_Filters(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, "catalog", "--config", cfg, "--category", "Football", "--search", "barcelona")
	require.NoError(t, err)
	assert.Contains(t, out, "Barcelona Away Black 25/26")
	assert.Contains(t, out, "4 kits")
	assert.NotContains(t, out, "Argentina")

	out, err = execute(t, "catalog", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "28 kits")
	assert.Contains(t, out, "TK.1100.00")
}

func TestCatalogCmd_EmptyAndInvalid(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, "catalog", "--config", cfg, "-s", "zzz")
	require.NoError(t, err)
	assert.Equal(t, "No Gear Found", strings.TrimSpace(out))

	_, err = execute(t, "catalog", "--config", cfg, "--category", "Cricket")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestAskCmd_FallbackWhenOffline(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, "ask", "--config", cfg, "need", "a", "retro", "kit")
	require.NoError(t, err)
	assert.Contains(t, out, "The AI stylist is currently offline.")
}

func TestRootCmd_MissingConfigFlag(t *testing.T) {
	_, err := execute(t, "catalog", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}
