package diag

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		data := []byte("level: warn\nno_color: true\nexit_code: 3\n")
		cfg, err := LoadConfig(data, FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Level)
		assert.True(t, cfg.NoColor)
		assert.False(t, cfg.DetectTerminal)
		assert.Equal(t, 3, cfg.ExitCode)
	})

	t.Run("json", func(t *testing.T) {
		data := []byte(`{"level": "error", "detect_terminal": true}`)
		cfg, err := LoadConfig(data, "JSON")
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Level)
		assert.True(t, cfg.DetectTerminal)
	})

	t.Run("empty data keeps defaults", func(t *testing.T) {
		cfg, err := LoadConfig(nil, "yml")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := LoadConfig([]byte("level = 'warn'"), "toml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), errMsgUnsupportedFormat)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := LoadConfig([]byte(`{"level": `), FormatJSON)
		require.Error(t, err)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := LoadConfig([]byte("level: loud\n"), FormatYAML)
		require.Error(t, err)
	})

	t.Run("exit code out of range", func(t *testing.T) {
		_, err := LoadConfig([]byte("exit_code: 300\n"), FormatYAML)
		require.Error(t, err)
	})
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diag.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: info\n"), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Level)

	_, err = LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	require.Error(t, validateConfig(nil))
	require.NoError(t, validateConfig(DefaultConfig()))
	require.NoError(t, validateConfig(&Config{}))
	for _, level := range []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"} {
		assert.NoError(t, validateConfig(&Config{Level: level}), level)
	}
	require.Error(t, validateConfig(&Config{ExitCode: -1}))
}

func TestParseLevel(t *testing.T) {
	l, err := parseLevel("")
	require.NoError(t, err)
	assert.Equal(t, SeverityDebug.Level(), l)

	l, err = parseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, SeverityWarning.Level(), l)

	_, err = parseLevel("nope")
	require.Error(t, err)
}
