package settings

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveDefaultAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traverse.toml")
	require.NoError(t, SaveDefault(path))
	require.Error(t, SaveDefault(path))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultSettings(), s)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traverse.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Traversal]\nMonkeyAutoJump = true\n\n[Log]\nLevel = \"debug\"\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	require.True(t, s.Traversal.MonkeyAutoJump)
	require.Equal(t, slog.LevelDebug, s.LogLevel())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Traversal\n"), 0644))
	_, err = Load(path)
	require.ErrorContains(t, err, "error decoding config")
}

func TestLogLevelFallback(t *testing.T) {
	s := DefaultSettings()
	s.Log.Level = "loud"
	require.Equal(t, slog.LevelInfo, s.LogLevel())
}
