package logging

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcare/pawpal/internal/domain"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestLogger_Info_WritesGlobalAndOwnerLogs(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer logger.Close()

	logger.Info("Amelia", "task", "created #1")

	global, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.Contains(t, string(global), "[INFO] [Amelia]")
	assert.Contains(t, string(global), "[task] created #1")

	owner, err := os.ReadFile(domain.OwnerLogPath(dataDir, "Amelia"))
	require.NoError(t, err)
	assert.Contains(t, string(owner), "created #1")
}

func TestLogger_Info_EmptyOwnerIsGlobalOnly(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer logger.Close()

	logger.Info("", "seed", "imported 1 owner(s)")

	global, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.Contains(t, string(global), "[global] [seed]")

	entries, err := os.ReadDir(dataDir + "/logs")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "pawpal.log", entries[0].Name())
}

func TestLogger_LevelFiltering(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelWarn)
	defer logger.Close()

	logger.Debug("", "plan", "below threshold")
	logger.Info("", "plan", "below threshold")
	logger.Warn("", "plan", "kept")

	global, err := os.ReadFile(domain.GlobalLogPath(dataDir))
	require.NoError(t, err)
	assert.NotContains(t, string(global), "below threshold")
	assert.Equal(t, 1, strings.Count(string(global), "kept"))
}

func TestLogger_DisabledWithoutDataDir(t *testing.T) {
	logger := New("", slog.LevelInfo)
	// Must not panic or create files.
	logger.Info("Amelia", "task", "ignored")
	require.NoError(t, logger.Close())
}
