package logger

import (
	"os"
	"path/filepath"
	"testing"

	"djp.chapter42.de/taskstarter/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerLevels(t *testing.T) {
	InitLogger(true, data.LogConfig{})
	assert.True(t, IsDebug())

	InitLogger(false, data.LogConfig{})
	assert.False(t, IsDebug())

	SetDebug(true)
	assert.True(t, IsDebug())
	SetDebug(false)
}

func TestInitLoggerWritesFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "taskstarter.log")

	InitLogger(false, data.LogConfig{File: logFile, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})
	Log.Info("Testeintrag")
	_ = Log.Sync()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Testeintrag")
	assert.Contains(t, string(content), `"level":"info"`)
}
