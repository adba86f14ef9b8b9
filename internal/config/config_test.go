package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"djp.chapter42.de/taskstarter/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	v := New(filepath.Join(t.TempDir(), "fehlt.yaml"))
	// Eine explizit angegebene, aber fehlende Datei ist ein Lesefehler.
	_, err := Load(v, zap.NewNop())
	assert.Error(t, err)

	cfg, err := Decode(New(""))
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "default", cfg.Task.Queue)
	assert.Equal(t, "example_task", cfg.Task.Name)
	assert.Equal(t, 10, cfg.Task.Arg)
	assert.Equal(t, 3, cfg.Task.MaxRetry)
	assert.Equal(t, 30*time.Minute, cfg.Task.Timeout)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, 10, cfg.Worker.Concurrency)
	assert.Equal(t, time.Second, cfg.Worker.Step)
	assert.Empty(t, cfg.CORS.AllowOrigins)
}

func TestLoadFromFile(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "taskstarter.cfg.yaml")
	content := `
port: "9000"
debug: true
redis:
  addr: "redis:6379"
  db: 2
task:
  queue: "reports"
  arg: 42
worker:
  concurrency: 4
  step: 250ms
cors:
  allow_origins:
    - "https://example.org"
`
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0644))

	cfg, err := Load(New(cfgFile), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "reports", cfg.Task.Queue)
	assert.Equal(t, "example_task", cfg.Task.Name)
	assert.Equal(t, 42, cfg.Task.Arg)
	assert.Equal(t, 4, cfg.Worker.Concurrency)
	assert.Equal(t, 250*time.Millisecond, cfg.Worker.Step)
	assert.Equal(t, []string{"https://example.org"}, cfg.CORS.AllowOrigins)
}

func TestLoadFromCfgFile(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), DefaultConfigName)
	require.NoError(t, os.WriteFile(cfgFile, []byte("port: \"5000\"\ntask:\n  arg: 3\n"), 0644))

	cfg, err := Load(New(cfgFile), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 3, cfg.Task.Arg)
	assert.Equal(t, "default", cfg.Task.Queue)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("TASKSTARTER_REDIS_ADDR", "10.0.0.5:6380")
	t.Setenv("TASKSTARTER_TASK_ARG", "7")

	cfg, err := Decode(New(""))
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5:6380", cfg.Redis.Addr)
	assert.Equal(t, 7, cfg.Task.Arg)
}

func TestDecodeRejectsInvalidValues(t *testing.T) {
	v := New("")
	v.Set("task.queue", "")
	_, err := Decode(v)
	assert.ErrorContains(t, err, "task.queue")

	v = New("")
	v.Set("worker.concurrency", 0)
	_, err = Decode(v)
	assert.ErrorContains(t, err, "worker.concurrency")
}

func TestInitConfigSetsGlobals(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "taskstarter.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("port: \"5000\"\n"), 0644))

	require.NoError(t, InitConfig(zap.NewNop(), cfgFile))
	require.NotNil(t, Config)
	require.NotNil(t, Viper)
	assert.Equal(t, "5000", Config.Port)
}

func TestWatchDebugWithoutFile(t *testing.T) {
	assert.False(t, WatchDebug(nil))
	assert.False(t, WatchDebug(New("")))
}

func TestWatchDebugAppliesChange(t *testing.T) {
	logger.SetDebug(false)
	t.Cleanup(func() { logger.SetDebug(false) })

	cfgFile := filepath.Join(t.TempDir(), DefaultConfigName)
	require.NoError(t, os.WriteFile(cfgFile, []byte("debug: false\n"), 0644))

	v := New(cfgFile)
	_, err := Load(v, zap.NewNop())
	require.NoError(t, err)
	require.True(t, WatchDebug(v))
	assert.False(t, logger.IsDebug())

	require.NoError(t, os.WriteFile(cfgFile, []byte("debug: true\n"), 0644))
	assert.Eventually(t, logger.IsDebug, 5*time.Second, 50*time.Millisecond)
}
