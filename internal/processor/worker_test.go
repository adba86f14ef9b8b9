package processor

import (
	"context"
	"testing"
	"time"

	"djp.chapter42.de/taskstarter/internal/data"
	"djp.chapter42.de/taskstarter/internal/queue"
	"djp.chapter42.de/taskstarter/internal/tasks"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *data.AppConfig {
	return &data.AppConfig{
		Task:   data.TaskConfig{Queue: "default", Name: "example_task", Arg: 10},
		Worker: data.WorkerConfig{Concurrency: 4, Step: time.Millisecond},
	}
}

func TestServerConfig(t *testing.T) {
	cfg := ServerConfig(testConfig())

	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, map[string]int{"default": 1}, cfg.Queues)
	assert.NotNil(t, cfg.Logger)
	assert.NotNil(t, cfg.ErrorHandler)
}

func TestMuxRoutesExampleTask(t *testing.T) {
	mux := NewMux(testConfig())

	body, err := queue.EncodeArgs(2)
	require.NoError(t, err)

	assert.NoError(t, mux.ProcessTask(context.Background(), asynq.NewTask(tasks.ExampleTaskType, body)))
	assert.Error(t, mux.ProcessTask(context.Background(), asynq.NewTask("unbekannt", body)))
}
