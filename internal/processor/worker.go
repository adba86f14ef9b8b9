package processor

import (
	"context"

	"djp.chapter42.de/taskstarter/internal/data"
	"djp.chapter42.de/taskstarter/internal/logger"
	"djp.chapter42.de/taskstarter/internal/queue"
	"djp.chapter42.de/taskstarter/internal/tasks"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ServerConfig leitet die Worker-Konfiguration ab. Die Anzahl paralleler
// Worker entspricht worker.concurrency, gelesen wird nur task.queue.
func ServerConfig(cfg *data.AppConfig) asynq.Config {
	logLevel := asynq.InfoLevel
	if logger.IsDebug() {
		logLevel = asynq.DebugLevel
	}

	return asynq.Config{
		Concurrency: cfg.Worker.Concurrency,
		Queues:      map[string]int{cfg.Task.Queue: 1},
		Logger:      logger.Log.Sugar(),
		LogLevel:    logLevel,
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			id, _ := asynq.GetTaskID(ctx)
			retried, _ := asynq.GetRetryCount(ctx)
			logger.Log.Error("Task fehlgeschlagen:", zap.String("id", id), zap.String("task", task.Type()), zap.Int("retried", retried), zap.Error(err))
		}),
	}
}

func NewServer(cfg *data.AppConfig) *asynq.Server {
	return asynq.NewServer(queue.RedisConnOpt(cfg.Redis), ServerConfig(cfg))
}

func NewMux(cfg *data.AppConfig) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Handle(tasks.ExampleTaskType, tasks.NewExampleTask(cfg.Worker.Step))

	if cfg.Task.Name != tasks.ExampleTaskType {
		logger.Log.Warn("Für den konfigurierten Task ist kein Handler registriert:", zap.String("task", cfg.Task.Name))
	}
	return mux
}

// Run blockiert, bis der Worker per SIGINT/SIGTERM beendet wird.
func Run(cfg *data.AppConfig) error {
	logger.Log.Info("Worker startet...",
		zap.String("queue", cfg.Task.Queue),
		zap.Int("concurrency", cfg.Worker.Concurrency),
		zap.String("redis", cfg.Redis.Addr),
	)
	return NewServer(cfg).Run(NewMux(cfg))
}
