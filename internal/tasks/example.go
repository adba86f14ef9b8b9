package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"djp.chapter42.de/taskstarter/internal/logger"
	"djp.chapter42.de/taskstarter/internal/metrics"
	"djp.chapter42.de/taskstarter/internal/queue"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const ExampleTaskType = "example_task"

type ExampleResult struct {
	Steps int `json:"steps"`
}

// ExampleTask arbeitet n Schritte der Dauer Step ab.
type ExampleTask struct {
	Step time.Duration
}

func NewExampleTask(step time.Duration) *ExampleTask {
	return &ExampleTask{Step: step}
}

func (e *ExampleTask) ProcessTask(ctx context.Context, t *asynq.Task) error {
	err := e.process(ctx, t)
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.TasksProcessed.WithLabelValues(t.Type(), status).Inc()
	return err
}

func (e *ExampleTask) process(ctx context.Context, t *asynq.Task) error {
	id, _ := asynq.GetTaskID(ctx)

	n, err := queue.DecodeIntArg(t.Payload())
	if err != nil {
		logger.Log.Error("Ungültige Task-Argumente:", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}
	if n < 0 {
		logger.Log.Error("Negative Schrittzahl:", zap.String("id", id), zap.Int("n", n))
		return fmt.Errorf("schrittzahl darf nicht negativ sein (%d): %w", n, asynq.SkipRetry)
	}

	logger.Log.Info("Task gestartet:", zap.String("id", id), zap.Int("n", n))

	for step := 1; step <= n; step++ {
		select {
		case <-ctx.Done():
			logger.Log.Warn("Task abgebrochen:", zap.String("id", id), zap.Int("step", step), zap.Error(ctx.Err()))
			return ctx.Err()
		case <-time.After(e.Step):
		}
		logger.Log.Debug("Schritt erledigt:", zap.String("id", id), zap.Int("step", step), zap.Int("n", n))
	}

	if rw := t.ResultWriter(); rw != nil {
		result, err := json.Marshal(ExampleResult{Steps: n})
		if err != nil {
			return err
		}
		if _, err := rw.Write(result); err != nil {
			return fmt.Errorf("fehler beim Schreiben des Ergebnisses: %w", err)
		}
	}

	logger.Log.Info("Task abgeschlossen:", zap.String("id", id), zap.Int("steps", n))
	return nil
}
