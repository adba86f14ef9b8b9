package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"djp.chapter42.de/taskstarter/internal/data"
	"djp.chapter42.de/taskstarter/internal/logger"
	"djp.chapter42.de/taskstarter/internal/metrics"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "taskstarter/queue"

// TaskEnqueuer wird von *asynq.Client implementiert.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// TaskInspector wird von *asynq.Inspector implementiert.
type TaskInspector interface {
	GetTaskInfo(queue, id string) (*asynq.TaskInfo, error)
	Close() error
}

type redisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type AsynqClient struct {
	enqueuer  TaskEnqueuer
	inspector TaskInspector
	rdb       redisPinger
	taskOpts  []asynq.Option
}

func RedisConnOpt(cfg data.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	}
}

// NewAsynqClient baut den Queue-Client auf. Die Verbindungen zu Redis
// werden vom asynq-Client gepoolt und erst bei Bedarf geöffnet.
func NewAsynqClient(cfg *data.AppConfig) *AsynqClient {
	redisOpt := RedisConnOpt(cfg.Redis)
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: cfg.Redis.DialTimeout,
	})
	return newAsynqClient(asynq.NewClient(redisOpt), asynq.NewInspector(redisOpt), rdb, cfg.Task)
}

func newAsynqClient(enq TaskEnqueuer, insp TaskInspector, rdb redisPinger, taskCfg data.TaskConfig) *AsynqClient {
	var opts []asynq.Option
	if taskCfg.MaxRetry >= 0 {
		opts = append(opts, asynq.MaxRetry(taskCfg.MaxRetry))
	}
	if taskCfg.Timeout > 0 {
		opts = append(opts, asynq.Timeout(taskCfg.Timeout))
	}
	return &AsynqClient{
		enqueuer:  enq,
		inspector: insp,
		rdb:       rdb,
		taskOpts:  opts,
	}
}

func (c *AsynqClient) GetQueue(name string) Queue {
	return &asynqQueue{name: name, client: c}
}

func (c *AsynqClient) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrQueueUnavailable, err)
	}
	return nil
}

func (c *AsynqClient) Close() error {
	return errors.Join(c.enqueuer.Close(), c.inspector.Close(), c.rdb.Close())
}

type asynqQueue struct {
	name   string
	client *AsynqClient
}

func (q *asynqQueue) Name() string {
	return q.name
}

func (q *asynqQueue) Enqueue(ctx context.Context, task TaskRef, args ...any) (*JobHandle, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Queue.Enqueue", trace.WithAttributes(
		attribute.String("queue.name", q.name),
		attribute.String("task.ref", string(task)),
	))
	defer span.End()

	handle, err := q.enqueue(ctx, task, args...)
	if err != nil {
		metrics.EnqueueFailures.WithLabelValues(q.name, string(task)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	metrics.TasksEnqueued.WithLabelValues(q.name, string(task)).Inc()
	span.SetAttributes(attribute.String("job.id", handle.ID))
	span.SetStatus(codes.Ok, "eingereiht")
	return handle, nil
}

func (q *asynqQueue) enqueue(ctx context.Context, task TaskRef, args ...any) (*JobHandle, error) {
	body, err := EncodeArgs(args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueueUnavailable, err)
	}

	id := uuid.NewString()
	opts := append([]asynq.Option{asynq.Queue(q.name), asynq.TaskID(id)}, q.client.taskOpts...)

	info, err := q.client.enqueuer.EnqueueContext(ctx, asynq.NewTask(string(task), body), opts...)
	if err != nil {
		logger.Log.Error("Fehler beim Einreihen des Tasks:", zap.String("queue", q.name), zap.String("task", string(task)), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrQueueUnavailable, err)
	}

	if info.ID != "" {
		id = info.ID
	}
	logger.Log.Debug("Task eingereiht:", zap.String("queue", q.name), zap.String("task", string(task)), zap.String("id", id))

	now := time.Now()
	return &JobHandle{
		ID:         id,
		Queue:      q.name,
		Task:       task,
		State:      stateName(info.State),
		EnqueuedAt: &now,
	}, nil
}

func (q *asynqQueue) Fetch(ctx context.Context, id string) (*JobHandle, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "Queue.Fetch", trace.WithAttributes(
		attribute.String("queue.name", q.name),
		attribute.String("job.id", id),
	))
	defer span.End()

	info, err := q.client.inspector.GetTaskInfo(q.name, id)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrJobNotFound, id)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %w", ErrQueueUnavailable, err)
	}

	return &JobHandle{
		ID:    info.ID,
		Queue: info.Queue,
		Task:  TaskRef(info.Type),
		State: stateName(info.State),
	}, nil
}

// stateName vermeidet den Panic von TaskState.String bei Nullwerten.
func stateName(s asynq.TaskState) string {
	if s == 0 {
		return ""
	}
	return s.String()
}
