// Package queue kapselt den Zugriff auf die externe Task-Queue.
package queue

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrQueueUnavailable wird geliefert, wenn ein Job nicht eingereiht werden konnte.
	ErrQueueUnavailable = errors.New("queue nicht erreichbar")
	ErrJobNotFound      = errors.New("job nicht gefunden")
)

// TaskRef benennt die auszuführende Arbeitseinheit, z.B. "example_task".
type TaskRef string

// JobHandle ist die Referenz, die die Queue nach dem Einreihen zurückgibt.
// EnqueuedAt ist nur beim Einreihen bekannt, Fetch lässt es leer.
type JobHandle struct {
	ID         string     `json:"id"`
	Queue      string     `json:"queue"`
	Task       TaskRef    `json:"task"`
	State      string     `json:"state,omitempty"`
	EnqueuedAt *time.Time `json:"enqueued_at,omitempty"`
}

type Queue interface {
	Name() string
	Enqueue(ctx context.Context, task TaskRef, args ...any) (*JobHandle, error)
	Fetch(ctx context.Context, id string) (*JobHandle, error)
}

type Client interface {
	GetQueue(name string) Queue
	Ping(ctx context.Context) error
	Close() error
}
