// Package queuetest stellt Mocks des Queue-Clients für Tests bereit.
package queuetest

import (
	"context"

	"djp.chapter42.de/taskstarter/internal/queue"
	"github.com/stretchr/testify/mock"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetQueue(name string) queue.Queue {
	args := m.Called(name)
	return args.Get(0).(queue.Queue)
}

func (m *MockClient) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockClient) Close() error {
	return m.Called().Error(0)
}

type MockQueue struct {
	mock.Mock
	QueueName string
}

func (m *MockQueue) Name() string {
	return m.QueueName
}

func (m *MockQueue) Enqueue(ctx context.Context, task queue.TaskRef, args ...any) (*queue.JobHandle, error) {
	ret := m.Called(task, args)
	job, _ := ret.Get(0).(*queue.JobHandle)
	return job, ret.Error(1)
}

func (m *MockQueue) Fetch(ctx context.Context, id string) (*queue.JobHandle, error) {
	ret := m.Called(id)
	job, _ := ret.Get(0).(*queue.JobHandle)
	return job, ret.Error(1)
}

// NewClientWithQueue liefert einen Client, der für name stets q zurückgibt.
func NewClientWithQueue(name string) (*MockClient, *MockQueue) {
	q := &MockQueue{QueueName: name}
	c := &MockClient{}
	c.On("GetQueue", name).Return(q)
	return c, q
}
