package tasks

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lysyi3m/podcast-comb/app/failure"
)

type TaskType string

const (
	TaskTypeProcessPodcast    TaskType = "process_podcast"
	TaskTypeSyncPodcastConfig TaskType = "sync_podcast_config"
)

const (
	DefaultMaxRetries = 3
	maxRetryDelay     = 30 * time.Second
)

type TaskInterface interface {
	Execute(ctx context.Context) error
	GetID() string
	GetType() TaskType
	GetPodcastName() string
	GetRetryCount() int
	ShouldRetry(err error) bool
	NextRetry() time.Duration
	Start()
	GetDuration() time.Duration
}

// Task carries the bookkeeping shared by all podcast tasks.
type Task struct {
	ID          string
	Type        TaskType
	PodcastName string
	RetryCount  int
	StartedAt   *time.Time
}

func NewTask(taskType TaskType, podcastName string) Task {
	return Task{
		ID:          fmt.Sprintf("%s-%d-%d", podcastName, time.Now().UnixNano(), rand.Intn(10000)),
		Type:        taskType,
		PodcastName: podcastName,
	}
}

func (t *Task) GetID() string {
	return t.ID
}

func (t *Task) GetType() TaskType {
	return t.Type
}

func (t *Task) GetPodcastName() string {
	return t.PodcastName
}

func (t *Task) GetRetryCount() int {
	return t.RetryCount
}

// ShouldRetry reports whether err is worth another attempt. Only transport
// and storage errors qualify: a document that failed to parse or lacks a
// required field waits for the next scheduled refresh.
func (t *Task) ShouldRetry(err error) bool {
	if err == nil || t.RetryCount >= DefaultMaxRetries || errors.Is(err, context.Canceled) {
		return false
	}

	switch failure.KindOf(err) {
	case failure.KindMalformedDocument, failure.KindMissingRequiredField, failure.KindInvalidArgument:
		return false
	}
	return true
}

// NextRetry counts a retry and returns how long to wait before it. The delay
// doubles from one second up to maxRetryDelay.
func (t *Task) NextRetry() time.Duration {
	t.RetryCount++
	delay := time.Second << uint(t.RetryCount-1)
	if delay > maxRetryDelay {
		delay = maxRetryDelay
	}
	return delay
}

func (t *Task) Start() {
	now := time.Now()
	t.StartedAt = &now
}

func (t *Task) GetDuration() time.Duration {
	if t.StartedAt == nil {
		return 0
	}
	return time.Since(*t.StartedAt)
}
