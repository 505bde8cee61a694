// Package queue defines the background jobs the API hands to the worker.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// RenumberUnitTask rewrites the file numbers of one unit to a gapless 1..n sequence.
	RenumberUnitTask = "unit:renumber"

	renumberMaxRetry  = 3
	renumberUniqueTTL = time.Minute
)

// RenumberPayload identifies the unit a renumber job works on.
type RenumberPayload struct {
	UnitID int64 `json:"unit_id"`
}

// Enqueuer is the subset of *asynq.Client used to schedule tasks.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// NewRenumberTask builds the task for payload.
func NewRenumberTask(payload RenumberPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return asynq.NewTask(RenumberUnitTask, data), nil
}

// EnqueueRenumber enqueues a renumber job. A job already pending for the same unit
// is reported as success.
func EnqueueRenumber(ctx context.Context, client Enqueuer, payload RenumberPayload) error {
	task, err := NewRenumberTask(payload)
	if err != nil {
		return err
	}
	_, err = client.EnqueueContext(ctx, task,
		asynq.MaxRetry(renumberMaxRetry),
		asynq.Unique(renumberUniqueTTL),
	)
	if err != nil && !errors.Is(err, asynq.ErrDuplicateTask) {
		return fmt.Errorf("enqueue renumber task: %w", err)
	}
	return nil
}

// Scheduler schedules renumber jobs for the HTTP layer and the CLI.
type Scheduler struct {
	client Enqueuer
}

// NewScheduler wraps an asynq client.
func NewScheduler(client Enqueuer) *Scheduler {
	return &Scheduler{client: client}
}

// ScheduleRenumber enqueues a renumber job for unitID.
func (s *Scheduler) ScheduleRenumber(ctx context.Context, unitID int64) error {
	return EnqueueRenumber(ctx, s.client, RenumberPayload{UnitID: unitID})
}
