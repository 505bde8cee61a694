// Package worker runs the background jobs scheduled through the queue package.
package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"archiveapi/internal/queue"
)

// Renumberer rewrites a unit's file numbers and reports how many records changed.
type Renumberer interface {
	Renumber(ctx context.Context, unitID int64) (int, error)
}

// Processor is plugged into the asynq worker loop.
type Processor struct {
	archives Renumberer
	log      *zap.Logger
}

// NewProcessor constructs a worker processor.
func NewProcessor(archives Renumberer, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{archives: archives, log: log}
}

// Handler registers the job handlers.
func (p *Processor) Handler() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.RenumberUnitTask, p.handleRenumber)
	return mux
}

func (p *Processor) handleRenumber(ctx context.Context, task *asynq.Task) error {
	var payload queue.RenumberPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.UnitID <= 0 {
		return fmt.Errorf("invalid unit id %d: %w", payload.UnitID, asynq.SkipRetry)
	}

	changed, err := p.archives.Renumber(ctx, payload.UnitID)
	if err != nil {
		p.log.Error("renumber failed", zap.Int64("unit_id", payload.UnitID), zap.Error(err))
		return err
	}
	p.log.Info("renumber done", zap.Int64("unit_id", payload.UnitID), zap.Int("changed", changed))
	return nil
}
