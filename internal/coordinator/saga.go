package coordinator

import (
	"context"
	"log/slog"

	"github.com/jcmexdev/ecommerce-checkout/internal/coordinator/sagalog"
)

// Step represents a single unit of work in the saga.
// Compensate undoes the step's effect; steps whose effect needs no undo
// return nil.
type Step interface {
	Name() string
	Execute(ctx context.Context) error
	Compensate(ctx context.Context) error
}

// Orchestrator runs a collection of Steps sequentially. If a step fails, all
// previously successful steps are compensated in reverse order and the step's
// error is returned unwrapped, so callers can match it with errors.Is.
type Orchestrator struct {
	sagaID  string
	payload string
	steps   []Step
	logRepo sagalog.Repository // nil-safe: state transitions skipped if nil
}

// NewOrchestrator builds an orchestrator for one saga execution. The payload
// is stored once in the saga log so the run can be inspected later; pass ""
// to skip it.
func NewOrchestrator(sagaID, payload string, steps []Step, logRepo sagalog.Repository) *Orchestrator {
	return &Orchestrator{
		sagaID:  sagaID,
		payload: payload,
		steps:   steps,
		logRepo: logRepo,
	}
}

// Start runs the saga steps sequentially. Compensation runs only for steps
// that completed before the failing one, in LIFO order.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.record(ctx, sagalog.StatusStarted, "", o.payload, nil)

	var completed []Step

	for _, step := range o.steps {
		slog.InfoContext(ctx, "executing saga step", "saga_id", o.sagaID, "step", step.Name())
		if err := step.Execute(ctx); err != nil {
			slog.WarnContext(ctx, "saga step failed, rolling back",
				"saga_id", o.sagaID, "step", step.Name(), "error", err)
			o.record(ctx, sagalog.StatusCompensating, step.Name(), "", []string{err.Error()})
			o.rollback(ctx, completed)
			o.record(ctx, sagalog.StatusFailed, step.Name(), "", []string{err.Error()})
			return err
		}
		completed = append(completed, step)
		o.record(ctx, sagalog.StatusStepDone, step.Name(), "", nil)
	}

	o.record(ctx, sagalog.StatusCompleted, "", "", nil)
	return nil
}

func (o *Orchestrator) rollback(ctx context.Context, steps []Step) {
	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]
		slog.InfoContext(ctx, "compensating saga step", "saga_id", o.sagaID, "step", step.Name())
		if err := step.Compensate(ctx); err != nil {
			// No retry or dead-letter path exists for failed compensations;
			// the log entry is all an operator gets.
			slog.ErrorContext(ctx, "CRITICAL: saga compensation failed",
				"saga_id", o.sagaID, "step", step.Name(), "error", err)
		}
	}
}

func (o *Orchestrator) record(ctx context.Context, status sagalog.Status, step, payload string, errs []string) {
	if o.logRepo == nil {
		return
	}
	entry := sagalog.NewEntry(ctx, o.sagaID, status, step, payload, errs)
	if err := o.logRepo.Save(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to persist saga log entry",
			"saga_id", o.sagaID, "status", string(status), "error", err)
	}
}
