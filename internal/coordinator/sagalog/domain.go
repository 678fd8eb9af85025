// Package sagalog defines the domain types for the checkout saga log.
//
// The log is a durable audit trail of every state transition a checkout saga
// goes through. It serves two purposes:
//
//  1. Observability: query the DB to see exactly where a checkout is (or
//     failed) and correlate it with a distributed trace via the trace_id
//     field.
//
//  2. Forensics: when a stock commit failed after a payment authorization,
//     the COMPENSATING row proves the cancellation was attempted.
package sagalog

import "time"

// Status represents the lifecycle state of a saga execution.
type Status string

const (
	StatusStarted      Status = "STARTED"
	StatusStepDone     Status = "STEP_DONE"
	StatusCompleted    Status = "COMPLETED"
	StatusCompensating Status = "COMPENSATING"
	StatusFailed       Status = "FAILED"
)

// SagaLog is a single row in the checkout_saga_logs table, a point-in-time
// snapshot of a saga execution.
type SagaLog struct {
	// SagaID uniquely identifies the saga execution. The checkout service
	// uses the cart ID so rows can be joined with business data.
	SagaID string

	// Status is the lifecycle state at the time this row was written.
	Status Status

	// CurrentStep is the name of the step that was just executed or failed.
	CurrentStep string

	// Payload is the JSON-serialised input that started the saga.
	// Stored once at creation, empty afterwards.
	Payload string

	// ErrorMessages accumulates failure details as a JSON array of strings.
	ErrorMessages string

	// TraceID is the W3C trace ID of the OpenTelemetry span active when this
	// entry was written, for jumping from a row to the full trace.
	TraceID string

	// SpanID pinpoints the exact span within the trace.
	SpanID string

	// UpdatedAt is the wall-clock time of this log entry.
	UpdatedAt time.Time
}
