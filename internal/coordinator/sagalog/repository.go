package sagalog

import "context"

// Repository is the port for persisting saga log entries. The coordinator
// depends on this abstraction, not on SQLite directly, so the implementation
// can be swapped for Postgres or an in-memory fake in tests.
type Repository interface {
	// Save persists a new log entry. Each call appends a row; the table is
	// an append-only audit log, not an upsert.
	Save(ctx context.Context, entry *SagaLog) error
}

// Reader exposes the query side of the log, used by the HTTP status endpoint.
type Reader interface {
	// GetLatest returns the most recent entry for a saga, or an error when
	// the saga has never been logged.
	GetLatest(ctx context.Context, sagaID string) (*SagaLog, error)
}
