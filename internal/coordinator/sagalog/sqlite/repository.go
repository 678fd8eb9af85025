// Package sqlite provides a SQLite-backed implementation of
// sagalog.Repository and sagalog.Reader.
//
// WAL mode is enabled on Open so that readers never block writers: the
// checkout request writes log rows while the status endpoint may be reading
// them concurrently.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jcmexdev/ecommerce-checkout/internal/coordinator/sagalog"

	// Register the pure-Go SQLite driver. modernc.org/sqlite avoids CGO,
	// which keeps Alpine/Docker builds simple.
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup.
// The table is append-only: each row is an immutable event in the saga's
// lifecycle.
const schema = `
CREATE TABLE IF NOT EXISTS checkout_saga_logs (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Business identifier: the cart ID being checked out.
    -- Not UNIQUE because multiple rows exist per saga (one per transition).
    saga_id         TEXT        NOT NULL,

    -- Lifecycle state at the time this row was written.
    status          TEXT        NOT NULL,

    -- Name of the step that just executed (e.g. "Authorize_Payment_Step").
    current_step    TEXT        NOT NULL DEFAULT '',

    -- JSON payload that started the saga. Written once on STARTED, NULL after.
    payload         TEXT,

    -- JSON array of error strings accumulated during failure/compensation.
    error_messages  TEXT        NOT NULL DEFAULT '[]',

    -- W3C trace_id / span_id from the active OTel span.
    trace_id        TEXT        NOT NULL DEFAULT '',
    span_id         TEXT        NOT NULL DEFAULT '',

    -- RFC3339 stored as TEXT, the SQLite idiom.
    updated_at      TEXT        NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_checkout_saga_logs_saga_id
    ON checkout_saga_logs(saga_id, updated_at);

CREATE INDEX IF NOT EXISTS idx_checkout_saga_logs_trace_id
    ON checkout_saga_logs(trace_id);
`

// Repository is the SQLite implementation of the saga log ports.
type Repository struct {
	db *sql.DB
}

var (
	_ sagalog.Repository = (*Repository)(nil)
	_ sagalog.Reader     = (*Repository)(nil)
)

// Open opens (or creates) the SQLite database at the given path and applies
// the schema.
//
//	repo, err := sqlite.Open("./data/checkout.db")
func Open(path string) (*Repository, error) {
	// The pure-Go driver takes _pragma query parameters for connection state.
	// WAL enables concurrent readers; busy_timeout waits for locks instead of
	// failing immediately.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)

	// Use "sqlite", not "sqlite3", for the modernc driver.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (r *Repository) Close() error {
	return r.db.Close()
}

// Save inserts a new saga log entry. Safe for concurrent use.
func (r *Repository) Save(ctx context.Context, entry *sagalog.SagaLog) error {
	const q = `
		INSERT INTO checkout_saga_logs
			(saga_id, status, current_step, payload, error_messages, trace_id, span_id, updated_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.SagaID,
		string(entry.Status),
		entry.CurrentStep,
		nullableString(entry.Payload),
		entry.ErrorMessages,
		entry.TraceID,
		entry.SpanID,
		entry.UpdatedAt.UTC().Format("2006-01-02T15:04:05.999999999Z"),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save saga log for %q: %w", entry.SagaID, err)
	}
	return nil
}

// GetLatest returns the most recent log entry for a given saga ID.
func (r *Repository) GetLatest(ctx context.Context, sagaID string) (*sagalog.SagaLog, error) {
	const q = `
		SELECT saga_id, status, current_step, COALESCE(payload,''), error_messages,
		       trace_id, span_id, updated_at
		FROM   checkout_saga_logs
		WHERE  saga_id = ?
		ORDER  BY updated_at DESC, id DESC
		LIMIT  1`

	row := r.db.QueryRowContext(ctx, q, sagaID)

	var entry sagalog.SagaLog
	var updatedAt string
	err := row.Scan(
		&entry.SagaID,
		&entry.Status,
		&entry.CurrentStep,
		&entry.Payload,
		&entry.ErrorMessages,
		&entry.TraceID,
		&entry.SpanID,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("sqlite: saga %q not found", sagaID)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: get latest for %q: %w", sagaID, err)
	}

	entry.UpdatedAt, err = parseRFC3339(updatedAt)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// applySchema runs the DDL statements once. Idempotent due to IF NOT EXISTS.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return nil
}

// nullableString returns nil for empty strings so SQLite stores NULL instead
// of an empty TEXT on non-STARTED rows.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
