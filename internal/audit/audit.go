// Package audit persists calculation records append-only. The engine never
// reads them back; a failed write is logged and swallowed, never surfaced to
// the calculation path.
package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"Plenum/internal/calc/matdb"
	"Plenum/internal/calc/vessel"
)

// Entry is one append-only audit record.
type Entry struct {
	User            string    `json:"user"`
	Table           string    `json:"table"`
	RecordID        string    `json:"record_id"`
	CalculationType string    `json:"calculation_type"`
	InputSnapshot   any       `json:"input_snapshot"`
	Output          any       `json:"output"`
	CodeReference   string    `json:"code_reference"`
	EngineVersion   string    `json:"engine_version"`
	DatabaseVersion string    `json:"database_version"`
	CreatedAt       time.Time `json:"created_at"`
}

type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// EntryFor snapshots a full calculation bundle into an audit entry.
func EntryFor(user string, in vessel.Input, full vessel.FullResult) Entry {
	return Entry{
		User:            user,
		Table:           "vessel_components",
		RecordID:        in.ComponentID,
		CalculationType: "full_component_calculation",
		InputSnapshot:   in,
		Output:          full,
		CodeReference:   full.TRequired.CodeReference,
		EngineVersion:   vessel.EngineVersion,
		DatabaseVersion: matdb.Version,
		CreatedAt:       time.Now().UTC(),
	}
}

// PostgresRecorder appends entries to the calculation_audit table.
type PostgresRecorder struct {
	db *sql.DB
}

func NewPostgresRecorder(db *sql.DB) *PostgresRecorder {
	return &PostgresRecorder{db: db}
}

func (r *PostgresRecorder) Record(ctx context.Context, e Entry) error {
	input, err := json.Marshal(e.InputSnapshot)
	if err != nil {
		return fmt.Errorf("marshal input snapshot: %w", err)
	}
	output, err := json.Marshal(e.Output)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	query := `INSERT INTO calculation_audit
		(username, table_name, record_id, calculation_type, input_snapshot, output, code_reference, engine_version, database_version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.db.ExecContext(ctx, query,
		e.User, e.Table, e.RecordID, e.CalculationType, input, output,
		e.CodeReference, e.EngineVersion, e.DatabaseVersion, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

// AsyncRecorder wraps another recorder with fire-and-forget semantics: the
// write happens on its own goroutine with its own deadline, and Record always
// returns nil. The calculation result must never block on, or fail because
// of, the audit trail.
type AsyncRecorder struct {
	inner   Recorder
	log     *zap.Logger
	timeout time.Duration
}

func NewAsyncRecorder(inner Recorder, log *zap.Logger) *AsyncRecorder {
	return &AsyncRecorder{inner: inner, log: log, timeout: 10 * time.Second}
}

func (a *AsyncRecorder) Record(_ context.Context, e Entry) error {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		if err := a.inner.Record(ctx, e); err != nil {
			a.log.Warn("audit record dropped",
				zap.String("record_id", e.RecordID),
				zap.String("calculation_type", e.CalculationType),
				zap.Error(err))
		}
	}()
	return nil
}
