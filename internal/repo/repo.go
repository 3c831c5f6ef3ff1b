package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"Plenum/internal/calc/vessel"
)

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
}

// ComponentRecord is one stored vessel component: the engineering input the
// engine is replayed against, plus bookkeeping.
type ComponentRecord struct {
	ID        string       `json:"id"`
	VesselTag string       `json:"vessel_tag"`
	Input     vessel.Input `json:"input"`
	UpdatedBy string       `json:"updated_by,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type ComponentRepository interface {
	SaveComponent(ctx context.Context, rec ComponentRecord) error
	GetComponent(ctx context.Context, id string) (ComponentRecord, error)
	ListComponents(ctx context.Context, vesselTag string) ([]ComponentRecord, error)
}

type PostgresDB struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresDB {
	return &PostgresDB{db: db}
}

func (r *PostgresDB) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresDB) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresDB) SaveComponent(ctx context.Context, rec ComponentRecord) error {
	input, err := json.Marshal(rec.Input)
	if err != nil {
		return fmt.Errorf("marshal component input: %w", err)
	}
	query := `INSERT INTO components (id, vessel_tag, input, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			vessel_tag = EXCLUDED.vessel_tag,
			input = EXCLUDED.input,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at`
	_, err = r.db.ExecContext(ctx, query, rec.ID, rec.VesselTag, input, rec.UpdatedBy, rec.UpdatedAt)
	return err
}

func (r *PostgresDB) GetComponent(ctx context.Context, id string) (ComponentRecord, error) {
	var rec ComponentRecord
	var input []byte
	query := "SELECT id, vessel_tag, input, updated_by, updated_at FROM components WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.VesselTag, &input, &rec.UpdatedBy, &rec.UpdatedAt)
	if err != nil {
		return ComponentRecord{}, err
	}
	if err := json.Unmarshal(input, &rec.Input); err != nil {
		return ComponentRecord{}, fmt.Errorf("unmarshal component input: %w", err)
	}
	return rec, nil
}

func (r *PostgresDB) ListComponents(ctx context.Context, vesselTag string) ([]ComponentRecord, error) {
	query := "SELECT id, vessel_tag, input, updated_by, updated_at FROM components"
	args := []any{}
	if vesselTag != "" {
		query += " WHERE vessel_tag=$1"
		args = append(args, vesselTag)
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ComponentRecord
	for rows.Next() {
		var rec ComponentRecord
		var input []byte
		if err := rows.Scan(&rec.ID, &rec.VesselTag, &input, &rec.UpdatedBy, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(input, &rec.Input); err != nil {
			return nil, fmt.Errorf("unmarshal component input: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
