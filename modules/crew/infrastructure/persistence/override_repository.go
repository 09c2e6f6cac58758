package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/crewdeck/crewdeck/modules/crew/domain/entities/override"
	"github.com/crewdeck/crewdeck/pkg/composables"
)

const (
	selectOverrideColumns = `technician_id, date, status, note, created_at, updated_at`
)

type PgOverrideRepository struct{}

func NewOverrideRepository() override.Repository {
	return &PgOverrideRepository{}
}

func (r *PgOverrideRepository) GetAll(ctx context.Context) ([]*override.Override, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx,
		`SELECT `+selectOverrideColumns+` FROM availability_overrides ORDER BY date, technician_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOverrides(rows)
}

// GetRange returns overrides whose day falls inside [from, to]. Day keys are
// ISO dates, so lexical comparison is date comparison.
func (r *PgOverrideRepository) GetRange(ctx context.Context, from, to string) ([]*override.Override, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx,
		`SELECT `+selectOverrideColumns+` FROM availability_overrides WHERE date >= $1 AND date <= $2 ORDER BY date, technician_id`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOverrides(rows)
}

func (r *PgOverrideRepository) GetByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*override.Override, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx,
		`SELECT `+selectOverrideColumns+` FROM availability_overrides WHERE technician_id = $1 ORDER BY date`,
		technicianID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOverrides(rows)
}

func (r *PgOverrideRepository) Upsert(ctx context.Context, o *override.Override) (*override.Override, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx, `
		INSERT INTO availability_overrides (technician_id, date, status, note)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (technician_id, date)
		DO UPDATE SET status = EXCLUDED.status, note = EXCLUDED.note, updated_at = now()
		RETURNING `+selectOverrideColumns,
		o.TechnicianID, o.Date, string(o.Status), nullableString(o.Note),
	)
	return mapOverride(row)
}

func (r *PgOverrideRepository) Delete(ctx context.Context, technicianID uuid.UUID, date string) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx,
		`DELETE FROM availability_overrides WHERE technician_id = $1 AND date = $2`,
		technicianID, date,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return override.ErrNotFound
	}
	return nil
}

func collectOverrides(rows pgx.Rows) ([]*override.Override, error) {
	var overrides []*override.Override
	for rows.Next() {
		o, err := mapOverride(rows)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}
	return overrides, rows.Err()
}
