package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/crewdeck/crewdeck/modules/crew/domain/aggregates/technician"
	"github.com/crewdeck/crewdeck/pkg/composables"
)

const (
	selectTechnicianColumns = `id, first_name, last_name, email, phone, department, employment, skills, created_at, updated_at`
)

type PgTechnicianRepository struct{}

func NewTechnicianRepository() technician.Repository {
	return &PgTechnicianRepository{}
}

func (r *PgTechnicianRepository) GetByID(ctx context.Context, id uuid.UUID) (*technician.Technician, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx,
		`SELECT `+selectTechnicianColumns+` FROM technicians WHERE id = $1`, id)
	return scanTechnician(row)
}

func (r *PgTechnicianRepository) GetAll(ctx context.Context) ([]*technician.Technician, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx,
		`SELECT `+selectTechnicianColumns+` FROM technicians ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTechnicians(rows)
}

func (r *PgTechnicianRepository) GetByDepartment(ctx context.Context, department string) ([]*technician.Technician, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx,
		`SELECT `+selectTechnicianColumns+` FROM technicians WHERE department = $1 ORDER BY last_name, first_name`,
		department,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTechnicians(rows)
}

func (r *PgTechnicianRepository) Create(ctx context.Context, t *technician.Technician) (*technician.Technician, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx, `
		INSERT INTO technicians (id, first_name, last_name, email, phone, department, employment, skills)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+selectTechnicianColumns,
		newOrExistingID(t.ID), t.FirstName, t.LastName, t.Email, nullableString(t.Phone),
		t.Department, string(t.Employment), t.Skills,
	)
	return scanTechnician(row)
}

func (r *PgTechnicianRepository) Update(ctx context.Context, t *technician.Technician) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `
		UPDATE technicians
		SET first_name = $2, last_name = $3, email = $4, phone = $5, department = $6, employment = $7, skills = $8, updated_at = now()
		WHERE id = $1`,
		t.ID, t.FirstName, t.LastName, t.Email, nullableString(t.Phone),
		t.Department, string(t.Employment), t.Skills,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return technician.ErrNotFound
	}
	return nil
}

func (r *PgTechnicianRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM technicians WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return technician.ErrNotFound
	}
	return nil
}

func collectTechnicians(rows pgx.Rows) ([]*technician.Technician, error) {
	var technicians []*technician.Technician
	for rows.Next() {
		t, err := scanTechnician(rows)
		if err != nil {
			return nil, err
		}
		technicians = append(technicians, t)
	}
	return technicians, rows.Err()
}

func scanTechnician(row pgx.Row) (*technician.Technician, error) {
	t, err := mapTechnician(row)
	if err == pgx.ErrNoRows {
		return nil, technician.ErrNotFound
	}
	return t, err
}
