package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/crewdeck/crewdeck/modules/scheduling/domain/entities/assignment"
	"github.com/crewdeck/crewdeck/pkg/composables"
)

const (
	selectAssignmentColumns = `a.job_id, a.technician_id, a.position, a.created_at`
	selectHydratedColumns   = selectAssignmentColumns + `, j.id, j.title, j.color, j.status, j.location, j.department, j.start_time, j.end_time, j.created_at, j.updated_at`
)

type PgAssignmentRepository struct{}

func NewAssignmentRepository() assignment.Repository {
	return &PgAssignmentRepository{}
}

func (r *PgAssignmentRepository) GetByJob(ctx context.Context, jobID uuid.UUID) ([]*assignment.Assignment, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx,
		`SELECT `+selectAssignmentColumns+` FROM assignments a WHERE a.job_id = $1 ORDER BY a.created_at`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*assignment.Assignment
	for rows.Next() {
		a, err := mapAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *PgAssignmentRepository) GetByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*assignment.WithJob, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, `
		SELECT `+selectHydratedColumns+`
		FROM assignments a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.technician_id = $1
		ORDER BY j.start_time`,
		technicianID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHydrated(rows)
}

func (r *PgAssignmentRepository) GetRange(ctx context.Context, from, to time.Time) ([]*assignment.WithJob, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, `
		SELECT `+selectHydratedColumns+`
		FROM assignments a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.start_time <= $2 AND COALESCE(j.end_time, j.start_time) >= $1
		ORDER BY j.start_time`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHydrated(rows)
}

func (r *PgAssignmentRepository) Assign(ctx context.Context, a *assignment.Assignment) (*assignment.Assignment, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx, `
		INSERT INTO assignments (job_id, technician_id, position)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_id, technician_id)
		DO UPDATE SET position = EXCLUDED.position
		RETURNING job_id, technician_id, position, created_at`,
		a.JobID, a.TechnicianID, nullableString(a.Position),
	)
	return mapAssignment(row)
}

func (r *PgAssignmentRepository) Unassign(ctx context.Context, jobID, technicianID uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx,
		`DELETE FROM assignments WHERE job_id = $1 AND technician_id = $2`,
		jobID, technicianID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrNotFound
	}
	return nil
}

func collectHydrated(rows pgx.Rows) ([]*assignment.WithJob, error) {
	var hydrated []*assignment.WithJob
	for rows.Next() {
		a, err := mapAssignmentWithJob(rows)
		if err != nil {
			return nil, err
		}
		hydrated = append(hydrated, a)
	}
	return hydrated, rows.Err()
}
