package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/crewdeck/crewdeck/modules/scheduling/domain/aggregates/job"
	"github.com/crewdeck/crewdeck/pkg/composables"
)

const (
	selectJobColumns = `id, title, color, status, location, department, start_time, end_time, created_at, updated_at`
)

type PgJobRepository struct{}

func NewJobRepository() job.Repository {
	return &PgJobRepository{}
}

func (r *PgJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*job.Job, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx,
		`SELECT `+selectJobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PgJobRepository) GetAll(ctx context.Context) ([]*job.Job, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx,
		`SELECT `+selectJobColumns+` FROM jobs ORDER BY start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

// GetRange returns jobs overlapping [from, to]. Single-day jobs store a zero
// end_time, so the overlap check falls back to start_time for them.
func (r *PgJobRepository) GetRange(ctx context.Context, from, to time.Time) ([]*job.Job, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, `
		SELECT `+selectJobColumns+` FROM jobs
		WHERE start_time <= $2 AND COALESCE(end_time, start_time) >= $1
		ORDER BY start_time`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *PgJobRepository) Create(ctx context.Context, j *job.Job) (*job.Job, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx, `
		INSERT INTO jobs (id, title, color, status, location, department, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+selectJobColumns,
		newOrExistingID(j.ID), j.Title, nullableString(j.Color), string(j.Status),
		nullableString(j.Location), nullableString(j.Department), j.StartTime, nullableTime(j.EndTime),
	)
	return scanJob(row)
}

func (r *PgJobRepository) Update(ctx context.Context, j *job.Job) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `
		UPDATE jobs
		SET title = $2, color = $3, status = $4, location = $5, department = $6, start_time = $7, end_time = $8, updated_at = now()
		WHERE id = $1`,
		j.ID, j.Title, nullableString(j.Color), string(j.Status),
		nullableString(j.Location), nullableString(j.Department), j.StartTime, nullableTime(j.EndTime),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PgJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func collectJobs(rows pgx.Rows) ([]*job.Job, error) {
	var jobs []*job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func scanJob(row pgx.Row) (*job.Job, error) {
	j, err := mapJob(row)
	if err == pgx.ErrNoRows {
		return nil, job.ErrNotFound
	}
	return j, err
}
