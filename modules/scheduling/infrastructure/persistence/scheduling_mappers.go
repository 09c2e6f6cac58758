package persistence

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crewdeck/crewdeck/modules/scheduling/domain/aggregates/job"
	"github.com/crewdeck/crewdeck/modules/scheduling/domain/entities/assignment"
)

func mapJob(row pgx.Row) (*job.Job, error) {
	var (
		j          job.Job
		color      pgtype.Text
		status     string
		location   pgtype.Text
		department pgtype.Text
		endTime    pgtype.Timestamptz
	)
	if err := row.Scan(
		&j.ID,
		&j.Title,
		&color,
		&status,
		&location,
		&department,
		&j.StartTime,
		&endTime,
		&j.CreatedAt,
		&j.UpdatedAt,
	); err != nil {
		return nil, err
	}
	j.Color = color.String
	j.Status = job.Status(status)
	j.Location = location.String
	j.Department = department.String
	if endTime.Valid {
		j.EndTime = endTime.Time
	}
	return &j, nil
}

func mapAssignment(row pgx.Row) (*assignment.Assignment, error) {
	var (
		a        assignment.Assignment
		position pgtype.Text
	)
	if err := row.Scan(
		&a.JobID,
		&a.TechnicianID,
		&position,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	a.Position = position.String
	return &a, nil
}

func mapAssignmentWithJob(row pgx.Row) (*assignment.WithJob, error) {
	var (
		hydrated   assignment.WithJob
		position   pgtype.Text
		j          job.Job
		color      pgtype.Text
		status     string
		location   pgtype.Text
		department pgtype.Text
		endTime    pgtype.Timestamptz
	)
	if err := row.Scan(
		&hydrated.JobID,
		&hydrated.TechnicianID,
		&position,
		&hydrated.CreatedAt,
		&j.ID,
		&j.Title,
		&color,
		&status,
		&location,
		&department,
		&j.StartTime,
		&endTime,
		&j.CreatedAt,
		&j.UpdatedAt,
	); err != nil {
		return nil, err
	}
	hydrated.Position = position.String
	j.Color = color.String
	j.Status = job.Status(status)
	j.Location = location.String
	j.Department = department.String
	if endTime.Valid {
		j.EndTime = endTime.Time
	}
	hydrated.Job = &j
	return &hydrated, nil
}

func nullableString(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func nullableTime(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func newOrExistingID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}
