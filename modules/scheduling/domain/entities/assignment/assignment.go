package assignment

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/crewdeck/crewdeck/modules/scheduling/domain/aggregates/job"
)

var ErrNotFound = errors.New("assignment not found")

// Assignment books one technician onto one job, optionally in a named crew
// position.
type Assignment struct {
	JobID        uuid.UUID
	TechnicianID uuid.UUID
	Position     string
	CreatedAt    time.Time
}

// WithJob is an assignment hydrated with its job row, the shape calendar
// queries return.
type WithJob struct {
	Assignment
	Job *job.Job
}

type Repository interface {
	GetByJob(ctx context.Context, jobID uuid.UUID) ([]*Assignment, error)
	GetByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*WithJob, error)
	GetRange(ctx context.Context, from, to time.Time) ([]*WithJob, error)
	Assign(ctx context.Context, data *Assignment) (*Assignment, error)
	Unassign(ctx context.Context, jobID, technicianID uuid.UUID) error
}
