package job

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/crewdeck/crewdeck/pkg/calendar"
)

var ErrNotFound = errors.New("job not found")

type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Job is a production booking: a show, tour leg or festival day block that
// technicians get assigned to.
type Job struct {
	ID         uuid.UUID
	Title      string
	Color      string
	Status     Status
	Location   string
	Department string
	StartTime  time.Time
	EndTime    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AsCalendar projects the job into the shape the day-bucketing index
// consumes.
func (j *Job) AsCalendar() calendar.Job {
	return calendar.Job{
		ID:        j.ID,
		Title:     j.Title,
		Color:     j.Color,
		StartTime: j.StartTime,
		EndTime:   j.EndTime,
		Status:    string(j.Status),
		Location:  j.Location,
	}
}

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Job, error)
	GetAll(ctx context.Context) ([]*Job, error)
	GetRange(ctx context.Context, from, to time.Time) ([]*Job, error)
	Create(ctx context.Context, data *Job) (*Job, error)
	Update(ctx context.Context, data *Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}
