package services

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/crewdeck/crewdeck/modules/scheduling/domain/aggregates/job"
	"github.com/crewdeck/crewdeck/modules/scheduling/domain/entities/assignment"
	"github.com/crewdeck/crewdeck/pkg/calendar"
	"github.com/crewdeck/crewdeck/pkg/composables"
	"github.com/crewdeck/crewdeck/pkg/eventbus"
)

var (
	ErrInvalidStatus = errors.New("invalid job status")
	ErrInvalidRange  = errors.New("to must not be before from")
)

type ScheduleService struct {
	jobs        job.Repository
	assignments assignment.Repository
	publisher   eventbus.EventBus
}

func NewScheduleService(jobs job.Repository, assignments assignment.Repository, publisher eventbus.EventBus) *ScheduleService {
	return &ScheduleService{
		jobs:        jobs,
		assignments: assignments,
		publisher:   publisher,
	}
}

func (s *ScheduleService) GetJob(ctx context.Context, id uuid.UUID) (*job.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *ScheduleService) GetJobs(ctx context.Context) ([]*job.Job, error) {
	return s.jobs.GetAll(ctx)
}

func (s *ScheduleService) CreateJob(ctx context.Context, data *job.Job) (*job.Job, error) {
	if data.Status == "" {
		data.Status = job.StatusDraft
	}
	if !data.Status.Valid() {
		return nil, errors.Wrap(ErrInvalidStatus, string(data.Status))
	}
	return composables.InTxResult(ctx, func(txCtx context.Context) (*job.Job, error) {
		created, err := s.jobs.Create(txCtx, data)
		if err != nil {
			return nil, err
		}
		s.publisher.Publish(job.NewCreatedEvent(created))
		return created, nil
	})
}

func (s *ScheduleService) UpdateJob(ctx context.Context, data *job.Job) error {
	if !data.Status.Valid() {
		return errors.Wrap(ErrInvalidStatus, string(data.Status))
	}
	return composables.InTx(ctx, func(txCtx context.Context) error {
		if err := s.jobs.Update(txCtx, data); err != nil {
			return err
		}
		s.publisher.Publish(job.NewUpdatedEvent(data))
		return nil
	})
}

func (s *ScheduleService) DeleteJob(ctx context.Context, id uuid.UUID) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		existing, err := s.jobs.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.jobs.Delete(txCtx, id); err != nil {
			return err
		}
		s.publisher.Publish(job.NewDeletedEvent(existing))
		return nil
	})
}

func (s *ScheduleService) GetJobAssignments(ctx context.Context, jobID uuid.UUID) ([]*assignment.Assignment, error) {
	return s.assignments.GetByJob(ctx, jobID)
}

func (s *ScheduleService) GetTechnicianAssignments(ctx context.Context, technicianID uuid.UUID) ([]*assignment.WithJob, error) {
	return s.assignments.GetByTechnician(ctx, technicianID)
}

func (s *ScheduleService) Assign(ctx context.Context, data *assignment.Assignment) (*assignment.Assignment, error) {
	return composables.InTxResult(ctx, func(txCtx context.Context) (*assignment.Assignment, error) {
		if _, err := s.jobs.GetByID(txCtx, data.JobID); err != nil {
			return nil, err
		}
		saved, err := s.assignments.Assign(txCtx, data)
		if err != nil {
			return nil, err
		}
		s.publisher.Publish(assignment.NewAssignedEvent(saved))
		return saved, nil
	})
}

func (s *ScheduleService) Unassign(ctx context.Context, jobID, technicianID uuid.UUID) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		if err := s.assignments.Unassign(txCtx, jobID, technicianID); err != nil {
			return err
		}
		s.publisher.Publish(assignment.NewUnassignedEvent(&assignment.Assignment{
			JobID:        jobID,
			TechnicianID: technicianID,
		}))
		return nil
	})
}

// GetAssignmentsRange returns hydrated assignments whose job overlaps the
// inclusive [from, to] day range.
func (s *ScheduleService) GetAssignmentsRange(ctx context.Context, from, to time.Time) ([]*assignment.WithJob, error) {
	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	return s.assignments.GetRange(ctx, from, to)
}

// Calendar buckets the range's assignments under each day between from and
// to. Every day in the range gets a bucket, empty days included, so grid
// rendering never special-cases missing keys.
func (s *ScheduleService) Calendar(ctx context.Context, from, to time.Time) (map[string][]calendar.Assignment, error) {
	hydrated, err := s.GetAssignmentsRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	entries := make([]calendar.Assignment, 0, len(hydrated))
	for _, a := range hydrated {
		entries = append(entries, calendar.Assignment{
			TechnicianID: a.TechnicianID,
			JobID:        a.JobID,
			Job:          a.Job.AsCalendar(),
		})
	}
	return calendar.IndexByDate(entries, daysBetween(from, to)), nil
}

func daysBetween(from, to time.Time) []time.Time {
	var days []time.Time
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}
