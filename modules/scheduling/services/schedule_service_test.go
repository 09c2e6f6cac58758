package services_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewdeck/crewdeck/modules/scheduling/domain/aggregates/job"
	"github.com/crewdeck/crewdeck/modules/scheduling/domain/entities/assignment"
	"github.com/crewdeck/crewdeck/modules/scheduling/services"
	"github.com/crewdeck/crewdeck/pkg/eventbus"
)

type jobRepositoryMock struct {
	jobs map[uuid.UUID]*job.Job
}

func (m *jobRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*job.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return nil, job.ErrNotFound
	}
	return j, nil
}

func (m *jobRepositoryMock) GetAll(ctx context.Context) ([]*job.Job, error) {
	out := make([]*job.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (m *jobRepositoryMock) GetRange(ctx context.Context, from, to time.Time) ([]*job.Job, error) {
	return nil, nil
}

func (m *jobRepositoryMock) Create(ctx context.Context, data *job.Job) (*job.Job, error) {
	m.jobs[data.ID] = data
	return data, nil
}

func (m *jobRepositoryMock) Update(ctx context.Context, data *job.Job) error {
	m.jobs[data.ID] = data
	return nil
}

func (m *jobRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.jobs, id)
	return nil
}

type assignmentRepositoryMock struct {
	hydrated []*assignment.WithJob
}

func (m *assignmentRepositoryMock) GetByJob(ctx context.Context, jobID uuid.UUID) ([]*assignment.Assignment, error) {
	return nil, nil
}

func (m *assignmentRepositoryMock) GetByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*assignment.WithJob, error) {
	return nil, nil
}

func (m *assignmentRepositoryMock) GetRange(ctx context.Context, from, to time.Time) ([]*assignment.WithJob, error) {
	var out []*assignment.WithJob
	for _, a := range m.hydrated {
		end := a.Job.EndTime
		if end.IsZero() {
			end = a.Job.StartTime
		}
		if !a.Job.StartTime.After(to) && !end.Before(from) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *assignmentRepositoryMock) Assign(ctx context.Context, data *assignment.Assignment) (*assignment.Assignment, error) {
	return data, nil
}

func (m *assignmentRepositoryMock) Unassign(ctx context.Context, jobID, technicianID uuid.UUID) error {
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func hydratedAssignment(title string, start, end time.Time) *assignment.WithJob {
	return &assignment.WithJob{
		Assignment: assignment.Assignment{
			JobID:        uuid.New(),
			TechnicianID: uuid.New(),
		},
		Job: &job.Job{
			ID:        uuid.New(),
			Title:     title,
			Status:    job.StatusConfirmed,
			StartTime: start,
			EndTime:   end,
		},
	}
}

func newScheduleService(assignments *assignmentRepositoryMock) *services.ScheduleService {
	return services.NewScheduleService(
		&jobRepositoryMock{jobs: map[uuid.UUID]*job.Job{}},
		assignments,
		eventbus.NewEventPublisher(testLogger()),
	)
}

func TestScheduleService_Calendar(t *testing.T) {
	assignments := &assignmentRepositoryMock{hydrated: []*assignment.WithJob{
		hydratedAssignment("Arena load-in", day("2026-05-01"), day("2026-05-03")),
		hydratedAssignment("Club night", day("2026-05-02"), time.Time{}),
	}}
	service := newScheduleService(assignments)

	index, err := service.Calendar(context.Background(), day("2026-05-01"), day("2026-05-04"))
	require.NoError(t, err)

	require.Len(t, index, 4)
	assert.Len(t, index["2026-05-01"], 1)
	assert.Len(t, index["2026-05-02"], 2)
	assert.Len(t, index["2026-05-03"], 1)
	assert.Empty(t, index["2026-05-04"])
}

func TestScheduleService_Calendar_EmptyRangeDaysPresent(t *testing.T) {
	service := newScheduleService(&assignmentRepositoryMock{})

	index, err := service.Calendar(context.Background(), day("2026-06-01"), day("2026-06-30"))
	require.NoError(t, err)
	assert.Len(t, index, 30)
	for key, bucket := range index {
		assert.Emptyf(t, bucket, "expected empty bucket for %s", key)
	}
}

func TestScheduleService_GetAssignmentsRange_RejectsInvertedRange(t *testing.T) {
	service := newScheduleService(&assignmentRepositoryMock{})

	_, err := service.GetAssignmentsRange(context.Background(), day("2026-05-10"), day("2026-05-01"))
	assert.ErrorIs(t, err, services.ErrInvalidRange)
}

func TestScheduleService_CreateJob_RejectsBadStatus(t *testing.T) {
	service := newScheduleService(&assignmentRepositoryMock{})

	_, err := service.CreateJob(context.Background(), &job.Job{
		Title:     "Corp gig",
		Status:    "tentative",
		StartTime: day("2026-05-01"),
	})
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
}
