package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/crewdeck/crewdeck/modules/scheduling/domain/aggregates/job"
	"github.com/crewdeck/crewdeck/modules/scheduling/domain/entities/assignment"
	"github.com/crewdeck/crewdeck/modules/scheduling/services"
	"github.com/crewdeck/crewdeck/pkg/application"
	"github.com/crewdeck/crewdeck/pkg/httpapi"
)

type JobsController struct {
	app             application.Application
	scheduleService *services.ScheduleService
	basePath        string
}

func NewJobsController(app application.Application) application.Controller {
	return &JobsController{
		app:             app,
		scheduleService: app.Service(services.ScheduleService{}).(*services.ScheduleService),
		basePath:        "/api/scheduling/jobs",
	}
}

func (c *JobsController) Key() string {
	return c.basePath
}

func (c *JobsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}", c.Delete).Methods(http.MethodDelete)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}/assignments", c.ListAssignments).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}/assignments", c.Assign).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}/assignments/{technicianId:[0-9a-fA-F-]+}", c.Unassign).Methods(http.MethodDelete)
}

type jobDTO struct {
	ID         string    `json:"id,omitempty"`
	Title      string    `json:"title"`
	Color      string    `json:"color,omitempty"`
	Status     string    `json:"status"`
	Location   string    `json:"location,omitempty"`
	Department string    `json:"department,omitempty"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime,omitzero"`
}

func jobViewModel(j *job.Job) jobDTO {
	return jobDTO{
		ID:         j.ID.String(),
		Title:      j.Title,
		Color:      j.Color,
		Status:     string(j.Status),
		Location:   j.Location,
		Department: j.Department,
		StartTime:  j.StartTime,
		EndTime:    j.EndTime,
	}
}

func (dto *jobDTO) toDomain(id uuid.UUID) *job.Job {
	return &job.Job{
		ID:         id,
		Title:      dto.Title,
		Color:      dto.Color,
		Status:     job.Status(dto.Status),
		Location:   dto.Location,
		Department: dto.Department,
		StartTime:  dto.StartTime,
		EndTime:    dto.EndTime,
	}
}

func (c *JobsController) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := c.scheduleService.GetJobs(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInternal, "failed to list jobs")
		return
	}
	dtos := make([]jobDTO, 0, len(jobs))
	for _, j := range jobs {
		dtos = append(dtos, jobViewModel(j))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos)
}

func (c *JobsController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "id must be a UUID")
		return
	}
	j, err := c.scheduleService.GetJob(r.Context(), id)
	if err != nil {
		writeJobError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, jobViewModel(j))
}

func (c *JobsController) Create(w http.ResponseWriter, r *http.Request) {
	var dto jobDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidBody, "malformed JSON body")
		return
	}
	created, err := c.scheduleService.CreateJob(r.Context(), dto.toDomain(uuid.Nil))
	if err != nil {
		writeJobError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, jobViewModel(created))
}

func (c *JobsController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "id must be a UUID")
		return
	}
	var dto jobDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidBody, "malformed JSON body")
		return
	}
	j := dto.toDomain(id)
	if err := c.scheduleService.UpdateJob(r.Context(), j); err != nil {
		writeJobError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, jobViewModel(j))
}

func (c *JobsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "id must be a UUID")
		return
	}
	if err := c.scheduleService.DeleteJob(r.Context(), id); err != nil {
		writeJobError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

type assignmentDTO struct {
	JobID        string `json:"jobId"`
	TechnicianID string `json:"technicianId"`
	Position     string `json:"position,omitempty"`
}

func (c *JobsController) ListAssignments(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "id must be a UUID")
		return
	}
	assignments, err := c.scheduleService.GetJobAssignments(r.Context(), id)
	if err != nil {
		writeJobError(w, err)
		return
	}
	dtos := make([]assignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		dtos = append(dtos, assignmentDTO{
			JobID:        a.JobID.String(),
			TechnicianID: a.TechnicianID.String(),
			Position:     a.Position,
		})
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos)
}

type assignRequest struct {
	TechnicianID string `json:"technicianId"`
	Position     string `json:"position"`
}

func (c *JobsController) Assign(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "id must be a UUID")
		return
	}
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidBody, "malformed JSON body")
		return
	}
	technicianID, err := uuid.Parse(req.TechnicianID)
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "technicianId must be a UUID")
		return
	}
	saved, err := c.scheduleService.Assign(r.Context(), &assignment.Assignment{
		JobID:        jobID,
		TechnicianID: technicianID,
		Position:     req.Position,
	})
	if err != nil {
		writeJobError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, assignmentDTO{
		JobID:        saved.JobID.String(),
		TechnicianID: saved.TechnicianID.String(),
		Position:     saved.Position,
	})
}

func (c *JobsController) Unassign(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	jobID, err := uuid.Parse(vars["id"])
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "id must be a UUID")
		return
	}
	technicianID, err := uuid.Parse(vars["technicianId"])
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "technicianId must be a UUID")
		return
	}
	if err := c.scheduleService.Unassign(r.Context(), jobID, technicianID); err != nil {
		writeJobError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func writeJobError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, job.ErrNotFound):
		_ = httpapi.WriteError(w, httpapi.CodeNotFound, "job not found")
	case errors.Is(err, assignment.ErrNotFound):
		_ = httpapi.WriteError(w, httpapi.CodeNotFound, "assignment not found")
	case errors.Is(err, services.ErrInvalidStatus):
		_ = httpapi.WriteError(w, httpapi.CodeInvalidInput, err.Error())
	default:
		_ = httpapi.WriteError(w, httpapi.CodeInternal, "scheduling operation failed")
	}
}
