package controllers

import (
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/crewdeck/crewdeck/modules/scheduling/services"
	"github.com/crewdeck/crewdeck/pkg/application"
	"github.com/crewdeck/crewdeck/pkg/calendar"
	"github.com/crewdeck/crewdeck/pkg/httpapi"
)

type CalendarController struct {
	app             application.Application
	scheduleService *services.ScheduleService
	basePath        string
}

func NewCalendarController(app application.Application) application.Controller {
	return &CalendarController{
		app:             app,
		scheduleService: app.Service(services.ScheduleService{}).(*services.ScheduleService),
		basePath:        "/api/scheduling",
	}
}

func (c *CalendarController) Key() string {
	return c.basePath
}

func (c *CalendarController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/assignments", c.Assignments).Methods(http.MethodGet)
	router.HandleFunc("/calendar", c.Calendar).Methods(http.MethodGet)
}

func parseRange(r *http.Request) (from, to time.Time, ok bool) {
	var err error
	from, err = time.Parse(calendar.DayKeyLayout, r.URL.Query().Get("from"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err = time.Parse(calendar.DayKeyLayout, r.URL.Query().Get("to"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// Assignments returns the hydrated assignment rows overlapping the range,
// the flat form clients that do their own grouping consume.
func (c *CalendarController) Assignments(w http.ResponseWriter, r *http.Request) {
	from, to, ok := parseRange(r)
	if !ok {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidRange, "from and to must be ISO days")
		return
	}
	hydrated, err := c.scheduleService.GetAssignmentsRange(r.Context(), from, to)
	if err != nil {
		writeCalendarError(w, err)
		return
	}
	entries := make([]calendar.Assignment, 0, len(hydrated))
	for _, a := range hydrated {
		entries = append(entries, calendar.Assignment{
			TechnicianID: a.TechnicianID,
			JobID:        a.JobID,
			Job:          a.Job.AsCalendar(),
		})
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, entries)
}

// Calendar returns assignments bucketed per day key, one bucket per day in
// the range, ready for month or week grid rendering.
func (c *CalendarController) Calendar(w http.ResponseWriter, r *http.Request) {
	from, to, ok := parseRange(r)
	if !ok {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidRange, "from and to must be ISO days")
		return
	}
	index, err := c.scheduleService.Calendar(r.Context(), from, to)
	if err != nil {
		writeCalendarError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, index)
}

func writeCalendarError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrInvalidRange) {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidRange, err.Error())
		return
	}
	_ = httpapi.WriteError(w, httpapi.CodeInternal, "calendar query failed")
}
