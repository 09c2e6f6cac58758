package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/crewdeck/crewdeck/modules/crew/domain/entities/override"
	"github.com/crewdeck/crewdeck/modules/crew/services"
	"github.com/crewdeck/crewdeck/pkg/application"
	"github.com/crewdeck/crewdeck/pkg/availability"
	"github.com/crewdeck/crewdeck/pkg/httpapi"
)

type AvailabilityController struct {
	app                 application.Application
	availabilityService *services.AvailabilityService
	basePath            string
}

func NewAvailabilityController(app application.Application) application.Controller {
	return &AvailabilityController{
		app:                 app,
		availabilityService: app.Service(services.AvailabilityService{}).(*services.AvailabilityService),
		basePath:            "/api/crew/availability",
	}
}

func (c *AvailabilityController) Key() string {
	return c.basePath
}

func (c *AvailabilityController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/snapshot", c.Snapshot).Methods(http.MethodGet)
	router.HandleFunc("/{technicianId:[0-9a-fA-F-]+}/{date}", c.Set).Methods(http.MethodPut)
	router.HandleFunc("/{technicianId:[0-9a-fA-F-]+}/{date}", c.Remove).Methods(http.MethodDelete)
}

type overrideDTO struct {
	TechnicianID string `json:"technicianId"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	Note         string `json:"note,omitempty"`
}

func overrideViewModel(o *override.Override) overrideDTO {
	return overrideDTO{
		TechnicianID: o.TechnicianID.String(),
		Date:         o.Date,
		Status:       string(o.Status),
		Note:         o.Note,
	}
}

// List returns stored overrides, optionally restricted to a from/to day
// range.
func (c *AvailabilityController) List(w http.ResponseWriter, r *http.Request) {
	var (
		overrides []*override.Override
		err       error
	)
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	switch {
	case from != "" && to != "":
		overrides, err = c.availabilityService.GetRange(r.Context(), from, to)
	case from == "" && to == "":
		overrides, err = c.availabilityService.GetAll(r.Context())
	default:
		_ = httpapi.WriteError(w, httpapi.CodeInvalidRange, "from and to must be given together")
		return
	}
	if err != nil {
		writeAvailabilityError(w, err)
		return
	}
	dtos := make([]overrideDTO, 0, len(overrides))
	for _, o := range overrides {
		dtos = append(dtos, overrideViewModel(o))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos)
}

// Snapshot serves the realtime store's current keyed view, the same shape
// websocket subscribers patch incrementally.
func (c *AvailabilityController) Snapshot(w http.ResponseWriter, r *http.Request) {
	snapshot := c.app.Availability().Snapshot()
	if snapshot == nil {
		snapshot = map[string]availability.Status{}
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, snapshot)
}

type setOverrideRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

func (c *AvailabilityController) Set(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	technicianID, err := uuid.Parse(vars["technicianId"])
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "technicianId must be a UUID")
		return
	}
	var req setOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidBody, "malformed JSON body")
		return
	}
	saved, err := c.availabilityService.SetOverride(r.Context(), &override.Override{
		TechnicianID: technicianID,
		Date:         vars["date"],
		Status:       availability.Status(req.Status),
		Note:         req.Note,
	})
	if err != nil {
		writeAvailabilityError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, overrideViewModel(saved))
}

func (c *AvailabilityController) Remove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	technicianID, err := uuid.Parse(vars["technicianId"])
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "technicianId must be a UUID")
		return
	}
	if err := c.availabilityService.RemoveOverride(r.Context(), technicianID, vars["date"]); err != nil {
		writeAvailabilityError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func writeAvailabilityError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, override.ErrNotFound):
		_ = httpapi.WriteError(w, httpapi.CodeNotFound, "availability override not found")
	case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrInvalidDate):
		_ = httpapi.WriteError(w, httpapi.CodeInvalidInput, err.Error())
	default:
		_ = httpapi.WriteError(w, httpapi.CodeInternal, "availability operation failed")
	}
}
