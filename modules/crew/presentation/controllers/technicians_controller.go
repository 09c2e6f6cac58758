package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/crewdeck/crewdeck/modules/crew/domain/aggregates/technician"
	"github.com/crewdeck/crewdeck/modules/crew/services"
	"github.com/crewdeck/crewdeck/pkg/application"
	"github.com/crewdeck/crewdeck/pkg/httpapi"
)

type TechniciansController struct {
	app               application.Application
	technicianService *services.TechnicianService
	basePath          string
}

func NewTechniciansController(app application.Application) application.Controller {
	return &TechniciansController{
		app:               app,
		technicianService: app.Service(services.TechnicianService{}).(*services.TechnicianService),
		basePath:          "/api/crew/technicians",
	}
}

func (c *TechniciansController) Key() string {
	return c.basePath
}

func (c *TechniciansController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}", c.Delete).Methods(http.MethodDelete)
}

type technicianDTO struct {
	ID         string   `json:"id,omitempty"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	FullName   string   `json:"fullName,omitempty"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone,omitempty"`
	Department string   `json:"department"`
	Employment string   `json:"employment"`
	Skills     []string `json:"skills"`
}

func technicianViewModel(t *technician.Technician) technicianDTO {
	skills := t.Skills
	if skills == nil {
		skills = []string{}
	}
	return technicianDTO{
		ID:         t.ID.String(),
		FirstName:  t.FirstName,
		LastName:   t.LastName,
		FullName:   t.FullName(),
		Email:      t.Email,
		Phone:      t.Phone,
		Department: t.Department,
		Employment: string(t.Employment),
		Skills:     skills,
	}
}

func (dto *technicianDTO) toDomain(id uuid.UUID) *technician.Technician {
	employment := technician.EmploymentKind(dto.Employment)
	if employment == "" {
		employment = technician.EmploymentStaff
	}
	return &technician.Technician{
		ID:         id,
		FirstName:  dto.FirstName,
		LastName:   dto.LastName,
		Email:      dto.Email,
		Phone:      dto.Phone,
		Department: dto.Department,
		Employment: employment,
		Skills:     dto.Skills,
	}
}

func (c *TechniciansController) List(w http.ResponseWriter, r *http.Request) {
	var (
		technicians []*technician.Technician
		err         error
	)
	if department := r.URL.Query().Get("department"); department != "" {
		technicians, err = c.technicianService.GetByDepartment(r.Context(), department)
	} else {
		technicians, err = c.technicianService.GetAll(r.Context())
	}
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInternal, "failed to list technicians")
		return
	}
	dtos := make([]technicianDTO, 0, len(technicians))
	for _, t := range technicians {
		dtos = append(dtos, technicianViewModel(t))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos)
}

func (c *TechniciansController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "id must be a UUID")
		return
	}
	t, err := c.technicianService.GetByID(r.Context(), id)
	if err != nil {
		writeTechnicianError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, technicianViewModel(t))
}

func (c *TechniciansController) Create(w http.ResponseWriter, r *http.Request) {
	var dto technicianDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidBody, "malformed JSON body")
		return
	}
	created, err := c.technicianService.Create(r.Context(), dto.toDomain(uuid.Nil))
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInternal, "failed to create technician")
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, technicianViewModel(created))
}

func (c *TechniciansController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "id must be a UUID")
		return
	}
	var dto technicianDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidBody, "malformed JSON body")
		return
	}
	t := dto.toDomain(id)
	if err := c.technicianService.Update(r.Context(), t); err != nil {
		writeTechnicianError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, technicianViewModel(t))
}

func (c *TechniciansController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "id must be a UUID")
		return
	}
	if err := c.technicianService.Delete(r.Context(), id); err != nil {
		writeTechnicianError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusNoContent, nil)
}

func writeTechnicianError(w http.ResponseWriter, err error) {
	if errors.Is(err, technician.ErrNotFound) {
		_ = httpapi.WriteError(w, httpapi.CodeNotFound, "technician not found")
		return
	}
	_ = httpapi.WriteError(w, httpapi.CodeInternal, "technician operation failed")
}
