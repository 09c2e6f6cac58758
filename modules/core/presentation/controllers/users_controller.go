package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/crewdeck/crewdeck/modules/core/domain/aggregates/user"
	"github.com/crewdeck/crewdeck/modules/core/presentation/viewmodels"
	"github.com/crewdeck/crewdeck/modules/core/services"
	"github.com/crewdeck/crewdeck/pkg/application"
	"github.com/crewdeck/crewdeck/pkg/configuration"
	"github.com/crewdeck/crewdeck/pkg/httpapi"
	"github.com/crewdeck/crewdeck/pkg/types"
)

type UsersController struct {
	app         application.Application
	userService *services.UserService
	basePath    string
}

func NewUsersController(app application.Application) application.Controller {
	return &UsersController{
		app:         app,
		userService: app.Service(services.UserService{}).(*services.UserService),
		basePath:    "/api/users",
	}
}

func (c *UsersController) Key() string {
	return c.basePath
}

func (c *UsersController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-fA-F-]+}", c.Update).Methods(http.MethodPut)

	r.HandleFunc("/api/profile", c.Profile).Methods(http.MethodGet)
}

type saveUserRequest struct {
	Email        string   `json:"email"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Role         string   `json:"role"`
	Department   string   `json:"department"`
	FeatureFlags []string `json:"featureFlags"`
}

func (c *UsersController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.userService.GetAll(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInternal, "failed to list users")
		return
	}
	vms := make([]viewmodels.User, 0, len(users))
	for _, u := range users {
		vms = append(vms, userViewModel(u))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, vms)
}

func (c *UsersController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "id must be a UUID")
		return
	}
	u, err := c.userService.GetByID(r.Context(), id)
	if err != nil {
		writeUserError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, userViewModel(u))
}

func (c *UsersController) Create(w http.ResponseWriter, r *http.Request) {
	var req saveUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidBody, "malformed JSON body")
		return
	}
	created, err := c.userService.Create(r.Context(), &user.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         types.Role(req.Role),
		Department:   req.Department,
		FeatureFlags: req.FeatureFlags,
	})
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInternal, "failed to create user")
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, userViewModel(created))
}

func (c *UsersController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "id must be a UUID")
		return
	}
	var req saveUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidBody, "malformed JSON body")
		return
	}
	u := &user.User{
		ID:           id,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         types.Role(req.Role),
		Department:   req.Department,
		FeatureFlags: req.FeatureFlags,
	}
	if err := c.userService.Update(r.Context(), u); err != nil {
		writeUserError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, userViewModel(u))
}

// Profile returns the user record behind the forwarded identity header.
func (c *UsersController) Profile(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	rawID := r.Header.Get(conf.UserIDHeader)
	if rawID == "" {
		_ = httpapi.WriteError(w, httpapi.CodeUnauthorized, "missing identity header")
		return
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		_ = httpapi.WriteError(w, httpapi.CodeInvalidID, "identity header must be a UUID")
		return
	}
	u, err := c.userService.GetByID(r.Context(), id)
	if err != nil {
		writeUserError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, userViewModel(u))
}

func writeUserError(w http.ResponseWriter, err error) {
	if errors.Is(err, user.ErrNotFound) {
		_ = httpapi.WriteError(w, httpapi.CodeNotFound, "user not found")
		return
	}
	_ = httpapi.WriteError(w, httpapi.CodeInternal, "user lookup failed")
}

func userViewModel(u *user.User) viewmodels.User {
	flags := u.FeatureFlags
	if flags == nil {
		flags = []string{}
	}
	return viewmodels.User{
		ID:           u.ID.String(),
		Email:        u.Email,
		FullName:     u.FullName(),
		Role:         string(u.Role),
		Department:   u.Department,
		FeatureFlags: flags,
	}
}
