package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/crewdeck/crewdeck/modules/core/presentation/viewmodels"
	"github.com/crewdeck/crewdeck/pkg/application"
	"github.com/crewdeck/crewdeck/pkg/httpapi"
	"github.com/crewdeck/crewdeck/pkg/middleware"
)

type NavigationController struct {
	app      application.Application
	basePath string
}

func NewNavigationController(app application.Application) application.Controller {
	return &NavigationController{
		app:      app,
		basePath: "/api/navigation",
	}
}

func (c *NavigationController) Key() string {
	return c.basePath
}

func (c *NavigationController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.Get).Methods(http.MethodGet)
}

// Get returns the caller's resolved navigation: every visible destination
// plus the primary/tray split for the mobile bar. The optional path query
// parameter marks matching items active.
func (c *NavigationController) Get(w http.ResponseWriter, r *http.Request) {
	activePath := r.URL.Query().Get("path")
	items := middleware.UseNavItems(r.Context())
	primary, tray := middleware.UsePrimaryNavItems(r.Context())

	_ = httpapi.WriteJSON(w, http.StatusOK, &viewmodels.Navigation{
		Items:   viewmodels.NavigationItemViewModels(items, activePath),
		Primary: viewmodels.NavigationItemViewModels(primary, activePath),
		Tray:    viewmodels.NavigationItemViewModels(tray, activePath),
	})
}
