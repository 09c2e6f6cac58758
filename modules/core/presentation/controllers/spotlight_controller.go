package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/crewdeck/crewdeck/pkg/application"
	"github.com/crewdeck/crewdeck/pkg/httpapi"
	"github.com/crewdeck/crewdeck/pkg/spotlight"
)

type SpotlightController struct {
	app      application.Application
	basePath string
}

func NewSpotlightController(app application.Application) application.Controller {
	return &SpotlightController{
		app:      app,
		basePath: "/api/spotlight",
	}
}

func (c *SpotlightController) Key() string {
	return c.basePath
}

func (c *SpotlightController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.Search).Methods(http.MethodGet)
}

func (c *SpotlightController) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		_ = httpapi.WriteJSON(w, http.StatusOK, []spotlight.Result{})
		return
	}
	results := c.app.QuickLinks().Find(r.Context(), q)
	if results == nil {
		results = []spotlight.Result{}
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, results)
}
