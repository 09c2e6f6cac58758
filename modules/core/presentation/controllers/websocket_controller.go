package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/crewdeck/crewdeck/pkg/application"
)

// WebsocketController exposes the realtime hub. Clients subscribe with
// GET /ws?channel=availability and receive change broadcasts as JSON frames.
type WebsocketController struct {
	app      application.Application
	basePath string
}

func NewWebsocketController(app application.Application) application.Controller {
	return &WebsocketController{
		app:      app,
		basePath: "/ws",
	}
}

func (c *WebsocketController) Key() string {
	return c.basePath
}

func (c *WebsocketController) Register(r *mux.Router) {
	r.Handle(c.basePath, c.app.Websocket()).Methods(http.MethodGet)
}
