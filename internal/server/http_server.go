package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/crewdeck/crewdeck/pkg/application"
	"github.com/crewdeck/crewdeck/pkg/httpapi"
	"github.com/crewdeck/crewdeck/pkg/ws"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer assembles the JSON API: every registered controller mounted on
// one router, the shared middleware stack applied to matched and unmatched
// routes alike, gzip on the outside.
type HTTPServer struct {
	log         *logrus.Logger
	controllers []application.Controller
	middlewares []mux.MiddlewareFunc
	hub         ws.Huber
}

func NewHTTPServer(app application.Application, log *logrus.Logger) *HTTPServer {
	return &HTTPServer{
		log:         log,
		controllers: app.Controllers(),
		middlewares: app.Middleware(),
		hub:         app.Websocket(),
	}
}

// Router mounts the controllers and routes unmatched requests through the
// same middleware chain, so misses carry the JSON error envelope and the
// request log like every other response.
func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.middlewares...)
	for _, controller := range s.controllers {
		controller.Register(r)
	}
	r.NotFoundHandler = s.wrap(errorHandler(httpapi.CodeNotFound, "resource not found"))
	r.MethodNotAllowedHandler = s.wrap(errorHandler(httpapi.CodeMethodNotAllowed, "method not allowed"))
	return r
}

// mux only applies Use middlewares to matched routes.
func (s *HTTPServer) wrap(handler http.Handler) http.Handler {
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		handler = s.middlewares[i](handler)
	}
	return handler
}

func errorHandler(code httpapi.Code, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteError(w, code, message)
	})
}

func (s *HTTPServer) Handler() http.Handler {
	return gziphandler.GzipHandler(s.Router())
}

// Start serves until the listener fails or the process receives SIGINT or
// SIGTERM, then drains in-flight requests and closes websocket clients
// before returning.
func (s *HTTPServer) Start(socketAddress string) error {
	srv := &http.Server{
		Addr:    socketAddress,
		Handler: s.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.log.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Shutdown()
	}
	return nil
}
