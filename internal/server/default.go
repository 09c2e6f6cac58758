package server

import (
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/crewdeck/crewdeck/pkg/application"
	"github.com/crewdeck/crewdeck/pkg/configuration"
	"github.com/crewdeck/crewdeck/pkg/constants"
	"github.com/crewdeck/crewdeck/pkg/middleware"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
	NavResolver   middleware.NavContextResolver
}

// Default wires the standard middleware stack into the application and
// returns the assembled server.
func Default(options *DefaultOptions) (*HTTPServer, error) {
	app := options.Application

	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.PoolKey, options.Pool),
		middleware.Cors(options.Configuration.Origin),
		middleware.ProvideLocalizer(app),
		middleware.ProvideNavContext(options.NavResolver),
		middleware.NavItems(app),
	}
	app.RegisterMiddleware(middlewares...)

	return NewHTTPServer(app, options.Logger), nil
}
