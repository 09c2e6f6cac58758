package application

import (
	"context"
	"embed"
	"encoding/json"
	"io/fs"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/crewdeck/crewdeck/pkg/availability"
	"github.com/crewdeck/crewdeck/pkg/eventbus"
	"github.com/crewdeck/crewdeck/pkg/intl"
	"github.com/crewdeck/crewdeck/pkg/navigation"
	"github.com/crewdeck/crewdeck/pkg/spotlight"
	"github.com/crewdeck/crewdeck/pkg/types"
	"github.com/crewdeck/crewdeck/pkg/ws"
)

// Controller is a routable unit registered by a module.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module wires one product area into the application at startup.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	DB() *pgxpool.Pool
	Logger() *logrus.Logger
	EventPublisher() eventbus.EventBus
	Bundle() *i18n.Bundle
	GetSupportedLanguages() []string

	Navigation() *navigation.Builder
	NavItems(localizer *i18n.Localizer, navCtx types.NavigationContext) []types.NavigationItem
	NavItemsFor(ctx context.Context, navCtx types.NavigationContext) []types.NavigationItem
	Availability() *availability.Store
	QuickLinks() *spotlight.QuickLinks
	Websocket() ws.Huber
	Migrations() MigrationManager

	RegisterLocaleFiles(fs ...*embed.FS)

	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}
	RegisterControllers(controllers ...Controller)
	Controllers() []Controller
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	Middleware() []mux.MiddlewareFunc
}

type ApplicationOptions struct {
	Pool               *pgxpool.Pool
	EventBus           eventbus.EventBus
	Logger             *logrus.Logger
	Bundle             *i18n.Bundle
	Huber              ws.Huber
	SupportedLanguages []string
}

func LoadBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

func defaultSupportedLanguageCodes() []string {
	return []string{"en", "de"}
}

func New(opts *ApplicationOptions) Application {
	supportedLanguages := opts.SupportedLanguages
	if len(supportedLanguages) == 0 {
		supportedLanguages = defaultSupportedLanguageCodes()
	}

	return &application{
		pool:               opts.Pool,
		eventPublisher:     opts.EventBus,
		logger:             opts.Logger,
		websocket:          opts.Huber,
		controllers:        make(map[string]Controller),
		services:           make(map[reflect.Type]interface{}),
		navBuilder:         navigation.NewBuilder(),
		availabilityStore:  availability.NewStore(),
		quickLinks:         &spotlight.QuickLinks{},
		bundle:             opts.Bundle,
		migrations:         NewMigrationManager(opts.Pool),
		supportedLanguages: supportedLanguages,
	}
}

// application with a dynamically extendable service registry
type application struct {
	pool               *pgxpool.Pool
	eventPublisher     eventbus.EventBus
	logger             *logrus.Logger
	websocket          ws.Huber
	services           map[reflect.Type]interface{}
	controllers        map[string]Controller
	middleware         []mux.MiddlewareFunc
	bundle             *i18n.Bundle
	navBuilder         *navigation.Builder
	availabilityStore  *availability.Store
	quickLinks         *spotlight.QuickLinks
	migrations         MigrationManager
	supportedLanguages []string
}

func (app *application) DB() *pgxpool.Pool {
	return app.pool
}

func (app *application) Logger() *logrus.Logger {
	return app.logger
}

func (app *application) EventPublisher() eventbus.EventBus {
	return app.eventPublisher
}

func (app *application) Bundle() *i18n.Bundle {
	return app.bundle
}

func (app *application) GetSupportedLanguages() []string {
	return app.supportedLanguages
}

func (app *application) Navigation() *navigation.Builder {
	return app.navBuilder
}

// NavItems builds the visible destinations for navCtx and localizes the
// label message IDs. Items whose label cannot be localized keep the raw
// message ID rather than disappearing: localization gaps are a translation
// bug, not a visibility rule.
func (app *application) NavItems(localizer *i18n.Localizer, navCtx types.NavigationContext) []types.NavigationItem {
	items := app.navBuilder.BuildItems(navCtx)
	localized := make([]types.NavigationItem, 0, len(items))
	for _, item := range items {
		label, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: item.Label})
		if err != nil {
			label = item.Label
		}
		localized = append(localized, item.WithLabel(label))
	}
	return localized
}

// NavItemsFor is NavItems with the localizer taken from the request context.
// Without a localizer the raw message IDs are returned.
func (app *application) NavItemsFor(ctx context.Context, navCtx types.NavigationContext) []types.NavigationItem {
	localizer, ok := intl.UseLocalizer(ctx)
	if !ok {
		return app.navBuilder.BuildItems(navCtx)
	}
	return app.NavItems(localizer, navCtx)
}

func (app *application) Availability() *availability.Store {
	return app.availabilityStore
}

func (app *application) QuickLinks() *spotlight.QuickLinks {
	return app.quickLinks
}

func (app *application) Websocket() ws.Huber {
	return app.websocket
}

func (app *application) Migrations() MigrationManager {
	return app.migrations
}

// RegisterLocaleFiles loads every embedded translation file into the shared
// bundle. Panics on malformed files: translations ship with the binary, so a
// parse failure is a build defect, not a runtime condition.
func (app *application) RegisterLocaleFiles(files ...*embed.FS) {
	for _, localeFs := range files {
		err := fs.WalkDir(localeFs, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if !strings.HasSuffix(path, ".toml") && !strings.HasSuffix(path, ".json") {
				return nil
			}
			_, err = app.bundle.LoadMessageFileFS(localeFs, path)
			return err
		})
		if err != nil {
			panic(err)
		}
	}
}

func (app *application) RegisterServices(services ...interface{}) {
	for _, service := range services {
		serviceType := reflect.TypeOf(service).Elem()
		app.services[serviceType] = service
	}
}

// Service returns a registered service by example value, e.g.
// app.Service(services.TechnicianService{}).
func (app *application) Service(service interface{}) interface{} {
	serviceType := reflect.TypeOf(service)
	svc, ok := app.services[serviceType]
	if !ok {
		panic("service not found: " + serviceType.String())
	}
	return svc
}

func (app *application) RegisterControllers(controllers ...Controller) {
	for _, controller := range controllers {
		app.controllers[controller.Key()] = controller
	}
}

func (app *application) Controllers() []Controller {
	controllers := make([]Controller, 0, len(app.controllers))
	for _, c := range app.controllers {
		controllers = append(controllers, c)
	}
	return controllers
}

func (app *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	app.middleware = append(app.middleware, middleware...)
}

func (app *application) Middleware() []mux.MiddlewareFunc {
	return app.middleware
}
