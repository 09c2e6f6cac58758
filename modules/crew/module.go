package crew

import (
	"embed"

	"github.com/crewdeck/crewdeck/modules/crew/infrastructure/persistence"
	"github.com/crewdeck/crewdeck/modules/crew/presentation/controllers"
	"github.com/crewdeck/crewdeck/modules/crew/services"
	"github.com/crewdeck/crewdeck/pkg/application"
	"github.com/crewdeck/crewdeck/pkg/spotlight"
)

//go:embed presentation/locales/*.toml
var LocaleFiles embed.FS

//go:embed infrastructure/persistence/schema/crew-schema.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct {
}

func (m *Module) Register(app application.Application) error {
	app.Migrations().RegisterSchema(&MigrationFiles)
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterServices(
		services.NewTechnicianService(persistence.NewTechnicianRepository(), app.EventPublisher()),
		services.NewAvailabilityService(persistence.NewOverrideRepository(), app.EventPublisher()),
	)
	projector := services.NewAvailabilityProjector(app.Availability(), app.Websocket(), app.Logger())
	projector.Register(app.EventPublisher())
	app.RegisterServices(projector)

	app.RegisterControllers(
		controllers.NewTechniciansController(app),
		controllers.NewAvailabilityController(app),
	)
	app.Navigation().Register(NavConfigs...)
	app.QuickLinks().Add(
		spotlight.NewQuickLink("truck", "NavigationLinks.Logistics", "/logistics").
			RequireVisible(logisticsVisible),
		spotlight.NewQuickLink("package", "NavigationLinks.Warehouse", "/warehouse").
			RequireVisible(logisticsVisible),
		spotlight.NewQuickLink("clock", "NavigationLinks.Timesheets", "/timesheets"),
	)
	return nil
}

func (m *Module) Name() string {
	return "crew"
}
