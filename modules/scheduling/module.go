package scheduling

import (
	"embed"

	"github.com/crewdeck/crewdeck/modules/scheduling/infrastructure/persistence"
	"github.com/crewdeck/crewdeck/modules/scheduling/presentation/controllers"
	"github.com/crewdeck/crewdeck/modules/scheduling/services"
	"github.com/crewdeck/crewdeck/pkg/application"
	"github.com/crewdeck/crewdeck/pkg/spotlight"
)

//go:embed presentation/locales/*.toml
var LocaleFiles embed.FS

//go:embed infrastructure/persistence/schema/scheduling-schema.sql
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
		services.NewScheduleService(
			persistence.NewJobRepository(),
			persistence.NewAssignmentRepository(),
			app.EventPublisher(),
		),
	)
	app.RegisterControllers(
		controllers.NewJobsController(app),
		controllers.NewCalendarController(app),
	)
	app.Navigation().Register(NavConfigs...)
	app.QuickLinks().Add(
		spotlight.NewQuickLink("kanban", "NavigationLinks.ProjectManagement", "/projects"),
		spotlight.NewQuickLink("bus", "NavigationLinks.Tours", "/tours"),
		spotlight.NewQuickLink("tent", "NavigationLinks.Festivals", "/festivals"),
	)
	return nil
}

func (m *Module) Name() string {
	return "scheduling"
}
