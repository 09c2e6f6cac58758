package core

import (
	"embed"

	"github.com/crewdeck/crewdeck/modules/core/infrastructure/persistence"
	"github.com/crewdeck/crewdeck/modules/core/presentation/controllers"
	"github.com/crewdeck/crewdeck/modules/core/services"
	"github.com/crewdeck/crewdeck/pkg/application"
	"github.com/crewdeck/crewdeck/pkg/spotlight"
	"github.com/crewdeck/crewdeck/pkg/types"
)

//go:embed presentation/locales/*.toml
var LocaleFiles embed.FS

//go:embed infrastructure/persistence/schema/core-schema.sql
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
		services.NewUserService(persistence.NewUserRepository(), app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewNavigationController(app),
		controllers.NewSpotlightController(app),
		controllers.NewUsersController(app),
		controllers.NewWebsocketController(app),
	)
	app.Navigation().Register(NavConfigs...)
	app.QuickLinks().Add(
		spotlight.NewQuickLink("gauge", "NavigationLinks.ManagementDashboard", "/dashboard").
			RequireVisible(managementOrAdmin),
		spotlight.NewQuickLink("gear", "NavigationLinks.Settings", "/settings").
			RequireVisible(func(ctx types.NavigationContext) bool { return ctx.Role == types.RoleAdmin }),
		spotlight.NewQuickLink("user-circle", "NavigationLinks.Profile", "/profile"),
	)
	return nil
}

func (m *Module) Name() string {
	return "core"
}
