package modules

import (
	"github.com/crewdeck/crewdeck/modules/core"
	"github.com/crewdeck/crewdeck/modules/crew"
	"github.com/crewdeck/crewdeck/modules/scheduling"
	"github.com/crewdeck/crewdeck/pkg/application"
)

// BuiltInModules lists every product area in registration order. The order
// matters for migrations: scheduling's assignments reference crew's
// technicians.
var BuiltInModules = []application.Module{
	core.NewModule(),
	crew.NewModule(),
	scheduling.NewModule(),
}

func Load(app application.Application, mods ...application.Module) error {
	for _, module := range mods {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
