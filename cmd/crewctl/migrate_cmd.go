package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/modules"
	"github.com/crewdeck/crewdeck/pkg/application"
	"github.com/crewdeck/crewdeck/pkg/composables"
	"github.com/crewdeck/crewdeck/pkg/configuration"
	"github.com/crewdeck/crewdeck/pkg/eventbus"
)

// bootstrap loads the full module set against a fresh pool so commands see
// the same schema registrations the server does.
func bootstrap(ctx context.Context) (application.Application, *pgxpool.Pool, error) {
	conf := configuration.Use()
	logger := conf.Logger()

	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		return nil, nil, err
	}
	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		Bundle:   application.LoadBundle(),
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return app, pool, nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply every registered module schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			app, pool, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := app.Migrations().Apply(composables.WithPool(ctx, pool)); err != nil {
				return err
			}
			cmd.Println("migrations applied")
			return nil
		},
	}
}
