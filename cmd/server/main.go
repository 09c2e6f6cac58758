package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crewdeck/crewdeck/internal/server"
	"github.com/crewdeck/crewdeck/modules"
	coreservices "github.com/crewdeck/crewdeck/modules/core/services"
	crewservices "github.com/crewdeck/crewdeck/modules/crew/services"
	"github.com/crewdeck/crewdeck/pkg/application"
	"github.com/crewdeck/crewdeck/pkg/composables"
	"github.com/crewdeck/crewdeck/pkg/configuration"
	"github.com/crewdeck/crewdeck/pkg/eventbus"
	"github.com/crewdeck/crewdeck/pkg/ws"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		panic(err)
	}

	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		Bundle:   application.LoadBundle(),
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
		Huber: ws.NewHub(&ws.HubOptions{
			Logger:       logger,
			CheckOrigin:  checkOrigin(conf),
			WriteTimeout: conf.Realtime.WriteTimeout,
			PingInterval: conf.Realtime.PingInterval,
		}),
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	poolCtx := composables.WithPool(context.Background(), pool)
	if err := app.Migrations().Apply(poolCtx); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}
	if err := primeAvailability(poolCtx, app); err != nil {
		log.Fatalf("failed to prime availability store: %v", err)
	}

	userService := app.Service(coreservices.UserService{}).(*coreservices.UserService)
	serverInstance, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
		Pool:          pool,
		NavResolver:   userService,
	})
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	log.Printf("Listening on: %s\n", conf.Origin)
	if err := serverInstance.Start(conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// primeAvailability seeds the in-memory store from the persisted overrides
// so the first snapshot request is complete without waiting for changes.
func primeAvailability(ctx context.Context, app application.Application) error {
	availabilityService := app.Service(crewservices.AvailabilityService{}).(*crewservices.AvailabilityService)
	projector := app.Service(crewservices.AvailabilityProjector{}).(*crewservices.AvailabilityProjector)

	snapshot, err := availabilityService.Snapshot(ctx)
	if err != nil {
		return err
	}
	projector.Prime(snapshot)
	return nil
}

func checkOrigin(conf *configuration.Configuration) func(r *http.Request) bool {
	allowed := strings.Split(conf.Realtime.AllowedOrigins, ",")
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || origin == conf.Origin {
			return true
		}
		for _, candidate := range allowed {
			if candidate != "" && strings.TrimSpace(candidate) == origin {
				return true
			}
		}
		return false
	}
}
