package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/crewdeck/crewdeck/modules/core/domain/aggregates/user"
	coreservices "github.com/crewdeck/crewdeck/modules/core/services"
	"github.com/crewdeck/crewdeck/modules/crew/domain/aggregates/technician"
	crewservices "github.com/crewdeck/crewdeck/modules/crew/services"
	"github.com/crewdeck/crewdeck/pkg/composables"
	"github.com/crewdeck/crewdeck/pkg/types"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert development fixtures: users and technicians",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			app, pool, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			seedCtx := composables.WithPool(ctx, pool)
			if err := app.Migrations().Apply(seedCtx); err != nil {
				return err
			}

			userService := app.Service(coreservices.UserService{}).(*coreservices.UserService)
			for _, u := range seedUsers() {
				if _, err := userService.Create(seedCtx, u); err != nil {
					return err
				}
			}

			technicianService := app.Service(crewservices.TechnicianService{}).(*crewservices.TechnicianService)
			for _, t := range seedTechnicians() {
				if _, err := technicianService.Create(seedCtx, t); err != nil {
					return err
				}
			}

			cmd.Println("seed data inserted")
			return nil
		},
	}
}

func seedUsers() []*user.User {
	return []*user.User{
		{
			Email:     "pm@crewdeck.local",
			FirstName: "Petra",
			LastName:  "Maler",
			Role:      types.RoleManagement,
		},
		{
			Email:      "sound@crewdeck.local",
			FirstName:  "Sam",
			LastName:   "Richter",
			Role:       types.RoleTechnician,
			Department: "sound",
		},
		{
			Email:     "admin@crewdeck.local",
			FirstName: "Alex",
			LastName:  "Berg",
			Role:      types.RoleAdmin,
		},
		{
			Email:     "logistics@crewdeck.local",
			FirstName: "Lena",
			LastName:  "Koch",
			Role:      types.RoleLogistics,
		},
	}
}

func seedTechnicians() []*technician.Technician {
	return []*technician.Technician{
		{
			FirstName:  "Sam",
			LastName:   "Richter",
			Email:      "sound@crewdeck.local",
			Department: "sound",
			Employment: technician.EmploymentStaff,
			Skills:     []string{"foh", "monitors"},
		},
		{
			FirstName:  "Mia",
			LastName:   "Wagner",
			Email:      "mia@crewdeck.local",
			Department: "lights",
			Employment: technician.EmploymentFreelance,
			Skills:     []string{"grandma3"},
		},
		{
			FirstName:  "Jon",
			LastName:   "Falk",
			Email:      "jon@crewdeck.local",
			Department: "video",
			Employment: technician.EmploymentStaff,
			Skills:     []string{"led", "cameras"},
		},
	}
}
