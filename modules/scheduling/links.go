package scheduling

import (
	"github.com/crewdeck/crewdeck/pkg/types"
)

// Scheduling owns the 10-19 priority band.
const (
	prioProjects  = 10
	prioTours     = 11
	prioFestivals = 12
)

var NavConfigs = []types.NavigationItemConfig{
	{
		ID:              "project-management",
		Label:           types.Static("NavigationLinks.ProjectManagement"),
		Icon:            types.Static("kanban"),
		Href:            types.StaticHref("/projects"),
		Match:           types.MatchPrefix("/projects"),
		MobilePlacement: types.PlacementPrimary,
		MobilePriority:  prioProjects,
	},
	{
		ID:              "tours",
		Label:           types.Static("NavigationLinks.Tours"),
		Icon:            types.Static("bus"),
		Href:            types.StaticHref("/tours"),
		Match:           types.MatchPrefix("/tours"),
		MobilePlacement: types.PlacementPrimary,
		MobilePriority:  prioTours,
	},
	{
		ID:              "festivals",
		Label:           types.Static("NavigationLinks.Festivals"),
		Icon:            types.Static("tent"),
		Href:            types.StaticHref("/festivals"),
		Match:           types.MatchPrefix("/festivals"),
		MobilePlacement: types.PlacementPrimary,
		MobilePriority:  prioFestivals,
	},
}
