package crew

import (
	"github.com/crewdeck/crewdeck/pkg/types"
)

// Crew owns the 20-39 priority band.
const (
	prioLogistics  = 20
	prioWarehouse  = 21
	prioCrew       = 24
	prioTimesheets = 25
)

func logisticsVisible(ctx types.NavigationContext) bool {
	switch ctx.Role {
	case types.RoleLogistics, types.RoleManagement, types.RoleAdmin:
		return true
	}
	return false
}

var NavConfigs = []types.NavigationItemConfig{
	{
		ID:              "logistics",
		Label:           types.Static("NavigationLinks.Logistics"),
		Icon:            types.Static("truck"),
		Href:            types.StaticHref("/logistics"),
		Visible:         logisticsVisible,
		Match:           types.MatchPrefix("/logistics"),
		MobilePlacement: types.PlacementPrimary,
		MobilePriority:  prioLogistics,
	},
	{
		ID:              "warehouse",
		Label:           types.Static("NavigationLinks.Warehouse"),
		Icon:            types.Static("package"),
		Href:            types.StaticHref("/warehouse"),
		Visible:         logisticsVisible,
		Match:           types.MatchPrefix("/warehouse"),
		MobilePlacement: types.PlacementPrimary,
		MobilePriority:  prioWarehouse,
	},
	{
		ID:              "crew",
		Label:           types.Static("NavigationLinks.Crew"),
		Icon:            types.Static("users-three"),
		Href:            types.StaticHref("/crew"),
		Visible: func(ctx types.NavigationContext) bool {
			return ctx.Role == types.RoleManagement || ctx.Role == types.RoleAdmin
		},
		Match:           types.MatchPrefix("/crew"),
		MobilePlacement: types.PlacementSecondary,
		MobilePriority:  prioCrew,
	},
	{
		ID:              "timesheets",
		Label:           types.Static("NavigationLinks.Timesheets"),
		Icon:            types.Static("clock"),
		Href:            types.StaticHref("/timesheets"),
		MobilePlacement: types.PlacementPrimary,
		MobilePriority:  prioTimesheets,
	},
}
