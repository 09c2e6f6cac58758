package core

import (
	"github.com/crewdeck/crewdeck/pkg/types"
)

func managementOrAdmin(ctx types.NavigationContext) bool {
	return ctx.Role == types.RoleManagement || ctx.Role == types.RoleAdmin
}

func departmentLink(id, label, icon, slug string, priority int) types.NavigationItemConfig {
	return types.NavigationItemConfig{
		ID:              id,
		Label:           types.Static(label),
		Icon:            types.Static(icon),
		Href:            types.StaticHref("/departments/" + slug),
		Visible:         managementOrAdmin,
		Match:           types.MatchPrefix("/departments/" + slug),
		MobilePlacement: types.PlacementPrimary,
		MobilePriority:  prioDepartments + priority,
	}
}

// Priority bands keep module tables independent: core owns 0-9 and 90+,
// scheduling 10-19, crew 20-39.
const (
	prioDashboard   = 0
	prioDepartments = 1
	prioHomeDept    = 5
	prioSoundvision = 40
	prioSettings    = 90
	prioAdmin       = 91
	prioProfile     = 100
)

var NavConfigs = []types.NavigationItemConfig{
	{
		ID:              "management-dashboard",
		Label:           types.Static("NavigationLinks.ManagementDashboard"),
		Icon:            types.Static("gauge"),
		Href:            types.StaticHref("/dashboard"),
		Visible:         managementOrAdmin,
		MobilePlacement: types.PlacementPrimary,
		MobilePriority:  prioDashboard,
	},
	departmentLink("department-sound", "NavigationLinks.DepartmentSound", "speaker-high", "sound", 0),
	departmentLink("department-lights", "NavigationLinks.DepartmentLights", "lightbulb", "lights", 1),
	departmentLink("department-video", "NavigationLinks.DepartmentVideo", "video-camera", "video", 2),
	{
		// The technician's own department; label and icon depend on which
		// one that is, so the whole row disappears without a department.
		ID: "home-department",
		Label: types.Derived(func(ctx types.NavigationContext) string {
			switch ctx.Department {
			case "sound":
				return "NavigationLinks.DepartmentSound"
			case "lights":
				return "NavigationLinks.DepartmentLights"
			case "video":
				return "NavigationLinks.DepartmentVideo"
			default:
				return ""
			}
		}),
		Icon: types.Derived(func(ctx types.NavigationContext) string {
			switch ctx.Department {
			case "sound":
				return "speaker-high"
			case "lights":
				return "lightbulb"
			case "video":
				return "video-camera"
			default:
				return ""
			}
		}),
		Href: func(ctx types.NavigationContext) string {
			if ctx.Department == "" {
				return ""
			}
			return "/departments/" + ctx.Department
		},
		Visible: func(ctx types.NavigationContext) bool {
			switch ctx.Role {
			case types.RoleTechnician, types.RoleFreelancer, types.RoleLogistics:
				return true
			}
			return false
		},
		MobilePlacement: types.PlacementPrimary,
		MobilePriority:  prioHomeDept,
	},
	{
		// Management gets the curated department dashboards instead.
		ID:      "soundvision-files",
		Label:   types.Static("NavigationLinks.SoundvisionFiles"),
		Icon:    types.Static("folder-open"),
		Href:    types.StaticHref("/soundvision"),
		Visible: func(ctx types.NavigationContext) bool { return ctx.Role != types.RoleManagement },

		MobilePlacement: types.PlacementSecondary,
		MobilePriority:  prioSoundvision,
	},
	{
		ID:              "settings",
		Label:           types.Static("NavigationLinks.Settings"),
		Icon:            types.Static("gear"),
		Href:            types.StaticHref("/settings"),
		Visible:         func(ctx types.NavigationContext) bool { return ctx.Role == types.RoleAdmin },
		MobilePlacement: types.PlacementSecondary,
		MobilePriority:  prioSettings,
	},
	{
		ID:              "administration",
		Label:           types.Static("NavigationLinks.Administration"),
		Icon:            types.Static("air-traffic-control"),
		Href:            types.StaticHref("/admin"),
		Visible:         func(ctx types.NavigationContext) bool { return ctx.Role == types.RoleAdmin },
		Match:           types.MatchPrefix("/admin"),
		MobilePlacement: types.PlacementSecondary,
		MobilePriority:  prioAdmin,
	},
	{
		ID:              "profile",
		Label:           types.Static("NavigationLinks.Profile"),
		Icon:            types.Static("user-circle"),
		Href:            types.StaticHref("/profile"),
		MobilePlacement: types.PlacementSecondary,
		MobilePriority:  prioProfile,
	},
}
