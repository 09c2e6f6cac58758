package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewdeck/crewdeck/pkg/types"
)

func testConfigs() []types.NavigationItemConfig {
	return []types.NavigationItemConfig{
		{
			ID:              "dashboard",
			Label:           types.Static("NavigationLinks.Dashboard"),
			Icon:            types.Static("gauge"),
			Href:            types.StaticHref("/dashboard"),
			MobilePlacement: types.PlacementPrimary,
			MobilePriority:  10,
		},
		{
			ID:    "home-department",
			Label: types.Derived(func(ctx types.NavigationContext) string {
				if ctx.Department == "" {
					return ""
				}
				return "NavigationLinks.Department." + ctx.Department
			}),
			Icon: types.Derived(func(ctx types.NavigationContext) string {
				switch ctx.Department {
				case "sound":
					return "speaker-high"
				case "lights":
					return "lightbulb"
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
			MobilePlacement: types.PlacementPrimary,
			MobilePriority:  5,
		},
		{
			ID:             "admin",
			Label:          types.Static("NavigationLinks.Admin"),
			Icon:           types.Static("air-traffic-control"),
			Href:           types.StaticHref("/admin"),
			Visible:        func(ctx types.NavigationContext) bool { return ctx.Role == types.RoleAdmin },
			MobilePriority: 20,
		},
		{
			ID:             "beta-reports",
			Label:          types.Static("NavigationLinks.Reports"),
			Icon:           types.Static("chart-bar"),
			Href:           types.StaticHref("/reports"),
			Visible:        func(ctx types.NavigationContext) bool { return ctx.HasFlag("reports") },
			MobilePriority: 30,
		},
	}
}

func TestBuildItems_UnknownRoleReturnsEmpty(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Register(testConfigs()...)

	items := b.BuildItems(types.NavigationContext{Role: types.RoleUnknown, Department: "sound"})
	require.Empty(t, items)
}

func TestBuildItems_NoPartialItems(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Register(testConfigs()...)

	// No department: the derived home-department row cannot resolve a label,
	// icon or href and must be omitted entirely.
	items := b.BuildItems(types.NavigationContext{Role: types.RoleTechnician})
	for _, item := range items {
		assert.NotEmpty(t, item.Label, "item %s has empty label", item.ID)
		assert.NotEmpty(t, item.Icon, "item %s has empty icon", item.ID)
		assert.NotEmpty(t, item.Href, "item %s has empty href", item.ID)
	}
	for _, item := range items {
		require.NotEqual(t, "home-department", item.ID)
	}
}

func TestBuildItems_DerivedFieldsResolve(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Register(testConfigs()...)

	items := b.BuildItems(types.NavigationContext{Role: types.RoleTechnician, Department: "sound"})
	var found *types.NavigationItem
	for i := range items {
		if items[i].ID == "home-department" {
			found = &items[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "NavigationLinks.Department.sound", found.Label)
	assert.Equal(t, "speaker-high", found.Icon)
	assert.Equal(t, "/departments/sound", found.Href)
}

func TestBuildItems_VisibilityAndFlags(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Register(testConfigs()...)

	items := b.BuildItems(types.NavigationContext{Role: types.RoleTechnician})
	require.NotContains(t, itemIDs(items), "admin")
	require.NotContains(t, itemIDs(items), "beta-reports")

	items = b.BuildItems(types.NavigationContext{
		Role:         types.RoleAdmin,
		FeatureFlags: map[string]struct{}{"reports": {}},
	})
	require.Contains(t, itemIDs(items), "admin")
	require.Contains(t, itemIDs(items), "beta-reports")
}

func TestBuildItems_SortedByPriority(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Register(testConfigs()...)

	items := b.BuildItems(types.NavigationContext{Role: types.RoleTechnician, Department: "lights"})
	require.Equal(t, []string{"home-department", "dashboard"}, itemIDs(items))
}

func TestBuildItems_IsActive(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Register(types.NavigationItemConfig{
		ID:    "projects",
		Label: types.Static("NavigationLinks.Projects"),
		Icon:  types.Static("briefcase"),
		Href:  types.StaticHref("/projects"),
		Match: types.MatchPrefix("/projects"),
	}, types.NavigationItemConfig{
		ID:    "tours",
		Label: types.Static("NavigationLinks.Tours"),
		Icon:  types.Static("bus"),
		Href:  types.StaticHref("/tours"),
	})

	items := b.BuildItems(types.NavigationContext{Role: types.RoleManagement})
	require.Len(t, items, 2)

	projects, tours := items[0], items[1]
	assert.True(t, projects.IsActive("/projects"))
	assert.True(t, projects.IsActive("/projects/42/crew"))
	assert.False(t, projects.IsActive("/projectsarchive"))
	assert.True(t, tours.IsActive("/tours"))
	assert.False(t, tours.IsActive("/tours/7"))
}

func TestRegister_DuplicateIDPanics(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	b.Register(testConfigs()[0])
	require.Panics(t, func() {
		b.Register(testConfigs()[0])
	})
}

func itemIDs(items []types.NavigationItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
