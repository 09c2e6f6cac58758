package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewdeck/crewdeck/pkg/types"
)

func item(id string, placement types.Placement, priority int) types.NavigationItem {
	cfg := types.NavigationItemConfig{
		ID:              id,
		Label:           types.Static("NavigationLinks." + id),
		Icon:            types.Static("icon-" + id),
		Href:            types.StaticHref("/" + id),
		MobilePlacement: placement,
		MobilePriority:  priority,
	}
	resolved, ok := types.ResolveItem(cfg, types.NavigationContext{Role: types.RoleManagement})
	if !ok {
		panic("fixture item did not resolve")
	}
	return resolved
}

// soundItems mirrors the sound department's item list, already sorted by
// priority the way BuildItems emits it.
func soundItems() []types.NavigationItem {
	return []types.NavigationItem{
		item("department-sound", types.PlacementPrimary, 0),
		item("project-management", types.PlacementPrimary, 1),
		item("tours", types.PlacementPrimary, 2),
		item("festivals", types.PlacementPrimary, 3),
		item("timesheets", types.PlacementSecondary, 4),
		item("documents", types.PlacementSecondary, 5),
	}
}

func TestSelectPrimary_DepartmentProfileOrder(t *testing.T) {
	t.Parallel()

	got := SelectPrimary(SelectPrimaryParams{
		Items:      soundItems(),
		Department: "sound",
		Role:       types.RoleManagement,
		MaxPrimary: DefaultMaxPrimary,
	})
	require.Equal(t, []string{"department-sound", "project-management", "tours", "festivals"}, itemIDs(got))
}

func TestSelectPrimary_DepartmentNormalized(t *testing.T) {
	t.Parallel()

	got := SelectPrimary(SelectPrimaryParams{
		Items:      soundItems(),
		Department: "  Sound ",
		MaxPrimary: DefaultMaxPrimary,
	})
	require.Equal(t, []string{"department-sound", "project-management", "tours", "festivals"}, itemIDs(got))
}

func TestSelectPrimary_FallsBackToRoleProfile(t *testing.T) {
	t.Parallel()

	items := []types.NavigationItem{
		item("management-dashboard", types.PlacementPrimary, 0),
		item("project-management", types.PlacementPrimary, 1),
		item("tours", types.PlacementPrimary, 2),
		item("festivals", types.PlacementPrimary, 3),
	}
	got := SelectPrimary(SelectPrimaryParams{
		Items:      items,
		Department: "catering", // no profile configured
		Role:       types.RoleManagement,
		MaxPrimary: DefaultMaxPrimary,
	})
	require.Equal(t, []string{"management-dashboard", "project-management", "tours", "festivals"}, itemIDs(got))
}

func TestSelectPrimary_NoProfileUsesPlacementThenOrder(t *testing.T) {
	t.Parallel()

	items := []types.NavigationItem{
		item("a", types.PlacementSecondary, 0),
		item("b", types.PlacementPrimary, 1),
		item("c", types.PlacementSecondary, 2),
		item("d", types.PlacementPrimary, 3),
	}
	got := SelectPrimary(SelectPrimaryParams{
		Items:      items,
		MaxPrimary: 3,
	})
	// Primary-flagged first in list order, then the remaining fill.
	require.Equal(t, []string{"b", "d", "a"}, itemIDs(got))
}

func TestSelectPrimary_ZeroMax(t *testing.T) {
	t.Parallel()

	require.Empty(t, SelectPrimary(SelectPrimaryParams{Items: soundItems(), MaxPrimary: 0}))
	require.Empty(t, SelectPrimary(SelectPrimaryParams{Items: nil, MaxPrimary: DefaultMaxPrimary}))
}

func TestSelectPrimary_CapAndFill(t *testing.T) {
	t.Parallel()

	items := soundItems()
	for max := 1; max <= len(items)+2; max++ {
		got := SelectPrimary(SelectPrimaryParams{Items: items, Department: "sound", MaxPrimary: max})
		assert.LessOrEqual(t, len(got), max)
		expected := max
		if len(items) < max {
			expected = len(items)
		}
		assert.Len(t, got, expected, "maxPrimary=%d", max)
	}
}

func TestSelectPrimary_ProfileItemAppendedWhenRoom(t *testing.T) {
	t.Parallel()

	items := []types.NavigationItem{
		item("dashboard", types.PlacementPrimary, 0),
		item("profile", types.PlacementSecondary, 10),
	}
	got := SelectPrimary(SelectPrimaryParams{Items: items, MaxPrimary: DefaultMaxPrimary})
	require.Equal(t, []string{"dashboard", "profile"}, itemIDs(got))
}

func TestSelectPrimary_ProfileItemEvictsLastAtCapacity(t *testing.T) {
	t.Parallel()

	items := append(soundItems(), item("profile", types.PlacementSecondary, 99))
	got := SelectPrimary(SelectPrimaryParams{
		Items:      items,
		Department: "sound",
		MaxPrimary: DefaultMaxPrimary,
	})
	// The department profile fills all four slots; the profile destination
	// replaces the last one.
	require.Equal(t, []string{"department-sound", "project-management", "tours", "profile"}, itemIDs(got))
}

func TestSelectPrimary_ProfileItemGuaranteeSingleSlot(t *testing.T) {
	t.Parallel()

	items := append(soundItems(), item("profile", types.PlacementSecondary, 99))
	got := SelectPrimary(SelectPrimaryParams{Items: items, Department: "sound", MaxPrimary: 1})
	require.Equal(t, []string{"profile"}, itemIDs(got))
}

func TestSplitPrimary_NoDuplicateIDs(t *testing.T) {
	t.Parallel()

	items := append(soundItems(), item("profile", types.PlacementSecondary, 99))
	primary, tray := SplitPrimary(SelectPrimaryParams{
		Items:      items,
		Department: "sound",
		MaxPrimary: DefaultMaxPrimary,
	})

	seen := map[string]struct{}{}
	for _, it := range primary {
		_, dup := seen[it.ID]
		require.False(t, dup, "duplicate id %s", it.ID)
		seen[it.ID] = struct{}{}
	}
	for _, it := range tray {
		_, dup := seen[it.ID]
		require.False(t, dup, "id %s in both primary and tray", it.ID)
		seen[it.ID] = struct{}{}
	}
	require.Len(t, seen, len(items))
}

func TestSelectPrimary_Deterministic(t *testing.T) {
	t.Parallel()

	params := SelectPrimaryParams{
		Items:      append(soundItems(), item("profile", types.PlacementSecondary, 99)),
		Department: "sound",
		Role:       types.RoleManagement,
		MaxPrimary: DefaultMaxPrimary,
	}
	first := itemIDs(SelectPrimary(params))
	for i := 0; i < 20; i++ {
		require.Equal(t, first, itemIDs(SelectPrimary(params)))
	}
}

func TestSelectPrimary_CustomProfiles(t *testing.T) {
	t.Parallel()

	got := SelectPrimary(SelectPrimaryParams{
		Items:      soundItems(),
		Department: "sound",
		MaxPrimary: 2,
		Profiles: map[string]Profile{
			"sound": {"documents", "timesheets"},
		},
	})
	require.Equal(t, []string{"documents", "timesheets"}, itemIDs(got))
}
