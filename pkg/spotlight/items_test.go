package spotlight

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crewdeck/crewdeck/pkg/composables"
	"github.com/crewdeck/crewdeck/pkg/types"
)

func TestQuickLinks_FindRanksMatches(t *testing.T) {
	t.Parallel()

	links := QuickLinks{}
	links.Add(
		NewQuickLink("bus", "Tours", "/tours"),
		NewQuickLink("confetti", "Festivals", "/festivals"),
		NewQuickLink("clock", "Timesheets", "/timesheets"),
	)

	ctx := composables.WithNavContext(context.Background(), types.NavigationContext{
		Role: types.RoleTechnician,
	})

	found := links.Find(ctx, "tour")
	require.NotEmpty(t, found)
	require.Equal(t, "/tours", found[0].Link)
}

func TestQuickLinks_VisibilityFiltered(t *testing.T) {
	t.Parallel()

	links := QuickLinks{}
	links.Add(
		NewQuickLink("gauge", "Dashboard", "/dashboard").RequireVisible(
			func(ctx types.NavigationContext) bool { return ctx.Role == types.RoleManagement },
		),
	)

	ctx := composables.WithNavContext(context.Background(), types.NavigationContext{
		Role: types.RoleTechnician,
	})
	require.Empty(t, links.Find(ctx, "dash"))

	ctx = composables.WithNavContext(context.Background(), types.NavigationContext{
		Role: types.RoleManagement,
	})
	require.Len(t, links.Find(ctx, "dash"), 1)
}

func TestQuickLinks_UnknownRoleSeesNothing(t *testing.T) {
	t.Parallel()

	links := QuickLinks{}
	links.Add(NewQuickLink("bus", "Tours", "/tours"))

	require.Empty(t, links.Find(context.Background(), "tours"))
}
