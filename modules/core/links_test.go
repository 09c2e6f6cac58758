package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewdeck/crewdeck/modules/core"
	"github.com/crewdeck/crewdeck/pkg/navigation"
	"github.com/crewdeck/crewdeck/pkg/types"
)

func buildFor(t *testing.T, ctx types.NavigationContext) []types.NavigationItem {
	t.Helper()
	b := navigation.NewBuilder()
	b.Register(core.NavConfigs...)
	return b.BuildItems(ctx)
}

func ids(items []types.NavigationItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestNavConfigs_Management(t *testing.T) {
	items := buildFor(t, types.NavigationContext{Role: types.RoleManagement})

	got := ids(items)
	assert.Contains(t, got, "management-dashboard")
	assert.Contains(t, got, "department-sound")
	assert.Contains(t, got, "department-lights")
	assert.Contains(t, got, "department-video")
	assert.Contains(t, got, "profile")
	assert.NotContains(t, got, "soundvision-files")
	assert.NotContains(t, got, "home-department")
	assert.NotContains(t, got, "settings")
	assert.NotContains(t, got, "administration")
}

func TestNavConfigs_TechnicianSound(t *testing.T) {
	items := buildFor(t, types.NavigationContext{
		Role:       types.RoleTechnician,
		Department: "sound",
	})

	got := ids(items)
	assert.NotContains(t, got, "management-dashboard")
	assert.NotContains(t, got, "department-lights")
	assert.Contains(t, got, "soundvision-files")
	assert.Contains(t, got, "profile")

	var home types.NavigationItem
	for _, item := range items {
		if item.ID == "home-department" {
			home = item
		}
	}
	require.Equal(t, "home-department", home.ID)
	assert.Equal(t, "NavigationLinks.DepartmentSound", home.Label)
	assert.Equal(t, "speaker-high", home.Icon)
	assert.Equal(t, "/departments/sound", home.Href)
}

func TestNavConfigs_TechnicianWithoutDepartment(t *testing.T) {
	items := buildFor(t, types.NavigationContext{Role: types.RoleTechnician})

	// Label and href derive from the department; with none set the whole
	// row drops out rather than rendering empty.
	assert.NotContains(t, ids(items), "home-department")
}

func TestNavConfigs_Admin(t *testing.T) {
	items := buildFor(t, types.NavigationContext{Role: types.RoleAdmin})

	got := ids(items)
	assert.Contains(t, got, "settings")
	assert.Contains(t, got, "administration")
	assert.Contains(t, got, "management-dashboard")
}

func TestNavConfigs_UnknownRole(t *testing.T) {
	items := buildFor(t, types.NavigationContext{})
	assert.Empty(t, items)
}

func TestNavConfigs_SortedByPriority(t *testing.T) {
	items := buildFor(t, types.NavigationContext{Role: types.RoleAdmin})
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].MobilePriority, items[i].MobilePriority)
	}
}

func TestNavConfigs_ActiveMatch(t *testing.T) {
	items := buildFor(t, types.NavigationContext{Role: types.RoleManagement})
	for _, item := range items {
		if item.ID != "department-sound" {
			continue
		}
		assert.True(t, item.IsActive("/departments/sound"))
		assert.True(t, item.IsActive("/departments/sound/files"))
		assert.False(t, item.IsActive("/departments/lights"))
	}
}
