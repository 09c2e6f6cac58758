package navigation

import (
	"strings"

	"github.com/crewdeck/crewdeck/pkg/types"
)

// DefaultMaxPrimary is the number of slots on the mobile tab bar.
const DefaultMaxPrimary = 4

// ProfileItemID is the destination that must always reach the primary set
// when it is present in the item list.
const ProfileItemID = "profile"

// Profile is an ordered list of preferred item IDs for a department or role.
type Profile []string

// DefaultProfiles biases primary-item selection per normalized department
// first, role second.
var DefaultProfiles = map[string]Profile{
	"sound":      {"department-sound", "project-management", "tours", "festivals"},
	"lights":     {"department-lights", "project-management", "tours", "festivals"},
	"video":      {"department-video", "project-management", "tours", "festivals"},
	"logistics":  {"logistics", "warehouse", "timesheets", "profile"},
	"management": {"management-dashboard", "project-management", "tours", "festivals"},
	"admin":      {"management-dashboard", "administration", "project-management", "profile"},
}

type SelectPrimaryParams struct {
	Items      []types.NavigationItem
	Department string
	Role       types.Role
	MaxPrimary int

	// Profiles overrides DefaultProfiles; nil means the default table.
	Profiles map[string]Profile
}

// SelectPrimary reduces items to an ordered set of at most MaxPrimary
// destinations. Selection is deterministic: profile ordering first, then
// primary-flagged items in list order, then any remaining items, and finally
// the forced profile-item inclusion. Items is expected to be sorted by
// priority already (BuildItems output).
func SelectPrimary(p SelectPrimaryParams) []types.NavigationItem {
	if len(p.Items) == 0 || p.MaxPrimary <= 0 {
		return []types.NavigationItem{}
	}

	byID := make(map[string]types.NavigationItem, len(p.Items))
	for _, item := range p.Items {
		byID[item.ID] = item
	}
	used := make(map[string]struct{}, p.MaxPrimary)
	selected := make([]types.NavigationItem, 0, p.MaxPrimary)

	appendItem := func(item types.NavigationItem) {
		if _, ok := used[item.ID]; ok {
			return
		}
		used[item.ID] = struct{}{}
		selected = append(selected, item)
	}

	for _, id := range lookupProfile(p) {
		if len(selected) >= p.MaxPrimary {
			break
		}
		if item, ok := byID[id]; ok {
			appendItem(item)
		}
	}

	for _, item := range p.Items {
		if len(selected) >= p.MaxPrimary {
			break
		}
		if item.MobilePlacement == types.PlacementPrimary {
			appendItem(item)
		}
	}

	// Fill remaining slots regardless of placement so an under-specified
	// profile never leaves the tab bar half empty.
	for _, item := range p.Items {
		if len(selected) >= p.MaxPrimary {
			break
		}
		appendItem(item)
	}

	return forceProfileItem(selected, byID, p.MaxPrimary)
}

// SplitPrimary partitions items into the primary set and the overflow tray.
// No item ID appears in both halves.
func SplitPrimary(p SelectPrimaryParams) (primary, tray []types.NavigationItem) {
	primary = SelectPrimary(p)
	inPrimary := make(map[string]struct{}, len(primary))
	for _, item := range primary {
		inPrimary[item.ID] = struct{}{}
	}
	tray = make([]types.NavigationItem, 0, len(p.Items))
	for _, item := range p.Items {
		if _, ok := inPrimary[item.ID]; !ok {
			tray = append(tray, item)
		}
	}
	return primary, tray
}

func lookupProfile(p SelectPrimaryParams) Profile {
	profiles := p.Profiles
	if profiles == nil {
		profiles = DefaultProfiles
	}
	if dept := strings.ToLower(strings.TrimSpace(p.Department)); dept != "" {
		if profile, ok := profiles[dept]; ok {
			return profile
		}
	}
	if role := strings.ToLower(strings.TrimSpace(string(p.Role))); role != "" {
		if profile, ok := profiles[role]; ok {
			return profile
		}
	}
	return nil
}

// forceProfileItem guarantees the profile destination a slot. When the
// selection is at capacity without it, the last selected item is evicted.
// Kept as a separate post-processing step so the eviction rule stays
// independently testable.
func forceProfileItem(selected []types.NavigationItem, byID map[string]types.NavigationItem, maxPrimary int) []types.NavigationItem {
	profileItem, exists := byID[ProfileItemID]
	if !exists {
		return selected
	}
	for _, item := range selected {
		if item.ID == ProfileItemID {
			return selected
		}
	}
	if len(selected) < maxPrimary {
		return append(selected, profileItem)
	}
	if len(selected) == 0 {
		return selected
	}
	selected[len(selected)-1] = profileItem
	return selected
}
