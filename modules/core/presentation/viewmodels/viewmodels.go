package viewmodels

import "github.com/crewdeck/crewdeck/pkg/types"

type NavigationItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	Href      string `json:"href"`
	Placement string `json:"placement"`
	Priority  int    `json:"priority"`
	Active    bool   `json:"active"`
}

type Navigation struct {
	Items   []NavigationItem `json:"items"`
	Primary []NavigationItem `json:"primary"`
	Tray    []NavigationItem `json:"tray"`
}

type User struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	FullName     string   `json:"fullName"`
	Role         string   `json:"role"`
	Department   string   `json:"department,omitempty"`
	FeatureFlags []string `json:"featureFlags"`
}

// NavigationItemViewModel materializes the active flag against the path the
// client is currently on.
func NavigationItemViewModel(item types.NavigationItem, activePath string) NavigationItem {
	return NavigationItem{
		ID:        item.ID,
		Label:     item.Label,
		Icon:      item.Icon,
		Href:      item.Href,
		Placement: string(item.MobilePlacement),
		Priority:  item.MobilePriority,
		Active:    activePath != "" && item.IsActive(activePath),
	}
}

func NavigationItemViewModels(items []types.NavigationItem, activePath string) []NavigationItem {
	vms := make([]NavigationItem, 0, len(items))
	for _, item := range items {
		vms = append(vms, NavigationItemViewModel(item, activePath))
	}
	return vms
}
