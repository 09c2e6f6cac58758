// Package navigation derives the set of visible destinations from the
// session's role/department/feature-flag context and reduces it to the
// bounded primary set shown on constrained surfaces.
package navigation

import (
	"fmt"
	"sort"

	"github.com/crewdeck/crewdeck/pkg/types"
)

// Builder holds the registered navigation table. Modules register their
// configs at load time; BuildItems is then a pure function of context.
type Builder struct {
	configs []types.NavigationItemConfig
	ids     map[string]struct{}
}

func NewBuilder() *Builder {
	return &Builder{ids: make(map[string]struct{})}
}

// Register appends configs to the table. Duplicate IDs are a programmer
// error and panic at startup.
func (b *Builder) Register(configs ...types.NavigationItemConfig) {
	for _, cfg := range configs {
		if cfg.ID == "" {
			panic("navigation: config with empty ID")
		}
		if _, ok := b.ids[cfg.ID]; ok {
			panic(fmt.Sprintf("navigation: duplicate config ID %q", cfg.ID))
		}
		b.ids[cfg.ID] = struct{}{}
		b.configs = append(b.configs, cfg)
	}
}

// Configs returns the registered table in registration order.
func (b *Builder) Configs() []types.NavigationItemConfig {
	return b.configs
}

// BuildItems resolves the table against ctx. The result is empty when the
// role is not yet known. Rows failing their visibility predicate or
// resolving to an empty label, icon or href are dropped silently; an item in
// the output always has all fields materialized. Items are ordered by
// MobilePriority, registration order breaking ties.
func (b *Builder) BuildItems(ctx types.NavigationContext) []types.NavigationItem {
	if ctx.Role == types.RoleUnknown {
		return []types.NavigationItem{}
	}
	items := make([]types.NavigationItem, 0, len(b.configs))
	for _, cfg := range b.configs {
		item, ok := types.ResolveItem(cfg, ctx)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].MobilePriority < items[j].MobilePriority
	})
	return items
}
