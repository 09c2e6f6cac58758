package types

import "strings"

// Role is the coarse access role carried by the session. The zero value means
// the role is not yet known (e.g. the profile fetch has not resolved).
type Role string

const (
	RoleUnknown    Role = ""
	RoleManagement Role = "management"
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
	RoleFreelancer Role = "freelancer"
	RoleLogistics  Role = "logistics"
)

// NavigationContext is the immutable per-request input to navigation
// resolution. It is supplied by the session layer and never mutated here.
type NavigationContext struct {
	Role         Role
	Department   string
	FeatureFlags map[string]struct{}
}

func (c NavigationContext) HasFlag(flag string) bool {
	_, ok := c.FeatureFlags[flag]
	return ok
}

// Placement is the mobile surface hint of a navigation destination.
type Placement string

const (
	PlacementPrimary   Placement = "primary"
	PlacementSecondary Placement = "secondary"
)

// Text is either a static value or a value derived from the navigation
// context. Labels hold i18n message IDs; icons hold icon reference names.
type Text struct {
	literal string
	derive  func(NavigationContext) string
}

func Static(value string) Text {
	return Text{literal: value}
}

func Derived(fn func(NavigationContext) string) Text {
	return Text{derive: fn}
}

func (t Text) Resolve(ctx NavigationContext) string {
	if t.derive != nil {
		return t.derive(ctx)
	}
	return t.literal
}

func (t Text) IsZero() bool {
	return t.literal == "" && t.derive == nil
}

// NavigationItemConfig is one declarative row of the navigation table.
// ID must be unique across all registered configs.
type NavigationItemConfig struct {
	ID      string
	Label   Text
	Icon    Text
	Href    func(NavigationContext) string
	Visible func(NavigationContext) bool

	MobilePlacement Placement
	MobilePriority  int

	// Match overrides the default exact-path active check for the resolved
	// item. The first argument is the resolved href.
	Match func(href, path string) bool
}

// StaticHref adapts a literal path to the Href field signature.
func StaticHref(href string) func(NavigationContext) string {
	return func(NavigationContext) string { return href }
}

// MatchPrefix groups several sub-routes under one nav entry.
func MatchPrefix(prefix string) func(href, path string) bool {
	return func(_, path string) bool {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
}

// NavigationItem is a fully resolved navigation destination. All fields are
// materialized; partially resolved items are never produced.
type NavigationItem struct {
	ID              string
	Label           string
	Icon            string
	Href            string
	MobilePlacement Placement
	MobilePriority  int

	match func(href, path string) bool
}

func (n NavigationItem) IsActive(path string) bool {
	if n.match != nil {
		return n.match(n.Href, path)
	}
	return n.Href == path
}

// ResolveItem materializes a config against a context. The second return
// value is false when the row must be excluded: failed visibility predicate,
// empty label, empty icon or empty href.
func ResolveItem(cfg NavigationItemConfig, ctx NavigationContext) (NavigationItem, bool) {
	if cfg.Visible != nil && !cfg.Visible(ctx) {
		return NavigationItem{}, false
	}
	if cfg.Href == nil {
		return NavigationItem{}, false
	}
	label := cfg.Label.Resolve(ctx)
	icon := cfg.Icon.Resolve(ctx)
	href := cfg.Href(ctx)
	if label == "" || icon == "" || href == "" {
		return NavigationItem{}, false
	}
	return NavigationItem{
		ID:              cfg.ID,
		Label:           label,
		Icon:            icon,
		Href:            href,
		MobilePlacement: cfg.MobilePlacement,
		MobilePriority:  cfg.MobilePriority,
		match:           cfg.Match,
	}, true
}

// WithLabel returns a copy with the label replaced. Used by the application
// layer after localization so items stay immutable.
func (n NavigationItem) WithLabel(label string) NavigationItem {
	n.Label = label
	return n
}
