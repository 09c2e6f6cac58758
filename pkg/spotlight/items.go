package spotlight

import (
	"context"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/crewdeck/crewdeck/pkg/composables"
	"github.com/crewdeck/crewdeck/pkg/intl"
	"github.com/crewdeck/crewdeck/pkg/types"
)

// Result is a ranked quick-search hit, ready for the JSON surface.
type Result struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Link  string `json:"link"`
}

func NewQuickLink(icon, trKey, link string) *QuickLink {
	return &QuickLink{trKey: trKey, icon: icon, link: link}
}

type QuickLink struct {
	trKey   string
	icon    string
	link    string
	visible func(types.NavigationContext) bool
}

// RequireVisible gates the quick link behind the same predicate shape the
// navigation table uses.
func (l *QuickLink) RequireVisible(fn func(types.NavigationContext) bool) *QuickLink {
	l.visible = fn
	return l
}

type QuickLinks struct {
	items []*QuickLink
}

func (ql *QuickLinks) Add(links ...*QuickLink) {
	ql.items = append(ql.items, links...)
}

// Find returns quick links visible to the caller's navigation context,
// fuzzy-ranked against the localized labels.
func (ql *QuickLinks) Find(ctx context.Context, q string) []Result {
	links := ql.visibleLinks(ctx)
	if len(links) == 0 {
		return nil
	}
	labels := make([]string, len(links))
	for i, link := range links {
		labels[i] = intl.T(ctx, link.trKey)
	}
	ranks := fuzzy.RankFindNormalizedFold(q, labels)
	sort.Sort(ranks)

	results := make([]Result, 0, len(ranks))
	for _, rank := range ranks {
		link := links[rank.OriginalIndex]
		results = append(results, Result{
			Label: labels[rank.OriginalIndex],
			Icon:  link.icon,
			Link:  link.link,
		})
	}
	return results
}

func (ql *QuickLinks) visibleLinks(ctx context.Context) []*QuickLink {
	navCtx := composables.UseNavContext(ctx)
	if navCtx.Role == types.RoleUnknown {
		return nil
	}
	filtered := make([]*QuickLink, 0, len(ql.items))
	for _, link := range ql.items {
		if link.visible != nil && !link.visible(navCtx) {
			continue
		}
		filtered = append(filtered, link)
	}
	return filtered
}
