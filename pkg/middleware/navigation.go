package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/crewdeck/crewdeck/pkg/composables"
	"github.com/crewdeck/crewdeck/pkg/configuration"
	"github.com/crewdeck/crewdeck/pkg/constants"
	"github.com/crewdeck/crewdeck/pkg/navigation"
	"github.com/crewdeck/crewdeck/pkg/types"
)

// NavContextResolver maps the forwarded user identity to a navigation
// context. Implemented by the core module's user service.
type NavContextResolver interface {
	NavContext(ctx context.Context, userID string) (types.NavigationContext, error)
}

// ProvideNavContext resolves the caller's navigation context from the
// identity header the auth proxy forwards. An absent or unresolvable
// identity leaves the zero context in place (unknown role), which downstream
// resolution treats as "not yet known".
func ProvideNavContext(resolver NavContextResolver) mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			navCtx := types.NavigationContext{}
			if userID := r.Header.Get(conf.UserIDHeader); userID != "" {
				resolved, err := resolver.NavContext(r.Context(), userID)
				if err != nil {
					composables.UseLogger(r.Context()).
						WithError(err).
						WithField("userId", userID).
						Warn("navigation context resolution failed")
				} else {
					navCtx = resolved
				}
			}
			ctx := composables.WithNavContext(r.Context(), navCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NavItemsApplication is the slice of the application the NavItems
// middleware needs.
type NavItemsApplication interface {
	NavItemsFor(ctx context.Context, navCtx types.NavigationContext) []types.NavigationItem
}

// NavItems resolves the visible navigation items plus the primary/tray split
// for the request's context and stores all three in the request context.
func NavItems(app NavItemsApplication) mux.MiddlewareFunc {
	conf := configuration.Use()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			navCtx := composables.UseNavContext(r.Context())
			items := app.NavItemsFor(r.Context(), navCtx)
			primary, tray := navigation.SplitPrimary(navigation.SelectPrimaryParams{
				Items:      items,
				Department: navCtx.Department,
				Role:       navCtx.Role,
				MaxPrimary: conf.Navigation.MaxPrimary,
			})

			ctx := context.WithValue(r.Context(), constants.NavItemsKey, items)
			ctx = context.WithValue(ctx, constants.PrimaryKey, primary)
			ctx = context.WithValue(ctx, constants.TrayKey, tray)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UseNavItems returns the resolved items placed by NavItems middleware.
func UseNavItems(ctx context.Context) []types.NavigationItem {
	items, _ := ctx.Value(constants.NavItemsKey).([]types.NavigationItem)
	return items
}

// UsePrimaryNavItems returns the primary/tray partition placed by NavItems.
func UsePrimaryNavItems(ctx context.Context) (primary, tray []types.NavigationItem) {
	primary, _ = ctx.Value(constants.PrimaryKey).([]types.NavigationItem)
	tray, _ = ctx.Value(constants.TrayKey).([]types.NavigationItem)
	return primary, tray
}
