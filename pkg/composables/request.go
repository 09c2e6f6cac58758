package composables

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/crewdeck/crewdeck/pkg/constants"
	"github.com/crewdeck/crewdeck/pkg/types"
)

var (
	ErrNoLogger     = errors.New("logger not found")
	ErrNoNavContext = errors.New("navigation context not found")
)

type Params struct {
	IP        string
	UserAgent string
	RequestID string
	Request   *http.Request
	Writer    http.ResponseWriter
}

// UseParams returns the request parameters from the context.
// If the parameters are not found, the second return value will be false.
func UseParams(ctx context.Context) (*Params, bool) {
	params, ok := ctx.Value(constants.ParamsKey).(*Params)
	return params, ok
}

// WithParams returns a new context with the request parameters.
func WithParams(ctx context.Context, params *Params) context.Context {
	return context.WithValue(ctx, constants.ParamsKey, params)
}

// UseLogger returns the per-request logger entry from the context.
func UseLogger(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(constants.LoggerKey)
	if logger == nil {
		panic("logger not found")
	}
	return logger.(*logrus.Entry)
}

// WithLogger returns a new context with the request logger entry.
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

// UseIP returns the IP address from the context.
// If the IP address is not found, the second return value will be false.
func UseIP(ctx context.Context) (string, bool) {
	params, ok := UseParams(ctx)
	if !ok {
		return "", false
	}
	return params.IP, true
}

// WithNavContext returns a new context carrying the resolved navigation
// context for the current session.
func WithNavContext(ctx context.Context, navCtx types.NavigationContext) context.Context {
	return context.WithValue(ctx, constants.NavContextKey, navCtx)
}

// UseNavContext returns the navigation context of the current session. The
// zero NavigationContext (unknown role) is returned when none was provided.
func UseNavContext(ctx context.Context) types.NavigationContext {
	navCtx, ok := ctx.Value(constants.NavContextKey).(types.NavigationContext)
	if !ok {
		return types.NavigationContext{}
	}
	return navCtx
}
