package constants

type ContextKey string

const (
	AppKey        ContextKey = "app"
	PoolKey       ContextKey = "pool"
	LoggerKey     ContextKey = "logger"
	ParamsKey     ContextKey = "params"
	TxKey         ContextKey = "tx"
	UserKey       ContextKey = "user"
	NavContextKey ContextKey = "navContext"
	NavItemsKey   ContextKey = "navItems"
	PrimaryKey    ContextKey = "primaryNavItems"
	TrayKey       ContextKey = "trayNavItems"
	LocalizerKey  ContextKey = "localizer"
)
