package config

import "time"

const (
	// DefaultPortalID is the canonical base portal id.
	DefaultPortalID = "edsc"

	defaultHTTPAddress           = "localhost:8080"
	defaultServerRequestTimeout  = 30 * time.Second
	defaultAdapterRequestTimeout = 10 * time.Second
	defaultLogLevel              = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultPortal: DefaultPortalID,
			LogLevel:      defaultLogLevel,
		},
		Portals: Portals{
			BasePortal: DefaultPortalID,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultServerRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultAdapterRequestTimeout,
		},
	}
}
