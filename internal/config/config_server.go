package config

import (
	"fmt"
	"time"
)

// ServerApp holds application-level settings required by the server runtime.
type ServerApp struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim embedded in issued tokens.
	TokenIssuer string
	// TokenDuration is the validity window of issued tokens.
	TokenDuration time.Duration
}

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains token settings used by the auth service.
	App ServerApp
	// Server contains the listen address and request timeout.
	Server Server
	// Storage contains the PostgreSQL connection settings.
	Storage Storage
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	return serverCfg, serverCfg.validate()
}
