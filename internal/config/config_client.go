package config

import (
	"fmt"
)

// ClientConfig is the configuration of the stylectl command line tool,
// assembled from [StructuredConfig]. Subcommands parse their own flags, so
// only defaults, environment variables and the JSON file contribute.
type ClientConfig struct {
	// App contains the log level.
	App App
	// Style contains the load and apply policies.
	Style Style
	// Adapter contains the remote style server address and timeout.
	Adapter Adapter
}

// GetClientConfig loads defaults, environment variables and the JSON file
// named by CONFIG, then validates the client groups.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("failed to build client config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Style:   cfg.Style,
		Adapter: cfg.Adapter,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return clientCfg, nil
}
