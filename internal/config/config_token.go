package config

import (
	"fmt"

	"dario.cat/mergo"
)

// GetTokenConfig reads the token settings of App from the APP_ environment
// variables. It is used by tooling that issues tokens outside the server.
func GetTokenConfig() (*App, error) {
	cfg := App{}
	if err := parseEnvWithPrefix(&cfg, "APP_"); err != nil {
		return nil, err
	}

	defaults := defaultConfig().App
	if err := mergo.Merge(&cfg, defaults); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	if cfg.TokenSignKey == "" {
		return nil, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	return &cfg, nil
}
