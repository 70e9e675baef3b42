package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// ClientConfig holds the settings of the command-line client.
type ClientConfig struct {
	// ServerURL is the base URL of the voice-keeper API
	// (e.g. "https://voice.example.com"). Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL" json:"server_url"`

	// Token is the bearer JWT sent with every request. Env: CLIENT_TOKEN
	Token string `env:"TOKEN" json:"token"`

	// RequestTimeout bounds every API call and object transfer.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"-"`

	// JSONFilePath is an optional JSON file with the fields above.
	// Env: CLIENT_CONFIG
	JSONFilePath string `env:"CONFIG" json:"-"`
}

type clientJSONConfig struct {
	ServerURL      string   `json:"server_url"`
	Token          string   `json:"token"`
	RequestTimeout Duration `json:"request_timeout"`
}

// GetClientConfig assembles the client configuration. Values in flags (set
// by the command layer) win over CLIENT_* environment variables, which win
// over the JSON file; the request timeout defaults to one minute.
func GetClientConfig(flags ClientConfig) (*ClientConfig, error) {
	envCfg := ClientConfig{}
	if err := parseEnvWithPrefix(&envCfg, "CLIENT_"); err != nil {
		return nil, err
	}

	cfg := flags
	if err := mergo.Merge(&cfg, envCfg); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	if cfg.JSONFilePath != "" {
		jsonCfg, err := parseClientJSON(cfg.JSONFilePath)
		if err != nil {
			return nil, err
		}
		if err = mergo.Merge(&cfg, jsonCfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := mergo.Merge(&cfg, ClientConfig{RequestTimeout: time.Minute}); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	return &cfg, cfg.validate()
}

func parseClientJSON(path string) (ClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ClientConfig{}, fmt.Errorf("error reading a json file: %w", err)
	}

	var jsonCfg clientJSONConfig
	if err = json.Unmarshal(data, &jsonCfg); err != nil {
		return ClientConfig{}, fmt.Errorf("error decoding json configs: %w", err)
	}

	return ClientConfig{
		ServerURL:      jsonCfg.ServerURL,
		Token:          jsonCfg.Token,
		RequestTimeout: time.Duration(jsonCfg.RequestTimeout),
	}, nil
}
