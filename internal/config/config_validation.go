// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] can start the
// server. A missing master key source is a configuration error: the server
// must not come up unable to wrap or unwrap file passwords.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.MasterKey == "" && cfg.App.MasterKeySecretID == "" {
		return fmt.Errorf("%w: master key or master key secret id is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Objects.Bucket == "" {
		return fmt.Errorf("%w: database dsn and bucket are required", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.TranscriptionConcurrency < 1 || cfg.Workers.TranscriptionQueueSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" {
		return fmt.Errorf("%w: server url is required", ErrInvalidAdapterConfigs)
	}

	if u, err := url.Parse(cfg.ServerURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server url %q is not absolute", ErrInvalidAdapterConfigs, cfg.ServerURL)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}
