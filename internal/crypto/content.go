// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-voice-keeper/internal/logger"
)

// contentEnvelope is the private implementation of [ContentEnvelope].
type contentEnvelope struct {
	envelope PasswordEnvelope
	logger   *logger.Logger
}

// NewContentEnvelope constructs a [ContentEnvelope] on top of envelope.
func NewContentEnvelope(envelope PasswordEnvelope, logger *logger.Logger) ContentEnvelope {
	return &contentEnvelope{
		envelope: envelope,
		logger:   logger,
	}
}

// Encrypt implements [ContentEnvelope].
func (c *contentEnvelope) Encrypt(text string) (*string, error) {
	if text == "" {
		return nil, nil
	}

	env, err := c.envelope.Wrap(text)
	if err != nil {
		return nil, fmt.Errorf("encrypt content: %w", err)
	}

	out := env.String()
	return &out, nil
}

// Decrypt implements [ContentEnvelope]. It never fails: a value that does
// not unwrap is logged and returned as it was stored.
func (c *contentEnvelope) Decrypt(value string) string {
	if !LooksEncrypted(value) {
		return value
	}
	return c.unwrapOrKeep(value)
}

// DecryptMarked implements [ContentEnvelope].
func (c *contentEnvelope) DecryptMarked(value string, encrypted bool) string {
	if !encrypted {
		return c.Decrypt(value)
	}
	if value == "" {
		return value
	}
	return c.unwrapOrKeep(value)
}

func (c *contentEnvelope) unwrapOrKeep(value string) string {
	text, err := c.envelope.Unwrap(Envelope(value))
	if err != nil {
		c.logger.Warn().Err(err).
			Int("length", len(value)).
			Msg("content could not be decrypted, returning stored value")
		return value
	}
	return text
}
