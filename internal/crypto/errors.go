// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors shared by every cipher in this package. Callers match them
// with [errors.Is]; the concrete error is usually wrapped with more context.
var (
	// ErrConfiguration is returned when the master key needed for envelope
	// operations is absent. It is fatal: there is no fallback key.
	ErrConfiguration = errors.New("encryption is not configured: master key is missing")

	// ErrValidation is returned when a call that requires a password, iv or
	// salt is made without one, or when one of them has the wrong length.
	// It is always raised before any cryptographic work is attempted.
	ErrValidation = errors.New("invalid encryption parameters")

	// ErrDecryptionFailed is returned when the AES-GCM authentication tag does
	// not verify. AES-GCM cannot tell a wrong password from corrupted bytes,
	// so this error must be reported to users as a single generic message.
	ErrDecryptionFailed = errors.New("decryption failed: wrong password or corrupted data")

	// ErrEnvelopeCorrupt is returned when an envelope is too short to contain
	// salt, iv and tag, or is not valid base64. It points at storage or
	// transport corruption rather than at a wrong key.
	ErrEnvelopeCorrupt = errors.New("envelope is corrupt")
)
