// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeyIterations is the PBKDF2 iteration count used by every cipher in
	// this package. It is not stored alongside ciphertext, so changing it
	// makes all previously written files and envelopes unreadable.
	KeyIterations = 100_000

	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32
)

// DeriveKey derives a 256-bit key from password and salt using
// PBKDF2-HMAC-SHA256 with the given iteration count.
//
// The derivation is deterministic: the same password, salt and iteration
// count always produce the same key. The server relies on this to reproduce
// the key a client used without any key material being exchanged.
func DeriveKey(password string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, KeySize, sha256.New)
}

// DeriveDefaultKey is [DeriveKey] with [KeyIterations].
func DeriveDefaultKey(password string, salt []byte) []byte {
	return DeriveKey(password, salt, KeyIterations)
}
