// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// fileCipher is the private implementation of [FileCipher].
type fileCipher struct {
	// random is the source of salts and ivs. crypto/rand.Reader unless
	// overridden with [WithRandom].
	random io.Reader
}

// FileCipherOption configures a [FileCipher] built by [NewFileCipher].
type FileCipherOption func(*fileCipher)

// WithRandom replaces the randomness source used for salts and ivs. The
// salt is read first (16 bytes), then the iv (12 bytes). Only tests that
// need reproducible output should use it.
func WithRandom(r io.Reader) FileCipherOption {
	return func(c *fileCipher) {
		c.random = r
	}
}

// NewFileCipher constructs the client-side [FileCipher].
func NewFileCipher(opts ...FileCipherOption) FileCipher {
	c := &fileCipher{random: rand.Reader}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EncryptFile implements [FileCipher].
func (c *fileCipher) EncryptFile(r io.Reader, password string) (EncryptedFile, error) {
	if password == "" {
		return EncryptedFile{}, fmt.Errorf("%w: password is required", ErrValidation)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return EncryptedFile{}, fmt.Errorf("read file: %w", err)
	}

	return sealFile(c.random, plaintext, password)
}

// DecryptFile implements [FileCipher].
func (c *fileCipher) DecryptFile(r io.Reader, password string, params FileParams) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}
	iv, salt, err := params.Decode()
	if err != nil {
		return nil, err
	}

	ciphertext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read ciphertext: %w", err)
	}

	gcm, err := newFileAEAD(password, salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
