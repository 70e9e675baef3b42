// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// fileDecryptor is the private implementation of [FileDecryptor].
type fileDecryptor struct {
	random io.Reader
}

// NewFileDecryptor constructs the server-side [FileDecryptor].
func NewFileDecryptor() FileDecryptor {
	return &fileDecryptor{random: rand.Reader}
}

// Decrypt implements [FileDecryptor]. The caller must already hold iv, salt
// and the plaintext password. A buffer too short to carry a tag cannot be
// authenticated and is reported as [ErrDecryptionFailed].
func (d *fileDecryptor) Decrypt(buf []byte, password string, params FileParams) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}
	iv, salt, err := params.Decode()
	if err != nil {
		return nil, err
	}

	if len(buf) < TagSize {
		return nil, fmt.Errorf("%w: ciphertext is shorter than the tag", ErrDecryptionFailed)
	}
	body, tag := buf[:len(buf)-TagSize], buf[len(buf)-TagSize:]

	gcm, err := newFileAEAD(password, salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, iv, joinTag(body, tag), nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

// Reencrypt implements [FileDecryptor].
func (d *fileDecryptor) Reencrypt(plaintext []byte, password string) (EncryptedFile, error) {
	return sealFile(d.random, plaintext, password)
}

// splitTag separates the trailing GCM tag from a sealed buffer.
// sealed must be at least TagSize bytes long.
func splitTag(sealed []byte) (body, tag []byte) {
	return sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:]
}

// joinTag returns a fresh body ‖ tag buffer without aliasing either input.
func joinTag(body, tag []byte) []byte {
	out := make([]byte, 0, len(body)+len(tag))
	out = append(out, body...)
	return append(out, tag...)
}
