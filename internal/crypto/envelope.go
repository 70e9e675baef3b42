// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

const (
	envelopeSaltSize = 64
	envelopeIVSize   = 16

	// EnvelopeMinSize is the length of an envelope wrapping an empty secret:
	// salt(64) + iv(16) + tag(16). Anything shorter is corrupt.
	EnvelopeMinSize = envelopeSaltSize + envelopeIVSize + TagSize
)

// Envelope is a base64-encoded, self-contained encrypted blob produced by
// [PasswordEnvelope.Wrap]. It is deliberately a distinct type from
// [FileParams] and [EncryptedFile]: the two formats must never be mixed.
type Envelope string

// String implements [fmt.Stringer].
func (e Envelope) String() string {
	return string(e)
}

// envelopeParts is the decoded form of an [Envelope].
type envelopeParts struct {
	salt       []byte
	iv         []byte
	tag        []byte
	ciphertext []byte
}

// parseEnvelope decodes env and slices it at the fixed offsets
// [0,64) salt, [64,80) iv, [80,96) tag, [96,) ciphertext.
func parseEnvelope(env Envelope) (envelopeParts, error) {
	buf, err := base64.StdEncoding.DecodeString(string(env))
	if err != nil {
		return envelopeParts{}, fmt.Errorf("%w: %w", ErrEnvelopeCorrupt, err)
	}
	if len(buf) < EnvelopeMinSize {
		return envelopeParts{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrEnvelopeCorrupt, len(buf), EnvelopeMinSize)
	}

	const ivOffset = envelopeSaltSize
	const tagOffset = ivOffset + envelopeIVSize
	return envelopeParts{
		salt:       buf[:ivOffset],
		iv:         buf[ivOffset:tagOffset],
		tag:        buf[tagOffset:EnvelopeMinSize],
		ciphertext: buf[EnvelopeMinSize:],
	}, nil
}

// encode concatenates the parts in envelope order and base64-encodes them.
func (p envelopeParts) encode() Envelope {
	buf := make([]byte, 0, EnvelopeMinSize+len(p.ciphertext))
	buf = append(buf, p.salt...)
	buf = append(buf, p.iv...)
	buf = append(buf, p.tag...)
	buf = append(buf, p.ciphertext...)
	return Envelope(base64.StdEncoding.EncodeToString(buf))
}

// passwordEnvelope is the private implementation of [PasswordEnvelope].
type passwordEnvelope struct {
	// masterKey is read-only after construction and shared by all
	// goroutines.
	masterKey string
	random    io.Reader
}

// NewPasswordEnvelope constructs a [PasswordEnvelope] bound to masterKey.
// An empty master key is a configuration error: there is no fallback.
func NewPasswordEnvelope(masterKey string) (PasswordEnvelope, error) {
	if masterKey == "" {
		return nil, ErrConfiguration
	}
	return &passwordEnvelope{masterKey: masterKey, random: rand.Reader}, nil
}

// Wrap implements [PasswordEnvelope].
func (p *passwordEnvelope) Wrap(secret string) (Envelope, error) {
	salt := make([]byte, envelopeSaltSize)
	if _, err := io.ReadFull(p.random, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	iv := make([]byte, envelopeIVSize)
	if _, err := io.ReadFull(p.random, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	gcm, err := p.aead(salt)
	if err != nil {
		return "", err
	}

	ciphertext, tag := splitTag(gcm.Seal(nil, iv, []byte(secret), nil))

	return envelopeParts{
		salt:       salt,
		iv:         iv,
		tag:        tag,
		ciphertext: ciphertext,
	}.encode(), nil
}

// Unwrap implements [PasswordEnvelope].
func (p *passwordEnvelope) Unwrap(env Envelope) (string, error) {
	parts, err := parseEnvelope(env)
	if err != nil {
		return "", err
	}

	gcm, err := p.aead(parts.salt)
	if err != nil {
		return "", err
	}

	secret, err := gcm.Open(nil, parts.iv, joinTag(parts.ciphertext, parts.tag), nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(secret), nil
}

// aead builds AES-256-GCM with the 16-byte nonce the envelope format uses.
func (p *passwordEnvelope) aead(salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(DeriveDefaultKey(p.masterKey, salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, envelopeIVSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
