// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"
)

const (
	// FileIVSize is the AES-GCM nonce length of the audio file format.
	FileIVSize = 12

	// FileSaltSize is the PBKDF2 salt length of the audio file format.
	FileSaltSize = 16

	// TagSize is the AES-GCM authentication tag length for both formats.
	TagSize = 16
)

// FileParams is the per-file decryption material persisted next to the
// owning record. Both fields are standard base64. The password is never
// part of it.
type FileParams struct {
	IV   string `json:"iv"`
	Salt string `json:"salt"`
}

// EncryptedFile is the result of encrypting an audio file: the opaque
// ciphertext destined for object storage and the params destined for the
// database.
type EncryptedFile struct {
	Ciphertext []byte
	Params     FileParams
}

// Decode validates and decodes the params. Missing or wrongly sized values
// are reported as [ErrValidation].
func (p FileParams) Decode() (iv, salt []byte, err error) {
	if p.IV == "" || p.Salt == "" {
		return nil, nil, fmt.Errorf("%w: iv and salt are required", ErrValidation)
	}

	iv, err = DecodeBase64(p.IV)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: iv: %w", ErrValidation, err)
	}
	if len(iv) != FileIVSize {
		return nil, nil, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrValidation, FileIVSize, len(iv))
	}

	salt, err = DecodeBase64(p.Salt)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: salt: %w", ErrValidation, err)
	}
	if len(salt) != FileSaltSize {
		return nil, nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrValidation, FileSaltSize, len(salt))
	}

	return iv, salt, nil
}

// newFileAEAD builds the AES-256-GCM instance for the audio file format.
func newFileAEAD(password string, salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(DeriveDefaultKey(password, salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// sealFile draws a fresh salt then iv from random and seals plaintext into
// the audio file format. Both runtimes encrypt through here.
func sealFile(random io.Reader, plaintext []byte, password string) (EncryptedFile, error) {
	if password == "" {
		return EncryptedFile{}, fmt.Errorf("%w: password is required", ErrValidation)
	}

	salt := make([]byte, FileSaltSize)
	if _, err := io.ReadFull(random, salt); err != nil {
		return EncryptedFile{}, fmt.Errorf("generate salt: %w", err)
	}
	iv := make([]byte, FileIVSize)
	if _, err := io.ReadFull(random, iv); err != nil {
		return EncryptedFile{}, fmt.Errorf("generate iv: %w", err)
	}

	gcm, err := newFileAEAD(password, salt)
	if err != nil {
		return EncryptedFile{}, err
	}

	return EncryptedFile{
		Ciphertext: gcm.Seal(nil, iv, plaintext, nil),
		Params: FileParams{
			IV:   EncodeBase64(iv),
			Salt: EncodeBase64(salt),
		},
	}, nil
}
