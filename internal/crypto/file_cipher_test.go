// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parityPassword = "correct-horse-battery-staple"

// ── helpers ───────────────────────────────────────────────────────────────────

// fixedRandom returns a reader yielding salt then iv, the order in which the
// client cipher consumes randomness.
func fixedRandom(salt, iv []byte) *bytes.Reader {
	return bytes.NewReader(append(append([]byte{}, salt...), iv...))
}

// kilobyte is a deterministic 1 KiB payload.
func kilobyte() []byte {
	buf := make([]byte, 1024)
	for i := range buf {
		buf[i] = byte(i * 7)
	}
	return buf
}

func flipBit(b []byte, i int) []byte {
	out := append([]byte{}, b...)
	out[i] ^= 0x01
	return out
}

func flipParam(t *testing.T, encoded string, i int) string {
	t.Helper()
	raw, err := DecodeBase64(encoded)
	require.NoError(t, err)
	return EncodeBase64(flipBit(raw, i))
}

// ── client round trip ─────────────────────────────────────────────────────────

func TestFileCipher_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"empty":    {},
		"one byte": {0x7F},
		"1 KiB":    kilobyte(),
		"text":     []byte("RIFF....WAVEfmt "),
	}

	c := NewFileCipher()
	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			enc, err := c.EncryptFile(bytes.NewReader(payload), "pa55word")
			require.NoError(t, err)

			got, err := c.DecryptFile(bytes.NewReader(enc.Ciphertext), "pa55word", enc.Params)
			require.NoError(t, err)
			assert.Equal(t, len(payload), len(got))
			assert.True(t, bytes.Equal(payload, got))
		})
	}
}

func TestFileCipher_EncryptFile_ParamsLayout(t *testing.T) {
	enc, err := NewFileCipher().EncryptFile(bytes.NewReader(kilobyte()), "pw")
	require.NoError(t, err)

	iv, salt, err := enc.Params.Decode()
	require.NoError(t, err)
	assert.Len(t, iv, FileIVSize)
	assert.Len(t, salt, FileSaltSize)
	assert.Len(t, enc.Ciphertext, 1024+TagSize)
}

// TestFileCipher_EncryptFile_FreshParams verifies that the same file and
// password never reuse an iv or salt, while the key stays reproducible.
func TestFileCipher_EncryptFile_FreshParams(t *testing.T) {
	c := NewFileCipher()
	payload := kilobyte()

	a, err := c.EncryptFile(bytes.NewReader(payload), parityPassword)
	require.NoError(t, err)
	b, err := c.EncryptFile(bytes.NewReader(payload), parityPassword)
	require.NoError(t, err)

	assert.NotEqual(t, a.Params.IV, b.Params.IV)
	assert.NotEqual(t, a.Params.Salt, b.Params.Salt)
	assert.NotEqual(t, a.Ciphertext, b.Ciphertext)

	_, salt, err := a.Params.Decode()
	require.NoError(t, err)
	assert.Equal(t, DeriveDefaultKey(parityPassword, salt), DeriveDefaultKey(parityPassword, salt))
}

func TestFileCipher_DecryptFile_WrongPassword(t *testing.T) {
	c := NewFileCipher()
	enc, err := c.EncryptFile(bytes.NewReader(kilobyte()), "right")
	require.NoError(t, err)

	_, err = c.DecryptFile(bytes.NewReader(enc.Ciphertext), "wrong", enc.Params)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestFileCipher_Validation(t *testing.T) {
	c := NewFileCipher()
	enc, err := c.EncryptFile(bytes.NewReader([]byte("audio")), "pw")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		params   FileParams
	}{
		{name: "missing password", password: "", params: enc.Params},
		{name: "missing iv", password: "pw", params: FileParams{Salt: enc.Params.Salt}},
		{name: "missing salt", password: "pw", params: FileParams{IV: enc.Params.IV}},
		{name: "iv not base64", password: "pw", params: FileParams{IV: "***", Salt: enc.Params.Salt}},
		{name: "iv wrong length", password: "pw", params: FileParams{IV: EncodeBase64(make([]byte, 16)), Salt: enc.Params.Salt}},
		{name: "salt wrong length", password: "pw", params: FileParams{IV: enc.Params.IV, Salt: EncodeBase64(make([]byte, 64))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.DecryptFile(bytes.NewReader(enc.Ciphertext), tt.password, tt.params)
			assert.ErrorIs(t, err, ErrValidation)
			assert.False(t, errors.Is(err, ErrDecryptionFailed))
		})
	}

	_, err = c.EncryptFile(bytes.NewReader([]byte("audio")), "")
	assert.ErrorIs(t, err, ErrValidation)
}

// ── tamper sensitivity ────────────────────────────────────────────────────────

func TestFileCiphers_TamperSensitivity(t *testing.T) {
	enc, err := NewFileCipher().EncryptFile(bytes.NewReader(kilobyte()), parityPassword)
	require.NoError(t, err)

	last := len(enc.Ciphertext) - 1
	tests := []struct {
		name       string
		ciphertext []byte
		params     FileParams
	}{
		{name: "ciphertext first byte", ciphertext: flipBit(enc.Ciphertext, 0), params: enc.Params},
		{name: "ciphertext middle byte", ciphertext: flipBit(enc.Ciphertext, 512), params: enc.Params},
		{name: "tag", ciphertext: flipBit(enc.Ciphertext, last), params: enc.Params},
		{name: "iv", ciphertext: enc.Ciphertext, params: FileParams{IV: flipParam(t, enc.Params.IV, 3), Salt: enc.Params.Salt}},
		{name: "salt", ciphertext: enc.Ciphertext, params: FileParams{IV: enc.Params.IV, Salt: flipParam(t, enc.Params.Salt, 9)}},
		{name: "truncated", ciphertext: enc.Ciphertext[:last], params: enc.Params},
	}

	client := NewFileCipher()
	server := NewFileDecryptor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain, err := client.DecryptFile(bytes.NewReader(tt.ciphertext), parityPassword, tt.params)
			assert.ErrorIs(t, err, ErrDecryptionFailed)
			assert.Nil(t, plain)

			plain, err = server.Decrypt(tt.ciphertext, parityPassword, tt.params)
			assert.ErrorIs(t, err, ErrDecryptionFailed)
			assert.Nil(t, plain)
		})
	}
}

// ── server ────────────────────────────────────────────────────────────────────

func TestFileDecryptor_ShortBuffer(t *testing.T) {
	enc, err := NewFileCipher().EncryptFile(bytes.NewReader([]byte("x")), "pw")
	require.NoError(t, err)

	_, err = NewFileDecryptor().Decrypt(make([]byte, TagSize-1), "pw", enc.Params)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestFileDecryptor_MissingMaterial(t *testing.T) {
	d := NewFileDecryptor()

	_, err := d.Decrypt([]byte("ciphertext-bytes-long-enough"), "pw", FileParams{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = d.Reencrypt([]byte("audio"), "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFileDecryptor_DoesNotMutateInput(t *testing.T) {
	enc, err := NewFileCipher().EncryptFile(bytes.NewReader(kilobyte()), "pw")
	require.NoError(t, err)
	snapshot := append([]byte{}, enc.Ciphertext...)

	_, err = NewFileDecryptor().Decrypt(enc.Ciphertext, "pw", enc.Params)
	require.NoError(t, err)
	assert.Equal(t, snapshot, enc.Ciphertext)
}

// ── cross-runtime parity ──────────────────────────────────────────────────────

// Known answer for kilobyte() sealed under parityPassword with salt 0x5A*16
// and iv 0xC3*12, computed outside Go.
const (
	parityKeyHex       = "101e3b84a08c1c789d98f2dfd698b657faad2b819f4e2b8ee084de081c069f71"
	parityHeadHex      = "5793dc6f18316dab1ccaa758659bbf1a8161c302131223ee137eb13187a0f5c6"
	parityTagHex       = "2862ba53828b8c93ef2e335a0fc6ef23"
	paritySealedSHA256 = "dc7325d541668136c65972855d16dbcde63bc3992819859540e2a336728a0e57"
	paritySealedLength = 1024 + TagSize
)

func TestFileFormat_KnownAnswer(t *testing.T) {
	salt := bytes.Repeat([]byte{0x5A}, FileSaltSize)
	iv := bytes.Repeat([]byte{0xC3}, FileIVSize)

	assert.Equal(t, parityKeyHex, hex.EncodeToString(DeriveDefaultKey(parityPassword, salt)))

	enc, err := NewFileCipher(WithRandom(fixedRandom(salt, iv))).EncryptFile(bytes.NewReader(kilobyte()), parityPassword)
	require.NoError(t, err)

	require.Len(t, enc.Ciphertext, paritySealedLength)
	assert.Equal(t, parityHeadHex, hex.EncodeToString(enc.Ciphertext[:32]))
	assert.Equal(t, parityTagHex, hex.EncodeToString(enc.Ciphertext[len(enc.Ciphertext)-TagSize:]))
	sum := sha256.Sum256(enc.Ciphertext)
	assert.Equal(t, paritySealedSHA256, hex.EncodeToString(sum[:]))
}

// TestCrossRuntimeParity encrypts a fixed 1 KiB buffer with fixed iv and salt
// on the client cipher and decrypts it with the server decryptor, and the
// other way round. Both sides must match the known answer above.
func TestCrossRuntimeParity(t *testing.T) {
	payload := kilobyte()
	salt := bytes.Repeat([]byte{0x5A}, FileSaltSize)
	iv := bytes.Repeat([]byte{0xC3}, FileIVSize)

	client := NewFileCipher(WithRandom(fixedRandom(salt, iv)))
	enc, err := client.EncryptFile(bytes.NewReader(payload), parityPassword)
	require.NoError(t, err)
	assert.Equal(t, EncodeBase64(iv), enc.Params.IV)
	assert.Equal(t, EncodeBase64(salt), enc.Params.Salt)
	assert.Equal(t, parityTagHex, hex.EncodeToString(enc.Ciphertext[len(enc.Ciphertext)-TagSize:]))

	server := NewFileDecryptor()
	plain, err := server.Decrypt(enc.Ciphertext, parityPassword, enc.Params)
	require.NoError(t, err)
	assert.Equal(t, payload, plain)

	// Same inputs must yield byte-identical ciphertext on a second client.
	again, err := NewFileCipher(WithRandom(fixedRandom(salt, iv))).EncryptFile(bytes.NewReader(payload), parityPassword)
	require.NoError(t, err)
	assert.Equal(t, enc.Ciphertext, again.Ciphertext)

	pinned, err := (&fileDecryptor{random: fixedRandom(salt, iv)}).Reencrypt(payload, parityPassword)
	require.NoError(t, err)
	assert.Equal(t, enc.Ciphertext, pinned.Ciphertext)
	assert.Equal(t, enc.Params, pinned.Params)

	reenc, err := server.Reencrypt(payload, parityPassword)
	require.NoError(t, err)
	back, err := NewFileCipher().DecryptFile(bytes.NewReader(reenc.Ciphertext), parityPassword, reenc.Params)
	require.NoError(t, err)
	assert.Equal(t, payload, back)
}

// ── encoding ──────────────────────────────────────────────────────────────────

func TestBase64_ExactBytes(t *testing.T) {
	raw := make([]byte, 256)
	for i := range raw {
		raw[i] = byte(i)
	}

	got, err := DecodeBase64(EncodeBase64(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	_, err = DecodeBase64("not base64!")
	assert.Error(t, err)
}
