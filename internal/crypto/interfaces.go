package crypto

import "io"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// FileCipher encrypts and decrypts whole audio files on the client before
// they are uploaded to object storage.
//
// The file format is shared with [FileDecryptor]:
//
//	ciphertext = AES-256-GCM(key, iv, plaintext) ‖ tag(16)
//	key        = PBKDF2-HMAC-SHA256(password, salt, KeyIterations, 32)
//
// iv (12 bytes) and salt (16 bytes) are stored base64-encoded next to the
// owning record, never inside the ciphertext.
type FileCipher interface {
	// EncryptFile reads the whole file from r and encrypts it under a key
	// derived from password. A fresh iv and salt are generated for every call.
	EncryptFile(r io.Reader, password string) (EncryptedFile, error)

	// DecryptFile reads the whole ciphertext from r and decrypts it.
	// Returns [ErrDecryptionFailed] when the tag does not verify.
	DecryptFile(r io.Reader, password string, params FileParams) ([]byte, error)
}

// FileDecryptor is the server-side counterpart of [FileCipher]. It works on
// buffers downloaded from object storage and is used before audio is handed
// to a downstream provider.
type FileDecryptor interface {
	// Decrypt splits the trailing 16-byte tag off buf and decrypts the rest.
	Decrypt(buf []byte, password string, params FileParams) ([]byte, error)

	// Reencrypt encrypts plaintext into the same file format with a fresh
	// iv and salt.
	Reencrypt(plaintext []byte, password string) (EncryptedFile, error)
}

// PasswordEnvelope wraps short secrets under the process-wide master key.
//
// Envelope layout (base64 of):
//
//	salt(64) ‖ iv(16) ‖ tag(16) ‖ ciphertext
//
// It is not interchangeable with the file format used by [FileCipher].
type PasswordEnvelope interface {
	// Wrap encrypts secret into a new envelope. Wrapping the same secret
	// twice yields two different envelopes.
	Wrap(secret string) (Envelope, error)

	// Unwrap recovers the secret from env. Returns [ErrEnvelopeCorrupt] for
	// undecodable or truncated envelopes and [ErrDecryptionFailed] when the
	// tag does not verify.
	Unwrap(env Envelope) (string, error)
}

// ContentEnvelope protects free-form text (chat titles, messages, system
// prompts, transcripts) with the [PasswordEnvelope] format and reads back
// rows written before encryption at rest existed.
type ContentEnvelope interface {
	// Encrypt returns nil for empty text, otherwise the envelope string.
	Encrypt(text string) (*string, error)

	// Decrypt returns the plaintext of value when it looks like an envelope
	// and unwraps cleanly. In every other case value is returned unchanged.
	Decrypt(value string) string

	// DecryptMarked is Decrypt for rows that carry an explicit encrypted
	// flag. Marked rows skip the legacy heuristic.
	DecryptMarked(value string, encrypted bool) string
}
