package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the server rejects the bearer token.
	ErrUnauthorized = errors.New("not authorized: token is missing, expired or invalid")

	// ErrRecordingNotFound is returned when the recording does not exist for
	// the current user.
	ErrRecordingNotFound = errors.New("recording not found")

	// ErrFileUnavailable is returned when the audio object is gone.
	ErrFileUnavailable = errors.New("recording file is unavailable")

	// ErrPasswordNotRecoverable is returned when a server-side operation is
	// requested for a recording whose password the server does not hold.
	ErrPasswordNotRecoverable = errors.New("password is not recoverable by the server")

	// ErrTranscriptionUnavailable is returned when the server cannot accept
	// transcription jobs right now.
	ErrTranscriptionUnavailable = errors.New("transcription is unavailable")

	// ErrInvalidRequest is returned when the server rejects the request data.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyPassword is returned when encryption is requested without a
	// password.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrPasswordMismatch is returned when the confirmation prompt does not
	// repeat the password.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// PasswordSource names where Download took a password from.
type PasswordSource string

const (
	SourceServer  PasswordSource = "server"
	SourceCache   PasswordSource = "cache"
	SourceSession PasswordSource = "session"
	SourcePrompt  PasswordSource = "prompt"
)

// DecryptError is returned by Download when the ciphertext does not open
// with the resolved password. It wraps [crypto.ErrDecryptionFailed].
type DecryptError struct {
	RecordingID string
	Source      PasswordSource
	Err         error
}

func (e *DecryptError) Error() string {
	return fmt.Sprintf("recording %s: %v", e.RecordingID, e.Err)
}

func (e *DecryptError) Unwrap() error {
	return e.Err
}

// Retryable reports whether asking the user for another password can help.
// A password recovered by the server is the one the file was sealed with,
// so a failure there means the data itself is bad.
func (e *DecryptError) Retryable() bool {
	return e.Source != SourceServer
}
