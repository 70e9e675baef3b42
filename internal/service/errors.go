package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Recording errors.
var (
	// ErrFileUnavailable is returned when the audio object of a recording is
	// missing from object storage.
	ErrFileUnavailable = errors.New("recording file is unavailable")

	// ErrEncryptionMetadataMissing is returned for an encrypted recording
	// without iv or salt.
	ErrEncryptionMetadataMissing = errors.New("encryption metadata is missing")

	// ErrPasswordNotRecoverable is returned when the server is asked to
	// decrypt a recording whose password was never shared with it.
	ErrPasswordNotRecoverable = errors.New("recording password is not recoverable by the server")

	// ErrForeignObjectKey is returned when a recording references an object
	// outside the caller's key prefix.
	ErrForeignObjectKey = errors.New("object key does not belong to the user")

	// ErrTranscriptionQueueFull is returned when no more transcription jobs
	// can be accepted.
	ErrTranscriptionQueueFull = errors.New("transcription queue is full")

	// ErrTranscriptionUnavailable is returned when no transcription provider
	// is configured.
	ErrTranscriptionUnavailable = errors.New("transcription is unavailable")
)

// Chat errors.
var (
	ErrInvalidChatRole = errors.New("invalid chat message role")
	ErrEmptyMessage    = errors.New("message content is empty")
)
