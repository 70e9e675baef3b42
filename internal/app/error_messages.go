// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// voice-keeper server handlers and the CLI client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or shown to the CLI user. Keeping them in one place
// keeps the wording identical on both sides of the wire.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID but
	// none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgWrongPasswordOrCorrupted is the only message ever shown for a failed
	// decryption. A wrong password and tampered data are indistinguishable.
	MsgWrongPasswordOrCorrupted = "wrong password or corrupted data"

	// MsgEncryptionMetadataMissing is returned for encrypted recordings that
	// lack an iv or salt.
	MsgEncryptionMetadataMissing = "encryption metadata is missing"

	// MsgInvalidEncryptionParams is returned when an iv, salt or password
	// does not fit the cipher.
	MsgInvalidEncryptionParams = "invalid encryption parameters"

	// MsgRecordingNotFound is returned when the recording does not exist for
	// the current user.
	MsgRecordingNotFound = "recording not found"

	// MsgFileUnavailable is returned when the audio object behind a
	// recording is gone.
	MsgFileUnavailable = "recording file is unavailable"

	// MsgPasswordNotRecoverable is returned when the server is asked to
	// decrypt a recording whose password it does not hold.
	MsgPasswordNotRecoverable = "password is not recoverable by the server"

	// MsgForeignObjectKey is returned when a recording references an object
	// outside the caller's key prefix.
	MsgForeignObjectKey = "object key does not belong to the user"

	// MsgRecordingAlreadyExists is returned when the object key is already
	// registered.
	MsgRecordingAlreadyExists = "recording already exists"

	// MsgTranscriptionBusy is returned when the transcription queue is full.
	MsgTranscriptionBusy = "transcription queue is full, try again later"

	// MsgTranscriptionUnavailable is returned when no transcription provider
	// is configured.
	MsgTranscriptionUnavailable = "transcription is unavailable"

	// MsgChatNotFound is returned when the chat does not exist for the
	// current user.
	MsgChatNotFound = "chat not found"

	// MsgInvalidMessage is returned for chat messages with an unknown role
	// or empty content.
	MsgInvalidMessage = "invalid chat message"

	// MsgVersionIsNotSpecified is returned when the server build carries no
	// version.
	MsgVersionIsNotSpecified = "version is not specified"
)
