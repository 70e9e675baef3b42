// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound integrations of voice-keeper.
//
// The client side talks to the voice-keeper API through [ServerAdapter] and
// moves audio bytes to and from presigned object URLs through
// [ObjectTransfer]. The server side reaches the speech-to-text provider
// through [Transcriber] and loads its encryption master key through
// [MasterKeyProvider].
//
// HTTP status codes are mapped by mapHTTPError to the sentinel values in
// errors.go so callers can use [errors.Is] regardless of transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-voice-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the client's view of the voice-keeper API. Every call is
// authenticated with the bearer token set through SetToken.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every request.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// CreateUploadTicket asks the server for a presigned PUT URL.
	CreateUploadTicket(ctx context.Context, req models.UploadTicketRequest) (models.UploadTicket, error)

	// CreateRecording registers an uploaded object. req.Password, when set,
	// makes the recording server-recoverable.
	CreateRecording(ctx context.Context, req models.CreateRecordingRequest) (models.Recording, error)

	// GetPlaybackMaterial returns the presigned GET URL and the decryption
	// parameters of a recording.
	GetPlaybackMaterial(ctx context.Context, recordingID string) (models.PlaybackMaterial, error)

	// RequestTranscription queues server-side transcription.
	RequestTranscription(ctx context.Context, recordingID string) error

	// GetTranscript returns the transcription state and text.
	GetTranscript(ctx context.Context, recordingID string) (models.TranscriptResponse, error)

	// DeleteRecording removes the recording and its audio.
	DeleteRecording(ctx context.Context, recordingID string) error
}

// ObjectTransfer moves raw bytes to and from presigned object URLs.
type ObjectTransfer interface {
	Put(ctx context.Context, url, contentType string, body []byte) error
	Get(ctx context.Context, url string) ([]byte, error)
}

// Transcriber converts plaintext audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, fileName, contentType string) (string, error)
}
