package service

import (
	"context"

	"github.com/MKhiriev/go-voice-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=RecordingServiceWrapper

// RecordingService manages voice recordings. Every call is scoped to userID;
// a recording owned by someone else behaves exactly like a missing one.
type RecordingService interface {
	// CreateUploadTicket reserves an object key and returns a presigned PUT
	// URL for it.
	CreateUploadTicket(ctx context.Context, userID int64, req models.UploadTicketRequest) (models.UploadTicket, error)

	// CreateRecording registers an uploaded object. A non-empty
	// req.Password is wrapped under the master key before it is stored.
	CreateRecording(ctx context.Context, userID int64, req models.CreateRecordingRequest) (models.Recording, error)

	// GetPlaybackMaterial returns what a client needs to fetch and decrypt
	// the audio.
	GetPlaybackMaterial(ctx context.Context, userID int64, recordingID string) (models.PlaybackMaterial, error)

	// DecryptRecording downloads the audio and decrypts it with the
	// server-held password.
	DecryptRecording(ctx context.Context, userID int64, recordingID string) (models.Recording, []byte, error)

	// RequestTranscription queues a transcription job.
	RequestTranscription(ctx context.Context, userID int64, recordingID string) error

	// Transcribe runs a queued job to completion.
	Transcribe(ctx context.Context, job models.TranscriptionJob) error

	// AbandonTranscription marks a job that was dequeued but will not run
	// as failed.
	AbandonTranscription(ctx context.Context, job models.TranscriptionJob)

	// GetTranscript returns the transcription status and plaintext.
	GetTranscript(ctx context.Context, userID int64, recordingID string) (models.TranscriptResponse, error)

	// DeleteRecording removes the audio object and then the row.
	DeleteRecording(ctx context.Context, userID int64, recordingID string) error
}

// ChatService stores chats whose text fields are encrypted at rest.
type ChatService interface {
	CreateChat(ctx context.Context, userID int64, req models.CreateChatRequest) (models.Chat, error)
	GetChat(ctx context.Context, userID int64, chatID string) (models.Chat, error)
	AddMessage(ctx context.Context, userID int64, chatID string, req models.AddMessageRequest) (models.ChatMessage, error)
	ListMessages(ctx context.Context, userID int64, chatID string) ([]models.ChatMessage, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, userID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TranscriptionQueue accepts transcription jobs for asynchronous
// processing. Enqueue must not block.
type TranscriptionQueue interface {
	Enqueue(ctx context.Context, job models.TranscriptionJob) error
}

// RecordingServiceWrapper defines middleware composition for RecordingService.
// Implementations wrap an existing RecordingService to add behavior such as
// logging or validating.
type RecordingServiceWrapper interface {
	Wrap(RecordingService) RecordingService
}
