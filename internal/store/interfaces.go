package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-voice-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordingRepository persists recording metadata. The audio bytes live in
// [ObjectStorage].
type RecordingRepository interface {
	Create(ctx context.Context, recording models.Recording) (models.Recording, error)
	Get(ctx context.Context, userID int64, recordingID string) (models.Recording, error)
	Delete(ctx context.Context, userID int64, recordingID string) error
	SaveTranscript(ctx context.Context, recordingID, transcript string, encrypted bool) error
	SetTranscriptionStatus(ctx context.Context, recordingID string, status models.TranscriptionStatus) error
}

// ChatRepository persists chats and their messages.
type ChatRepository interface {
	CreateChat(ctx context.Context, chat models.Chat) (models.Chat, error)
	GetChat(ctx context.Context, userID int64, chatID string) (models.Chat, error)
	AddMessage(ctx context.Context, message models.ChatMessage) (models.ChatMessage, error)
	ListMessages(ctx context.Context, chatID string) ([]models.ChatMessage, error)
}

// ObjectStorage stores recording audio in an S3-compatible bucket.
// Clients upload and download directly through presigned URLs; the server
// reads objects itself only for server-side decryption.
type ObjectStorage interface {
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
