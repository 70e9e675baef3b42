// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TranscriptionStatus tracks a recording through the transcription pipeline.
type TranscriptionStatus string

const (
	// TranscriptionNone means no transcription was ever requested.
	TranscriptionNone TranscriptionStatus = "none"
	// TranscriptionPending means a job is queued.
	TranscriptionPending TranscriptionStatus = "pending"
	// TranscriptionProcessing means a worker picked the job up.
	TranscriptionProcessing TranscriptionStatus = "processing"
	// TranscriptionDone means Transcript holds the result.
	TranscriptionDone TranscriptionStatus = "done"
	// TranscriptionFailed means the last attempt failed; it may be requested again.
	TranscriptionFailed TranscriptionStatus = "failed"
)

// Recording is the server-side record of an uploaded audio file.
//
// The audio itself lives in object storage under ObjectKey. When IsEncrypted
// is true the object holds AES-GCM ciphertext and EncryptionIV and
// EncryptionSalt carry the base64 parameters needed to decrypt it.
// EncryptedPassword is present only for server-recoverable recordings and
// holds the file password wrapped with the server master key.
type Recording struct {
	// RecordingID is the UUID of the recording.
	RecordingID string `json:"recording_id"`

	// UserID is the owner of the recording.
	UserID int64 `json:"-"`

	// ObjectKey is the object storage key of the audio.
	ObjectKey string `json:"object_key"`

	// FileName is the original file name supplied by the client.
	FileName string `json:"file_name"`

	// ContentType is the MIME type of the plaintext audio.
	ContentType string `json:"content_type"`

	// IsEncrypted reports whether the stored object is ciphertext.
	IsEncrypted bool `json:"is_encrypted"`

	// EncryptionIV is the base64 12-byte GCM nonce.
	EncryptionIV *string `json:"encryption_iv,omitempty"`

	// EncryptionSalt is the base64 16-byte PBKDF2 salt.
	EncryptionSalt *string `json:"encryption_salt,omitempty"`

	// EncryptedPassword is the password envelope. Never serialized.
	EncryptedPassword *string `json:"-"`

	// Transcript is the stored transcript, encrypted at rest when
	// TranscriptEncrypted is true. Never serialized directly.
	Transcript *string `json:"-"`

	// TranscriptEncrypted marks Transcript as a content envelope.
	TranscriptEncrypted bool `json:"-"`

	// TranscriptionStatus is the state of the transcription pipeline.
	TranscriptionStatus TranscriptionStatus `json:"transcription_status"`

	// CreatedAt is when the row was inserted.
	CreatedAt time.Time `json:"created_at"`
}

// IsRecoverable reports whether the server holds a wrapped password for the
// recording.
func (r *Recording) IsRecoverable() bool {
	return r.EncryptedPassword != nil && *r.EncryptedPassword != ""
}

// TableName returns the name of the database table
// associated with the Recording model.
func (r *Recording) TableName() string {
	return "recordings"
}

// UploadTicketRequest asks for a presigned upload URL.
type UploadTicketRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

// UploadTicket grants time-limited write access to a single object key.
type UploadTicket struct {
	ObjectKey string    `json:"object_key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateRecordingRequest registers an uploaded object as a recording.
//
// Password, when set, is the file password the client chose to make
// recoverable. It is wrapped before it is stored and never persisted in
// plaintext.
type CreateRecordingRequest struct {
	ObjectKey      string  `json:"object_key"`
	FileName       string  `json:"file_name"`
	ContentType    string  `json:"content_type"`
	IsEncrypted    bool    `json:"is_encrypted"`
	EncryptionIV   *string `json:"encryption_iv,omitempty"`
	EncryptionSalt *string `json:"encryption_salt,omitempty"`
	Password       *string `json:"password,omitempty"`
}

// PlaybackMaterial is everything a client needs to fetch and decrypt a
// recording.
//
// Password is populated only when the recording is server-recoverable and
// the server is configured to hand recovered passwords back to the owner.
type PlaybackMaterial struct {
	RecordingID    string    `json:"recording_id"`
	URL            string    `json:"url"`
	ExpiresAt      time.Time `json:"expires_at"`
	FileName       string    `json:"file_name"`
	ContentType    string    `json:"content_type"`
	IsEncrypted    bool      `json:"is_encrypted"`
	EncryptionIV   *string   `json:"encryption_iv,omitempty"`
	EncryptionSalt *string   `json:"encryption_salt,omitempty"`
	Password       *string   `json:"password,omitempty"`
}

// TranscriptResponse reports the transcription state of a recording and,
// once done, the decrypted transcript.
type TranscriptResponse struct {
	RecordingID string              `json:"recording_id"`
	Status      TranscriptionStatus `json:"status"`
	Transcript  *string             `json:"transcript,omitempty"`
}

// TranscriptionJob is a unit of work for the transcription workers.
type TranscriptionJob struct {
	UserID      int64
	RecordingID string
}
