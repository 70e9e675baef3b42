// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-voice-keeper/internal/adapter"
	"github.com/MKhiriev/go-voice-keeper/internal/crypto"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/internal/store"
	"github.com/MKhiriev/go-voice-keeper/models"
)

const defaultUploadContentType = "application/octet-stream"

// idGenerator produces unique string identifiers for object keys and rows.
type idGenerator interface {
	Generate() string
}

// recordingService is the concrete implementation of RecordingService.
//
// Audio bytes never pass through it on upload or client playback: clients
// move them with presigned URLs. The service reads objects itself only for
// server-side decryption before transcription.
type recordingService struct {
	recordings store.RecordingRepository
	objects    store.ObjectStorage

	envelope  crypto.PasswordEnvelope
	content   crypto.ContentEnvelope
	decryptor crypto.FileDecryptor

	transcriber adapter.Transcriber
	queue       TranscriptionQueue

	ids        idGenerator
	presignTTL time.Duration

	// serverSideOnly keeps recovered passwords inside the server.
	serverSideOnly bool

	logger *logger.Logger
}

func (r *recordingService) CreateUploadTicket(ctx context.Context, userID int64, req models.UploadTicketRequest) (models.UploadTicket, error) {
	log := logger.FromContext(ctx)

	contentType := req.ContentType
	if contentType == "" {
		contentType = defaultUploadContentType
	}

	key := objectKeyPrefix(userID) + r.ids.Generate()
	url, err := r.objects.PresignPut(ctx, key, contentType, r.presignTTL)
	if err != nil {
		log.Err(err).Str("func", "recordingService.CreateUploadTicket").Int64("user_id", userID).Msg("presign put failed")
		return models.UploadTicket{}, fmt.Errorf("presign upload: %w", err)
	}

	return models.UploadTicket{
		ObjectKey: key,
		URL:       url,
		ExpiresAt: time.Now().Add(r.presignTTL).UTC(),
	}, nil
}

func (r *recordingService) CreateRecording(ctx context.Context, userID int64, req models.CreateRecordingRequest) (models.Recording, error) {
	log := logger.FromContext(ctx)

	if !strings.HasPrefix(req.ObjectKey, objectKeyPrefix(userID)) {
		return models.Recording{}, ErrForeignObjectKey
	}

	recording := models.Recording{
		RecordingID:         r.ids.Generate(),
		UserID:              userID,
		ObjectKey:           req.ObjectKey,
		FileName:            req.FileName,
		ContentType:         req.ContentType,
		IsEncrypted:         req.IsEncrypted,
		TranscriptionStatus: models.TranscriptionNone,
	}

	if req.IsEncrypted {
		if req.EncryptionIV == nil || req.EncryptionSalt == nil {
			return models.Recording{}, ErrEncryptionMetadataMissing
		}
		if _, _, err := (crypto.FileParams{IV: *req.EncryptionIV, Salt: *req.EncryptionSalt}).Decode(); err != nil {
			return models.Recording{}, err
		}
		recording.EncryptionIV = req.EncryptionIV
		recording.EncryptionSalt = req.EncryptionSalt
	}

	if req.Password != nil && *req.Password != "" {
		if !req.IsEncrypted {
			return models.Recording{}, fmt.Errorf("%w: password given for an unencrypted recording", crypto.ErrValidation)
		}
		env, err := r.envelope.Wrap(*req.Password)
		if err != nil {
			log.Err(err).Str("func", "recordingService.CreateRecording").Msg("wrapping password failed")
			return models.Recording{}, fmt.Errorf("wrap password: %w", err)
		}
		wrapped := env.String()
		recording.EncryptedPassword = &wrapped
	}

	created, err := r.recordings.Create(ctx, recording)
	if err != nil {
		log.Err(err).
			Str("func", "recordingService.CreateRecording").
			Str("recording_id", recording.RecordingID).
			Msg("saving recording failed")
		return models.Recording{}, fmt.Errorf("save recording: %w", err)
	}

	return created, nil
}

func (r *recordingService) GetPlaybackMaterial(ctx context.Context, userID int64, recordingID string) (models.PlaybackMaterial, error) {
	log := logger.FromContext(ctx)

	rec, err := r.recordings.Get(ctx, userID, recordingID)
	if err != nil {
		return models.PlaybackMaterial{}, err
	}

	url, err := r.objects.PresignGet(ctx, rec.ObjectKey, r.presignTTL)
	if err != nil {
		log.Err(err).Str("func", "recordingService.GetPlaybackMaterial").Str("recording_id", recordingID).Msg("presign get failed")
		return models.PlaybackMaterial{}, fmt.Errorf("presign playback: %w", err)
	}

	material := models.PlaybackMaterial{
		RecordingID:    rec.RecordingID,
		URL:            url,
		ExpiresAt:      time.Now().Add(r.presignTTL).UTC(),
		FileName:       rec.FileName,
		ContentType:    rec.ContentType,
		IsEncrypted:    rec.IsEncrypted,
		EncryptionIV:   rec.EncryptionIV,
		EncryptionSalt: rec.EncryptionSalt,
	}

	if rec.IsEncrypted && rec.IsRecoverable() && !r.serverSideOnly {
		password, err := r.envelope.Unwrap(crypto.Envelope(*rec.EncryptedPassword))
		if err != nil {
			log.Err(err).Str("func", "recordingService.GetPlaybackMaterial").Str("recording_id", recordingID).Msg("unwrapping password failed")
			return models.PlaybackMaterial{}, fmt.Errorf("unwrap password: %w", err)
		}
		material.Password = &password
	}

	return material, nil
}

func (r *recordingService) DecryptRecording(ctx context.Context, userID int64, recordingID string) (models.Recording, []byte, error) {
	rec, err := r.recordings.Get(ctx, userID, recordingID)
	if err != nil {
		return models.Recording{}, nil, err
	}

	audio, err := r.decrypt(ctx, rec)
	if err != nil {
		return models.Recording{}, nil, err
	}

	return rec, audio, nil
}

// decrypt fetches the object of rec and returns its plaintext. Unencrypted
// recordings are returned as stored.
func (r *recordingService) decrypt(ctx context.Context, rec models.Recording) ([]byte, error) {
	log := logger.FromContext(ctx)

	buf, err := r.objects.Get(ctx, rec.ObjectKey)
	if errors.Is(err, store.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrFileUnavailable, rec.RecordingID)
	}
	if err != nil {
		return nil, fmt.Errorf("download recording: %w", err)
	}

	if !rec.IsEncrypted {
		return buf, nil
	}
	if rec.EncryptionIV == nil || rec.EncryptionSalt == nil {
		return nil, ErrEncryptionMetadataMissing
	}
	if !rec.IsRecoverable() {
		return nil, ErrPasswordNotRecoverable
	}

	password, err := r.envelope.Unwrap(crypto.Envelope(*rec.EncryptedPassword))
	if err != nil {
		log.Err(err).Str("func", "recordingService.decrypt").Str("recording_id", rec.RecordingID).Msg("unwrapping password failed")
		return nil, fmt.Errorf("unwrap password: %w", err)
	}

	plaintext, err := r.decryptor.Decrypt(buf, password, crypto.FileParams{IV: *rec.EncryptionIV, Salt: *rec.EncryptionSalt})
	if err != nil {
		log.Warn().Err(err).Str("func", "recordingService.decrypt").Str("recording_id", rec.RecordingID).Msg("decrypting recording failed")
		return nil, err
	}

	return plaintext, nil
}

func (r *recordingService) RequestTranscription(ctx context.Context, userID int64, recordingID string) error {
	log := logger.FromContext(ctx)

	rec, err := r.recordings.Get(ctx, userID, recordingID)
	if err != nil {
		return err
	}
	if rec.IsEncrypted && !rec.IsRecoverable() {
		return ErrPasswordNotRecoverable
	}

	if err = r.recordings.SetTranscriptionStatus(ctx, recordingID, models.TranscriptionPending); err != nil {
		return fmt.Errorf("mark transcription pending: %w", err)
	}

	if err = r.queue.Enqueue(ctx, models.TranscriptionJob{UserID: userID, RecordingID: recordingID}); err != nil {
		log.Err(err).Str("func", "recordingService.RequestTranscription").Str("recording_id", recordingID).Msg("enqueue failed")
		r.markFailed(ctx, recordingID)
		return fmt.Errorf("%w: %w", ErrTranscriptionQueueFull, err)
	}

	return nil
}

func (r *recordingService) Transcribe(ctx context.Context, job models.TranscriptionJob) error {
	log := logger.FromContext(ctx).With().Str("recording_id", job.RecordingID).Logger()

	rec, err := r.recordings.Get(ctx, job.UserID, job.RecordingID)
	if errors.Is(err, store.ErrRecordingNotFound) {
		return err
	}
	if err != nil {
		r.markFailed(ctx, job.RecordingID)
		return fmt.Errorf("load recording: %w", err)
	}

	if err = r.recordings.SetTranscriptionStatus(ctx, job.RecordingID, models.TranscriptionProcessing); err != nil {
		r.markFailed(ctx, job.RecordingID)
		return fmt.Errorf("mark transcription processing: %w", err)
	}

	text, err := r.transcribe(ctx, rec)
	if err != nil {
		log.Err(err).Str("func", "recordingService.Transcribe").Msg("transcription failed")
		r.markFailed(ctx, job.RecordingID)
		return err
	}

	sealed, err := r.content.Encrypt(text)
	if err != nil {
		r.markFailed(ctx, job.RecordingID)
		return fmt.Errorf("encrypt transcript: %w", err)
	}

	stored, encrypted := "", false
	if sealed != nil {
		stored, encrypted = *sealed, true
	}

	if err = r.recordings.SaveTranscript(ctx, job.RecordingID, stored, encrypted); err != nil {
		r.markFailed(ctx, job.RecordingID)
		return fmt.Errorf("save transcript: %w", err)
	}

	log.Info().Str("func", "recordingService.Transcribe").Int("text_len", len(text)).Msg("transcription stored")
	return nil
}

func (r *recordingService) transcribe(ctx context.Context, rec models.Recording) (string, error) {
	audio, err := r.decrypt(ctx, rec)
	if err != nil {
		return "", err
	}

	text, err := r.transcriber.Transcribe(ctx, audio, rec.FileName, rec.ContentType)
	if errors.Is(err, adapter.ErrTranscriberNotConfigured) {
		return "", ErrTranscriptionUnavailable
	}
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	return text, nil
}

// AbandonTranscription marks a dequeued job that will never run as failed.
func (r *recordingService) AbandonTranscription(ctx context.Context, job models.TranscriptionJob) {
	logger.FromContext(ctx).Warn().Str("recording_id", job.RecordingID).Msg("transcription job abandoned")
	r.markFailed(ctx, job.RecordingID)
}

// markFailed records a failed job. It uses a fresh context so a cancelled
// job still leaves a terminal status behind.
func (r *recordingService) markFailed(ctx context.Context, recordingID string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := r.recordings.SetTranscriptionStatus(ctx, recordingID, models.TranscriptionFailed); err != nil {
		logger.FromContext(ctx).Err(err).Str("recording_id", recordingID).Msg("marking transcription failed did not succeed")
	}
}

func (r *recordingService) GetTranscript(ctx context.Context, userID int64, recordingID string) (models.TranscriptResponse, error) {
	rec, err := r.recordings.Get(ctx, userID, recordingID)
	if err != nil {
		return models.TranscriptResponse{}, err
	}

	resp := models.TranscriptResponse{RecordingID: rec.RecordingID, Status: rec.TranscriptionStatus}
	if rec.Transcript != nil {
		text := r.content.DecryptMarked(*rec.Transcript, rec.TranscriptEncrypted)
		resp.Transcript = &text
	}

	return resp, nil
}

func (r *recordingService) DeleteRecording(ctx context.Context, userID int64, recordingID string) error {
	rec, err := r.recordings.Get(ctx, userID, recordingID)
	if err != nil {
		return err
	}

	if err = r.objects.Delete(ctx, rec.ObjectKey); err != nil && !errors.Is(err, store.ErrObjectNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "recordingService.DeleteRecording").Str("recording_id", recordingID).Msg("deleting object failed")
		return fmt.Errorf("delete object: %w", err)
	}

	return r.recordings.Delete(ctx, userID, recordingID)
}

func objectKeyPrefix(userID int64) string {
	return fmt.Sprintf("recordings/%d/", userID)
}
