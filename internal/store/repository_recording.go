// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/models"
	"github.com/jackc/pgerrcode"
)

// recordingRepository is the PostgreSQL-backed implementation of
// [RecordingRepository] over the "recordings" table.
//
// Every query is scoped by user_id except the transcript updates, which are
// only issued by transcription workers for jobs the owner already created.
type recordingRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordingRepository constructs a [RecordingRepository] backed by the
// provided database connection and logger.
func NewRecordingRepository(db *DB, logger *logger.Logger) RecordingRepository {
	logger.Debug().Msg("creating recording repository")
	return &recordingRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts a recording and returns it with the server-assigned
// CreatedAt.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrRecordingAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *recordingRepository) Create(ctx context.Context, recording models.Recording) (models.Recording, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRecordingQuery(recording)
	if err != nil {
		log.Err(err).Str("func", "recordingRepository.Create").Msg("failed to build query")
		return models.Recording{}, err
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&recording.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "recordingRepository.Create").
			Str("recording_id", recording.RecordingID).
			Int64("user_id", recording.UserID).
			Msg("failed to insert recording")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Recording{}, ErrRecordingAlreadyExists
		}
		return models.Recording{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return recording, nil
}

// Get returns the recording owned by userID. A recording owned by someone
// else is reported as [ErrRecordingNotFound].
func (r *recordingRepository) Get(ctx context.Context, userID int64, recordingID string) (models.Recording, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordingQuery(userID, recordingID)
	if err != nil {
		log.Err(err).Str("func", "recordingRepository.Get").Msg("failed to build query")
		return models.Recording{}, err
	}

	var rec models.Recording
	scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&rec.RecordingID,
		&rec.UserID,
		&rec.ObjectKey,
		&rec.FileName,
		&rec.ContentType,
		&rec.IsEncrypted,
		&rec.EncryptionIV,
		&rec.EncryptionSalt,
		&rec.EncryptedPassword,
		&rec.Transcript,
		&rec.TranscriptEncrypted,
		&rec.TranscriptionStatus,
		&rec.CreatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Recording{}, ErrRecordingNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "recordingRepository.Get").
			Str("recording_id", recordingID).
			Msg("failed to scan recording row")
		return models.Recording{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return rec, nil
}

// Delete removes the recording row. Deleting a missing or foreign
// recording yields [ErrRecordingNotFound].
func (r *recordingRepository) Delete(ctx context.Context, userID int64, recordingID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordingQuery(userID, recordingID)
	if err != nil {
		log.Err(err).Str("func", "recordingRepository.Delete").Msg("failed to build query")
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordingRepository.Delete").
			Str("recording_id", recordingID).
			Msg("failed to delete recording")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrRecordingNotFound)
}

// SaveTranscript stores the transcript and marks transcription done. The
// statement is idempotent and is repeated on transient database errors.
func (r *recordingRepository) SaveTranscript(ctx context.Context, recordingID, transcript string, encrypted bool) error {
	query, args, err := buildSaveTranscriptQuery(recordingID, transcript, encrypted)
	if err != nil {
		return err
	}

	return r.update(ctx, "recordingRepository.SaveTranscript", recordingID, query, args)
}

// SetTranscriptionStatus moves the recording to status.
func (r *recordingRepository) SetTranscriptionStatus(ctx context.Context, recordingID string, status models.TranscriptionStatus) error {
	query, args, err := buildSetTranscriptionStatusQuery(recordingID, status)
	if err != nil {
		return err
	}

	return r.update(ctx, "recordingRepository.SetTranscriptionStatus", recordingID, query, args)
}

func (r *recordingRepository) update(ctx context.Context, funcName, recordingID, query string, args []any) error {
	res, err := r.DB.execWithRetry(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Str("recording_id", recordingID).
			Msg("failed to update recording")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrRecordingNotFound)
}

func expectAffected(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
