package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-voice-keeper/internal/validators"
	"github.com/MKhiriev/go-voice-keeper/models"
)

// RecordingValidationService validates requests before delegating to the
// wrapped RecordingService. Validation failures wrap ErrInvalidDataProvided.
type RecordingValidationService struct {
	inner     RecordingService
	validator validators.Validator
}

func NewRecordingValidationService() RecordingServiceWrapper {
	return &RecordingValidationService{
		validator: validators.NewRecordingValidator(),
	}
}

// Wrap implements RecordingServiceWrapper.
func (v *RecordingValidationService) Wrap(inner RecordingService) RecordingService {
	return &RecordingValidationService{inner: inner, validator: v.validator}
}

func (v *RecordingValidationService) CreateUploadTicket(ctx context.Context, userID int64, req models.UploadTicketRequest) (models.UploadTicket, error) {
	if err := v.validateUser(userID); err != nil {
		return models.UploadTicket{}, err
	}
	if err := v.validate(ctx, req); err != nil {
		return models.UploadTicket{}, err
	}
	return v.inner.CreateUploadTicket(ctx, userID, req)
}

func (v *RecordingValidationService) CreateRecording(ctx context.Context, userID int64, req models.CreateRecordingRequest) (models.Recording, error) {
	if err := v.validateUser(userID); err != nil {
		return models.Recording{}, err
	}
	if err := v.validate(ctx, req); err != nil {
		return models.Recording{}, err
	}
	return v.inner.CreateRecording(ctx, userID, req)
}

func (v *RecordingValidationService) GetPlaybackMaterial(ctx context.Context, userID int64, recordingID string) (models.PlaybackMaterial, error) {
	if err := v.validateTarget(ctx, userID, recordingID); err != nil {
		return models.PlaybackMaterial{}, err
	}
	return v.inner.GetPlaybackMaterial(ctx, userID, recordingID)
}

func (v *RecordingValidationService) DecryptRecording(ctx context.Context, userID int64, recordingID string) (models.Recording, []byte, error) {
	if err := v.validateTarget(ctx, userID, recordingID); err != nil {
		return models.Recording{}, nil, err
	}
	return v.inner.DecryptRecording(ctx, userID, recordingID)
}

func (v *RecordingValidationService) RequestTranscription(ctx context.Context, userID int64, recordingID string) error {
	if err := v.validateTarget(ctx, userID, recordingID); err != nil {
		return err
	}
	return v.inner.RequestTranscription(ctx, userID, recordingID)
}

func (v *RecordingValidationService) Transcribe(ctx context.Context, job models.TranscriptionJob) error {
	if err := v.validateTarget(ctx, job.UserID, job.RecordingID); err != nil {
		return err
	}
	return v.inner.Transcribe(ctx, job)
}

func (v *RecordingValidationService) AbandonTranscription(ctx context.Context, job models.TranscriptionJob) {
	v.inner.AbandonTranscription(ctx, job)
}

func (v *RecordingValidationService) GetTranscript(ctx context.Context, userID int64, recordingID string) (models.TranscriptResponse, error) {
	if err := v.validateTarget(ctx, userID, recordingID); err != nil {
		return models.TranscriptResponse{}, err
	}
	return v.inner.GetTranscript(ctx, userID, recordingID)
}

func (v *RecordingValidationService) DeleteRecording(ctx context.Context, userID int64, recordingID string) error {
	if err := v.validateTarget(ctx, userID, recordingID); err != nil {
		return err
	}
	return v.inner.DeleteRecording(ctx, userID, recordingID)
}

func (v *RecordingValidationService) validate(ctx context.Context, obj any) error {
	if err := v.validator.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (v *RecordingValidationService) validateUser(userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	return nil
}

func (v *RecordingValidationService) validateTarget(ctx context.Context, userID int64, recordingID string) error {
	if err := v.validateUser(userID); err != nil {
		return err
	}
	return v.validate(ctx, validators.RecordingID(recordingID))
}
