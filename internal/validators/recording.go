package validators

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/MKhiriev/go-voice-keeper/internal/crypto"
	"github.com/MKhiriev/go-voice-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldFileName targets the original file name of a recording.
	FieldFileName = "file_name"

	// FieldContentType targets the MIME type of the plaintext audio.
	FieldContentType = "content_type"

	// FieldObjectKey targets the object storage key of an uploaded recording.
	FieldObjectKey = "object_key"

	// FieldEncryption targets the iv, salt and password of a recording,
	// checked together since they are only meaningful as a set.
	FieldEncryption = "encryption"

	// FieldRecordingID targets a recording identifier taken from the URL.
	FieldRecordingID = "recording_id"
)

const maxFileNameLength = 255

// RecordingID is a recording identifier taken from a request path.
type RecordingID string

// RecordingValidator implements Validator for recording requests:
// models.UploadTicketRequest, models.CreateRecordingRequest and
// RecordingID, in value or pointer form.
type RecordingValidator struct{}

// NewRecordingValidator constructs a new RecordingValidator
// and returns it as the Validator interface.
func NewRecordingValidator() Validator {
	return &RecordingValidator{}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for any other type.
func (v *RecordingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadTicketRequest:
		return v.validateUploadTicketRequest(value, fields...)
	case *models.UploadTicketRequest:
		return v.validateUploadTicketRequest(*value, fields...)
	case models.CreateRecordingRequest:
		return v.validateCreateRecordingRequest(value, fields...)
	case *models.CreateRecordingRequest:
		return v.validateCreateRecordingRequest(*value, fields...)
	case RecordingID:
		return validateRecordingID(string(value))
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordingValidator) validateUploadTicketRequest(req models.UploadTicketRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName, FieldContentType}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			if err := validateFileName(req.FileName); err != nil {
				return err
			}
		case FieldContentType:
			if err := validateContentType(req.ContentType); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordingValidator) validateCreateRecordingRequest(req models.CreateRecordingRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldObjectKey, FieldFileName, FieldContentType, FieldEncryption}
	}

	for _, f := range fields {
		switch f {
		case FieldObjectKey:
			if strings.TrimSpace(req.ObjectKey) == "" {
				return ErrEmptyObjectKey
			}
		case FieldFileName:
			if err := validateFileName(req.FileName); err != nil {
				return err
			}
		case FieldContentType:
			if err := validateContentType(req.ContentType); err != nil {
				return err
			}
		case FieldEncryption:
			if err := validateEncryption(req); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEncryption(req models.CreateRecordingRequest) error {
	if !req.IsEncrypted {
		if req.EncryptionIV != nil || req.EncryptionSalt != nil || req.Password != nil {
			return fmt.Errorf("%w: %w", crypto.ErrValidation, ErrUnexpectedParams)
		}
		return nil
	}

	// Missing iv or salt is reported by the service as its own error.
	if req.EncryptionIV == nil || req.EncryptionSalt == nil {
		return nil
	}

	_, _, err := crypto.FileParams{IV: *req.EncryptionIV, Salt: *req.EncryptionSalt}.Decode()
	return err
}

func validateFileName(name string) error {
	switch {
	case strings.TrimSpace(name) == "",
		len(name) > maxFileNameLength,
		strings.ContainsAny(name, "/\\\x00"):
		return ErrInvalidFileName
	}
	return nil
}

// validateContentType accepts an empty value.
func validateContentType(contentType string) error {
	if contentType == "" {
		return nil
	}
	if _, _, err := mime.ParseMediaType(contentType); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidContentType, err)
	}
	return nil
}

func validateRecordingID(id string) error {
	if strings.TrimSpace(id) == "" || len(id) > 64 || strings.ContainsAny(id, "/\\") {
		return ErrInvalidRecordingID
	}
	return nil
}
