// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/MKhiriev/go-voice-keeper/internal/crypto"
	"github.com/MKhiriev/go-voice-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr(s string) *string { return &s }

func b64(n int) *string {
	return ptr(base64.StdEncoding.EncodeToString(make([]byte, n)))
}

func validCreateRequest() models.CreateRecordingRequest {
	return models.CreateRecordingRequest{
		ObjectKey:      "recordings/1/abc",
		FileName:       "memo.m4a",
		ContentType:    "audio/mp4",
		IsEncrypted:    true,
		EncryptionIV:   b64(crypto.FileIVSize),
		EncryptionSalt: b64(crypto.FileSaltSize),
		Password:       ptr("pw"),
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewRecordingValidator(t *testing.T) {
	require.NotNil(t, NewRecordingValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRecordingValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_PointerForms(t *testing.T) {
	v := NewRecordingValidator()
	ctx := context.Background()

	req := validCreateRequest()
	assert.NoError(t, v.Validate(ctx, &req))

	ticket := models.UploadTicketRequest{FileName: "memo.m4a"}
	assert.NoError(t, v.Validate(ctx, &ticket))
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewRecordingValidator()
	err := v.Validate(context.Background(), validCreateRequest(), "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// UploadTicketRequest
// ---------------------------------------------------------------------------

func TestValidate_UploadTicketRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.UploadTicketRequest
		wantErr error
	}{
		{"valid", models.UploadTicketRequest{FileName: "a.wav", ContentType: "audio/wav"}, nil},
		{"empty content type allowed", models.UploadTicketRequest{FileName: "a.wav"}, nil},
		{"empty name", models.UploadTicketRequest{FileName: "  "}, ErrInvalidFileName},
		{"path traversal", models.UploadTicketRequest{FileName: "../etc/passwd"}, ErrInvalidFileName},
		{"backslash", models.UploadTicketRequest{FileName: `a\b.wav`}, ErrInvalidFileName},
		{"too long", models.UploadTicketRequest{FileName: strings.Repeat("a", 256)}, ErrInvalidFileName},
		{"bad content type", models.UploadTicketRequest{FileName: "a.wav", ContentType: "audio/"}, ErrInvalidContentType},
	}

	v := NewRecordingValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// CreateRecordingRequest
// ---------------------------------------------------------------------------

func TestValidate_CreateRecordingRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.CreateRecordingRequest)
		wantErr error
	}{
		{"valid", func(r *models.CreateRecordingRequest) {}, nil},
		{"empty object key", func(r *models.CreateRecordingRequest) { r.ObjectKey = "" }, ErrEmptyObjectKey},
		{"bad file name", func(r *models.CreateRecordingRequest) { r.FileName = "" }, ErrInvalidFileName},
		{"iv wrong length", func(r *models.CreateRecordingRequest) { r.EncryptionIV = b64(16) }, crypto.ErrValidation},
		{"salt not base64", func(r *models.CreateRecordingRequest) { r.EncryptionSalt = ptr("%%%") }, crypto.ErrValidation},
		{"missing iv left to service", func(r *models.CreateRecordingRequest) { r.EncryptionIV = nil }, nil},
		{"plaintext without params", func(r *models.CreateRecordingRequest) {
			r.IsEncrypted, r.EncryptionIV, r.EncryptionSalt, r.Password = false, nil, nil, nil
		}, nil},
		{"plaintext with password", func(r *models.CreateRecordingRequest) {
			r.IsEncrypted, r.EncryptionIV, r.EncryptionSalt = false, nil, nil
		}, ErrUnexpectedParams},
	}

	v := NewRecordingValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_CreateRecordingRequest_FieldScoping(t *testing.T) {
	req := validCreateRequest()
	req.FileName = ""

	v := NewRecordingValidator()
	assert.NoError(t, v.Validate(context.Background(), req, FieldObjectKey, FieldEncryption))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldFileName), ErrInvalidFileName)
}

// ---------------------------------------------------------------------------
// RecordingID
// ---------------------------------------------------------------------------

func TestValidate_RecordingID(t *testing.T) {
	v := NewRecordingValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, RecordingID("0190b8f4-7c1e-7d3a-9c53-1f2e3d4c5b6a")))
	assert.ErrorIs(t, v.Validate(ctx, RecordingID("")), ErrInvalidRecordingID)
	assert.ErrorIs(t, v.Validate(ctx, RecordingID("a/b")), ErrInvalidRecordingID)
	assert.ErrorIs(t, v.Validate(ctx, RecordingID(strings.Repeat("x", 65))), ErrInvalidRecordingID)
}
