package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-voice-keeper/internal/app"
	"github.com/MKhiriev/go-voice-keeper/internal/crypto"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/internal/service"
	"github.com/MKhiriev/go-voice-keeper/internal/store"
	"github.com/MKhiriev/go-voice-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

// ── createUploadTicket ──────────────────────────────────────────────────────

func TestCreateUploadTicket_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, m := newTestRouter(t, ctrl)

	req := models.UploadTicketRequest{FileName: "memo.wav", ContentType: "audio/wav"}
	ticket := models.UploadTicket{ObjectKey: "recordings/7/k", URL: "https://s3/put", ExpiresAt: time.Now().UTC()}
	m.recordings.EXPECT().CreateUploadTicket(gomock.Any(), testUserID, req).Return(ticket, nil)

	rr := serve(router, http.MethodPost, "/api/recordings/upload-url", encodeBody(t, req))

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeResponse[models.UploadTicket](t, rr)
	assert.Equal(t, ticket.ObjectKey, got.ObjectKey)
	assert.Equal(t, ticket.URL, got.URL)
}

func TestCreateUploadTicket_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, _ := newTestRouter(t, ctrl)

	rr := serve(router, http.MethodPost, "/api/recordings/upload-url", strings.NewReader(`{bad json}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgInvalidJSON)
}

func TestCreateUploadTicket_NoUserInContext(t *testing.T) {
	h := &Handler{logger: logger.Nop(), services: &service.Services{}}
	req := httptest.NewRequest(http.MethodPost, "/api/recordings/upload-url", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	h.createUploadTicket(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ── createRecording ─────────────────────────────────────────────────────────

func TestCreateRecording_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, m := newTestRouter(t, ctrl)

	req := models.CreateRecordingRequest{
		ObjectKey:      "recordings/7/k",
		FileName:       "memo.wav",
		ContentType:    "audio/wav",
		IsEncrypted:    true,
		EncryptionIV:   strPtr("iv"),
		EncryptionSalt: strPtr("salt"),
		Password:       strPtr("pw"),
	}
	m.recordings.EXPECT().CreateRecording(gomock.Any(), testUserID, req).Return(models.Recording{
		RecordingID:       "rec-1",
		UserID:            testUserID,
		ObjectKey:         req.ObjectKey,
		IsEncrypted:       true,
		EncryptedPassword: strPtr("wrapped"),
	}, nil)

	rr := serve(router, http.MethodPost, "/api/recordings", encodeBody(t, req))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"recording_id":"rec-1"`)
	assert.NotContains(t, rr.Body.String(), "wrapped", "password envelope must never be serialized")
}

func TestCreateRecording_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"invalid data", fmt.Errorf("%w: bad name", service.ErrInvalidDataProvided), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"metadata missing", service.ErrEncryptionMetadataMissing, http.StatusBadRequest, app.MsgEncryptionMetadataMissing},
		{"bad params", fmt.Errorf("%w: iv", crypto.ErrValidation), http.StatusBadRequest, app.MsgInvalidEncryptionParams},
		{"foreign key", service.ErrForeignObjectKey, http.StatusBadRequest, app.MsgForeignObjectKey},
		{"duplicate", store.ErrRecordingAlreadyExists, http.StatusConflict, app.MsgRecordingAlreadyExists},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			router, m := newTestRouter(t, ctrl)
			m.recordings.EXPECT().CreateRecording(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Recording{}, tt.err)

			rr := serve(router, http.MethodPost, "/api/recordings", encodeBody(t, models.CreateRecordingRequest{}))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
			assert.NotContains(t, rr.Body.String(), "boom", "internal error text must not leak")
		})
	}
}

// ── getPlaybackMaterial ─────────────────────────────────────────────────────

func TestGetPlaybackMaterial_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, m := newTestRouter(t, ctrl)

	m.recordings.EXPECT().GetPlaybackMaterial(gomock.Any(), testUserID, "rec-1").Return(models.PlaybackMaterial{
		RecordingID: "rec-1",
		URL:         "https://s3/get",
		IsEncrypted: true,
		Password:    strPtr("pw"),
	}, nil)

	rr := serve(router, http.MethodGet, "/api/recordings/rec-1/playback", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	got := decodeResponse[models.PlaybackMaterial](t, rr)
	require.NotNil(t, got.Password)
	assert.Equal(t, "pw", *got.Password)
}

func TestGetPlaybackMaterial_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, m := newTestRouter(t, ctrl)

	m.recordings.EXPECT().GetPlaybackMaterial(gomock.Any(), testUserID, "missing").
		Return(models.PlaybackMaterial{}, fmt.Errorf("get: %w", store.ErrRecordingNotFound))

	rr := serve(router, http.MethodGet, "/api/recordings/missing/playback", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── getDecryptedAudio ───────────────────────────────────────────────────────

func TestGetDecryptedAudio_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, m := newTestRouter(t, ctrl)

	audio := []byte("RIFF....WAVE")
	m.recordings.EXPECT().DecryptRecording(gomock.Any(), testUserID, "rec-1").
		Return(models.Recording{RecordingID: "rec-1", ContentType: "audio/wav"}, audio, nil)

	rr := serve(router, http.MethodGet, "/api/recordings/rec-1/audio", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "audio/wav", rr.Header().Get("Content-Type"))
	assert.Equal(t, audio, rr.Body.Bytes())
}

func TestGetDecryptedAudio_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"wrong password", crypto.ErrDecryptionFailed, http.StatusUnprocessableEntity, app.MsgWrongPasswordOrCorrupted},
		{"corrupt envelope", fmt.Errorf("unwrap password: %w", crypto.ErrEnvelopeCorrupt), http.StatusInternalServerError, app.MsgInternalServerError},
		{"file gone", fmt.Errorf("%w: rec-1", service.ErrFileUnavailable), http.StatusNotFound, app.MsgFileUnavailable},
		{"not recoverable", service.ErrPasswordNotRecoverable, http.StatusConflict, app.MsgPasswordNotRecoverable},
		{"metadata missing", service.ErrEncryptionMetadataMissing, http.StatusBadRequest, app.MsgEncryptionMetadataMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			router, m := newTestRouter(t, ctrl)
			m.recordings.EXPECT().DecryptRecording(gomock.Any(), testUserID, "rec-1").Return(models.Recording{}, nil, tt.err)

			rr := serve(router, http.MethodGet, "/api/recordings/rec-1/audio", nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody+"\n", rr.Body.String())
		})
	}
}

// ── transcription ───────────────────────────────────────────────────────────

func TestRequestTranscription_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, m := newTestRouter(t, ctrl)

	m.recordings.EXPECT().RequestTranscription(gomock.Any(), testUserID, "rec-1").Return(nil)

	rr := serve(router, http.MethodPost, "/api/recordings/rec-1/transcription", nil)

	require.Equal(t, http.StatusAccepted, rr.Code)
	got := decodeResponse[models.TranscriptResponse](t, rr)
	assert.Equal(t, models.TranscriptionPending, got.Status)
	assert.Equal(t, "rec-1", got.RecordingID)
}

func TestRequestTranscription_ServiceUnavailable(t *testing.T) {
	for _, err := range []error{
		fmt.Errorf("%w: %w", service.ErrTranscriptionQueueFull, errors.New("queue is full")),
		service.ErrTranscriptionUnavailable,
	} {
		ctrl := gomock.NewController(t)
		router, m := newTestRouter(t, ctrl)
		m.recordings.EXPECT().RequestTranscription(gomock.Any(), testUserID, "rec-1").Return(err)

		rr := serve(router, http.MethodPost, "/api/recordings/rec-1/transcription", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code, err.Error())
	}
}

func TestGetTranscript_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, m := newTestRouter(t, ctrl)

	m.recordings.EXPECT().GetTranscript(gomock.Any(), testUserID, "rec-1").Return(models.TranscriptResponse{
		RecordingID: "rec-1",
		Status:      models.TranscriptionDone,
		Transcript:  strPtr("hello world"),
	}, nil)

	rr := serve(router, http.MethodGet, "/api/recordings/rec-1/transcription", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeResponse[models.TranscriptResponse](t, rr)
	require.NotNil(t, got.Transcript)
	assert.Equal(t, "hello world", *got.Transcript)
}

// ── deleteRecording ─────────────────────────────────────────────────────────

func TestDeleteRecording(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, m := newTestRouter(t, ctrl)

	gomock.InOrder(
		m.recordings.EXPECT().DeleteRecording(gomock.Any(), testUserID, "rec-1").Return(nil),
		m.recordings.EXPECT().DeleteRecording(gomock.Any(), testUserID, "rec-1").Return(store.ErrRecordingNotFound),
	)

	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodDelete, "/api/recordings/rec-1", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodDelete, "/api/recordings/rec-1", nil).Code)
}
