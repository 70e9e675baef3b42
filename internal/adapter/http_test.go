// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-voice-keeper/internal/config"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJ1c2VyX2lkIjoxfQ.signature"

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	cfg := config.ClientConfig{ServerURL: serverURL, Token: " " + testToken + " ", RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func strPtr(s string) *string { return &s }

// ── Token ───────────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_TrimsToken(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8080")
	assert.Equal(t, testToken, a.Token())

	a.SetToken("  other ")
	assert.Equal(t, "other", a.Token())
}

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientConfig{ServerURL: "  "}, logger.Nop())
	require.Error(t, err)
}

// ── CreateUploadTicket ──────────────────────────────────────────────────────

func TestCreateUploadTicket_Success(t *testing.T) {
	expires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/recordings/upload-url", r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))

		var req models.UploadTicketRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "memo.m4a", req.FileName)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.UploadTicket{ObjectKey: "recordings/1/k", URL: "http://s3/put", ExpiresAt: expires})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateUploadTicket(context.Background(), models.UploadTicketRequest{FileName: "memo.m4a", ContentType: "audio/mp4"})

	require.NoError(t, err)
	assert.Equal(t, "recordings/1/k", got.ObjectKey)
	assert.Equal(t, "http://s3/put", got.URL)
	assert.True(t, expires.Equal(got.ExpiresAt))
}

func TestCreateUploadTicket_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateUploadTicket(context.Background(), models.UploadTicketRequest{FileName: "memo.m4a"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── CreateRecording ─────────────────────────────────────────────────────────

func TestCreateRecording_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/recordings", r.URL.Path)

		var req models.CreateRecordingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.IsEncrypted)
		require.NotNil(t, req.Password)
		assert.Equal(t, "pw", *req.Password)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Recording{RecordingID: "rec-1", IsEncrypted: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateRecording(context.Background(), models.CreateRecordingRequest{
		ObjectKey:      "recordings/1/k",
		IsEncrypted:    true,
		EncryptionIV:   strPtr("iv"),
		EncryptionSalt: strPtr("salt"),
		Password:       strPtr("pw"),
	})

	require.NoError(t, err)
	assert.Equal(t, "rec-1", got.RecordingID)
}

func TestCreateRecording_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("encryption metadata missing"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateRecording(context.Background(), models.CreateRecordingRequest{IsEncrypted: true})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "encryption metadata missing")
}

// ── GetPlaybackMaterial ─────────────────────────────────────────────────────

func TestGetPlaybackMaterial_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/recordings/rec-1/playback", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PlaybackMaterial{
			RecordingID: "rec-1", URL: "http://s3/get", IsEncrypted: true,
			EncryptionIV: strPtr("iv"), EncryptionSalt: strPtr("salt"), Password: strPtr("pw"),
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetPlaybackMaterial(context.Background(), "rec-1")

	require.NoError(t, err)
	assert.Equal(t, "http://s3/get", got.URL)
	require.NotNil(t, got.Password)
	assert.Equal(t, "pw", *got.Password)
}

func TestGetPlaybackMaterial_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetPlaybackMaterial(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Transcription ───────────────────────────────────────────────────────────

func TestRequestTranscription_Accepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/recordings/rec-1/transcription", r.URL.Path)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.RequestTranscription(context.Background(), "rec-1"))
}

func TestRequestTranscription_Unprocessable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("wrong password or corrupted data"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.RequestTranscription(context.Background(), "rec-1")

	assert.ErrorIs(t, err, ErrUnprocessable)
}

func TestGetTranscript_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.TranscriptResponse{
			RecordingID: "rec-1", Status: models.TranscriptionDone, Transcript: strPtr("hello"),
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetTranscript(context.Background(), "rec-1")

	require.NoError(t, err)
	assert.Equal(t, models.TranscriptionDone, got.Status)
	require.NotNil(t, got.Transcript)
	assert.Equal(t, "hello", *got.Transcript)
}

// ── DeleteRecording ─────────────────────────────────────────────────────────

func TestDeleteRecording_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/recordings/rec-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.DeleteRecording(context.Background(), "rec-1"))
}

func TestDeleteRecording_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.ErrorIs(t, a.DeleteRecording(context.Background(), "rec-1"), ErrForbidden)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
