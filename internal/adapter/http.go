package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-voice-keeper/internal/config"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/internal/utils"
	"github.com/MKhiriev/go-voice-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates cfg.ServerURL, configures the underlying HTTP
// client with the resolved base URL and request timeout, and seeds the bearer
// token from cfg.Token.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	h := &httpServerAdapter{client: client, logger: logger}
	h.SetToken(cfg.Token)
	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The token is whitespace-trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// CreateUploadTicket implements [ServerAdapter] via
// POST /api/recordings/upload-url.
func (h *httpServerAdapter) CreateUploadTicket(ctx context.Context, req models.UploadTicketRequest) (models.UploadTicket, error) {
	var ticket models.UploadTicket

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&ticket).
		Post("/api/recordings/upload-url")
	if err != nil {
		return models.UploadTicket{}, fmt.Errorf("upload ticket request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadTicket{}, err
	}

	return ticket, nil
}

// CreateRecording implements [ServerAdapter] via POST /api/recordings.
func (h *httpServerAdapter) CreateRecording(ctx context.Context, req models.CreateRecordingRequest) (models.Recording, error) {
	var recording models.Recording

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&recording).
		Post("/api/recordings")
	if err != nil {
		return models.Recording{}, fmt.Errorf("create recording request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recording{}, err
	}

	return recording, nil
}

// GetPlaybackMaterial implements [ServerAdapter] via
// GET /api/recordings/{id}/playback.
func (h *httpServerAdapter) GetPlaybackMaterial(ctx context.Context, recordingID string) (models.PlaybackMaterial, error) {
	var material models.PlaybackMaterial

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", recordingID).
		SetResult(&material).
		Get("/api/recordings/{id}/playback")
	if err != nil {
		return models.PlaybackMaterial{}, fmt.Errorf("playback request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PlaybackMaterial{}, err
	}

	return material, nil
}

// RequestTranscription implements [ServerAdapter] via
// POST /api/recordings/{id}/transcription.
func (h *httpServerAdapter) RequestTranscription(ctx context.Context, recordingID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", recordingID).
		Post("/api/recordings/{id}/transcription")
	if err != nil {
		return fmt.Errorf("transcription request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetTranscript implements [ServerAdapter] via
// GET /api/recordings/{id}/transcription.
func (h *httpServerAdapter) GetTranscript(ctx context.Context, recordingID string) (models.TranscriptResponse, error) {
	var transcript models.TranscriptResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", recordingID).
		SetResult(&transcript).
		Get("/api/recordings/{id}/transcription")
	if err != nil {
		return models.TranscriptResponse{}, fmt.Errorf("get transcript request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TranscriptResponse{}, err
	}

	return transcript, nil
}

// DeleteRecording implements [ServerAdapter] via DELETE /api/recordings/{id}.
func (h *httpServerAdapter) DeleteRecording(ctx context.Context, recordingID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", recordingID).
		Delete("/api/recordings/{id}")
	if err != nil {
		return fmt.Errorf("delete recording request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
