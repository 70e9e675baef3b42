package adapter

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/go-voice-keeper/internal/config"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/internal/utils"
)

// transcriptionResponse is the provider's JSON reply.
type transcriptionResponse struct {
	Text string `json:"text"`
}

type httpTranscriber struct {
	client *utils.HTTPClient
	apiKey string
	logger *logger.Logger
}

type disabledTranscriber struct{}

// NewHTTPTranscriber returns a [Transcriber] posting multipart audio to
// cfg.TranscriberURL with cfg.TranscriberAPIKey as bearer token.
//
// With an empty URL it returns a transcriber whose every call fails with
// [ErrTranscriberNotConfigured], so the server can start without a provider.
func NewHTTPTranscriber(cfg config.Adapter, logger *logger.Logger) (Transcriber, error) {
	if cfg.TranscriberURL == "" {
		return disabledTranscriber{}, nil
	}

	baseURL, err := normalizeBaseURL(cfg.TranscriberURL)
	if err != nil {
		return nil, fmt.Errorf("invalid transcriber url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpTranscriber{client: client, apiKey: cfg.TranscriberAPIKey, logger: logger}, nil
}

// Transcribe implements [Transcriber]. The audio never leaves memory; it is
// streamed as the "file" multipart field.
func (t *httpTranscriber) Transcribe(ctx context.Context, audio []byte, fileName, contentType string) (string, error) {
	var result transcriptionResponse

	req := t.client.R().
		SetContext(ctx).
		SetMultipartField("file", fileName, contentType, bytes.NewReader(audio)).
		SetResult(&result)
	if t.apiKey != "" {
		req.SetAuthToken(t.apiKey)
	}

	resp, err := req.Post("")
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	t.logger.Debug().
		Str("func", "httpTranscriber.Transcribe").
		Int("audio_bytes", len(audio)).
		Int("text_len", len(result.Text)).
		Msg("transcription finished")

	return result.Text, nil
}

// Transcribe implements [Transcriber].
func (disabledTranscriber) Transcribe(context.Context, []byte, string, string) (string, error) {
	return "", ErrTranscriberNotConfigured
}
