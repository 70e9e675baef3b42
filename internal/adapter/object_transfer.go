package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/internal/utils"
)

type httpObjectTransfer struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPObjectTransfer returns an [ObjectTransfer] that talks to presigned
// URLs directly. No base URL or authorization header is set: the signature
// in the URL is the only credential.
func NewHTTPObjectTransfer(timeout time.Duration, logger *logger.Logger) ObjectTransfer {
	return &httpObjectTransfer{client: utils.NewHTTPClient(timeout), logger: logger}
}

// Put uploads body with the content type the URL was signed for.
func (t *httpObjectTransfer) Put(ctx context.Context, url, contentType string, body []byte) error {
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Put(url)
	if err != nil {
		return fmt.Errorf("object put request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	t.logger.Debug().Str("func", "httpObjectTransfer.Put").Int("bytes", len(body)).Msg("object uploaded")
	return nil
}

// Get downloads the object behind a presigned GET URL.
func (t *httpObjectTransfer) Get(ctx context.Context, url string) ([]byte, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("object get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
