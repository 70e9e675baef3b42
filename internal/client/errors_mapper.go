// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-voice-keeper/internal/adapter"
	"github.com/MKhiriev/go-voice-keeper/internal/app"
	"github.com/MKhiriev/go-voice-keeper/internal/crypto"
)

// mapAdapterError translates the adapter's transport error into a client
// error the CLI can act on.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrUnprocessable):
		return crypto.ErrDecryptionFailed

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrUnauthorized

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgFileUnavailable {
			return ErrFileUnavailable
		}
		return ErrRecordingNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgPasswordNotRecoverable {
			return ErrPasswordNotRecoverable
		}

	case errors.Is(err, adapter.ErrServiceUnavailable):
		return ErrTranscriptionUnavailable

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidEncryptionParams, app.MsgEncryptionMetadataMissing:
			return crypto.ErrValidation
		}
		return errors.Join(ErrInvalidRequest, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
