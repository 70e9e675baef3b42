package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-voice-keeper/internal/adapter"
	"github.com/MKhiriev/go-voice-keeper/internal/app"
	"github.com/MKhiriev/go-voice-keeper/internal/crypto"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	other := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"unprocessable", fmt.Errorf("%w: %s", adapter.ErrUnprocessable, app.MsgWrongPasswordOrCorrupted), crypto.ErrDecryptionFailed},
		{"unauthorized", fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpired), ErrUnauthorized},
		{"recording missing", fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgRecordingNotFound), ErrRecordingNotFound},
		{"file missing", fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgFileUnavailable), ErrFileUnavailable},
		{"not recoverable", fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgPasswordNotRecoverable), ErrPasswordNotRecoverable},
		{"busy", fmt.Errorf("%w: %s", adapter.ErrServiceUnavailable, app.MsgTranscriptionBusy), ErrTranscriptionUnavailable},
		{"bad params", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidEncryptionParams), crypto.ErrValidation},
		{"bad request", fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidDataProvided), ErrInvalidRequest},
		{"transport", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
