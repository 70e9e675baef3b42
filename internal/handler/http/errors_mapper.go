package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-voice-keeper/internal/app"
	"github.com/MKhiriev/go-voice-keeper/internal/crypto"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/internal/service"
	"github.com/MKhiriev/go-voice-keeper/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap holds the transport view of every error the services
// surface. Targets are disjoint so iteration order does not matter.
var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:       {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrEncryptionMetadataMissing: {http.StatusBadRequest, app.MsgEncryptionMetadataMissing},
	service.ErrForeignObjectKey:          {http.StatusBadRequest, app.MsgForeignObjectKey},
	service.ErrInvalidChatRole:           {http.StatusBadRequest, app.MsgInvalidMessage},
	service.ErrEmptyMessage:              {http.StatusBadRequest, app.MsgInvalidMessage},
	service.ErrVersionIsNotSpecified:     {http.StatusBadRequest, app.MsgVersionIsNotSpecified},
	service.ErrTokenIsExpired:            {http.StatusUnauthorized, app.MsgTokenIsExpired},
	service.ErrTokenIsExpiredOrInvalid:   {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrFileUnavailable:           {http.StatusNotFound, app.MsgFileUnavailable},
	service.ErrPasswordNotRecoverable:    {http.StatusConflict, app.MsgPasswordNotRecoverable},
	service.ErrTranscriptionQueueFull:    {http.StatusServiceUnavailable, app.MsgTranscriptionBusy},
	service.ErrTranscriptionUnavailable:  {http.StatusServiceUnavailable, app.MsgTranscriptionUnavailable},

	crypto.ErrValidation:       {http.StatusBadRequest, app.MsgInvalidEncryptionParams},
	crypto.ErrDecryptionFailed: {http.StatusUnprocessableEntity, app.MsgWrongPasswordOrCorrupted},
	crypto.ErrEnvelopeCorrupt:  {http.StatusInternalServerError, app.MsgInternalServerError},
	crypto.ErrConfiguration:    {http.StatusInternalServerError, app.MsgInternalServerError},

	store.ErrRecordingNotFound:      {http.StatusNotFound, app.MsgRecordingNotFound},
	store.ErrRecordingAlreadyExists: {http.StatusConflict, app.MsgRecordingAlreadyExists},
	store.ErrChatNotFound:           {http.StatusNotFound, app.MsgChatNotFound},
}

func statusFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status. Internal error
// text never reaches the response body.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg(message)

	http.Error(w, message, status)
}
