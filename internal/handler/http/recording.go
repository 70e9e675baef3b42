package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-voice-keeper/internal/app"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/internal/utils"
	"github.com/MKhiriev/go-voice-keeper/models"
	"github.com/go-chi/chi/v5"
)

const idParam = "id"

// userFromRequest returns the user id stored by the auth middleware. A
// missing id is answered with 401 and ok == false.
func userFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, fn string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int, fn string) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("error writing response")
	}
}

func (h *Handler) createUploadTicket(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.createUploadTicket"
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var req models.UploadTicketRequest
	if !decodeJSON(w, r, &req, fn) {
		return
	}

	ticket, err := h.services.RecordingService.CreateUploadTicket(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, fn)
		return
	}

	writeJSON(w, r, ticket, http.StatusOK, fn)
}

func (h *Handler) createRecording(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.createRecording"
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateRecordingRequest
	if !decodeJSON(w, r, &req, fn) {
		return
	}

	recording, err := h.services.RecordingService.CreateRecording(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, fn)
		return
	}

	writeJSON(w, r, recording, http.StatusCreated, fn)
}

func (h *Handler) getPlaybackMaterial(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.getPlaybackMaterial"
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	material, err := h.services.RecordingService.GetPlaybackMaterial(r.Context(), userID, chi.URLParam(r, idParam))
	if err != nil {
		writeError(w, r, err, fn)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, material, http.StatusOK, fn)
}

// getDecryptedAudio streams the plaintext of a server-recoverable recording.
func (h *Handler) getDecryptedAudio(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.getDecryptedAudio"
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	recording, audio, err := h.services.RecordingService.DecryptRecording(r.Context(), userID, chi.URLParam(r, idParam))
	if err != nil {
		writeError(w, r, err, fn)
		return
	}

	contentType := recording.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(audio); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("error writing audio")
	}
}

func (h *Handler) requestTranscription(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.requestTranscription"
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	recordingID := chi.URLParam(r, idParam)
	if err := h.services.RecordingService.RequestTranscription(r.Context(), userID, recordingID); err != nil {
		writeError(w, r, err, fn)
		return
	}

	writeJSON(w, r, models.TranscriptResponse{
		RecordingID: recordingID,
		Status:      models.TranscriptionPending,
	}, http.StatusAccepted, fn)
}

func (h *Handler) getTranscript(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.getTranscript"
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	transcript, err := h.services.RecordingService.GetTranscript(r.Context(), userID, chi.URLParam(r, idParam))
	if err != nil {
		writeError(w, r, err, fn)
		return
	}

	writeJSON(w, r, transcript, http.StatusOK, fn)
}

func (h *Handler) deleteRecording(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.deleteRecording"
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.RecordingService.DeleteRecording(r.Context(), userID, chi.URLParam(r, idParam)); err != nil {
		writeError(w, r, err, fn)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
