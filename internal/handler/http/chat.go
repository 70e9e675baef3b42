package http

import (
	"net/http"

	"github.com/MKhiriev/go-voice-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createChat(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.createChat"
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateChatRequest
	if !decodeJSON(w, r, &req, fn) {
		return
	}

	chat, err := h.services.ChatService.CreateChat(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, fn)
		return
	}

	writeJSON(w, r, chat, http.StatusCreated, fn)
}

func (h *Handler) getChat(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.getChat"
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	chat, err := h.services.ChatService.GetChat(r.Context(), userID, chi.URLParam(r, idParam))
	if err != nil {
		writeError(w, r, err, fn)
		return
	}

	writeJSON(w, r, chat, http.StatusOK, fn)
}

func (h *Handler) addChatMessage(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.addChatMessage"
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	var req models.AddMessageRequest
	if !decodeJSON(w, r, &req, fn) {
		return
	}

	message, err := h.services.ChatService.AddMessage(r.Context(), userID, chi.URLParam(r, idParam), req)
	if err != nil {
		writeError(w, r, err, fn)
		return
	}

	writeJSON(w, r, message, http.StatusCreated, fn)
}

func (h *Handler) listChatMessages(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.listChatMessages"
	userID, ok := userFromRequest(w, r)
	if !ok {
		return
	}

	messages, err := h.services.ChatService.ListMessages(r.Context(), userID, chi.URLParam(r, idParam))
	if err != nil {
		writeError(w, r, err, fn)
		return
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}

	writeJSON(w, r, messages, http.StatusOK, fn)
}
