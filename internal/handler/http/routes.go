package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Get("/api/version/", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth, withGZip)

		r.Post("/api/recordings/upload-url", h.createUploadTicket)
		r.Post("/api/recordings", h.createRecording)
		r.Get("/api/recordings/{id}/playback", h.getPlaybackMaterial)
		r.Get("/api/recordings/{id}/audio", h.getDecryptedAudio)
		r.Post("/api/recordings/{id}/transcription", h.requestTranscription)
		r.Get("/api/recordings/{id}/transcription", h.getTranscript)
		r.Delete("/api/recordings/{id}", h.deleteRecording)

		r.Post("/api/chats", h.createChat)
		r.Get("/api/chats/{id}", h.getChat)
		r.Post("/api/chats/{id}/messages", h.addChatMessage)
		r.Get("/api/chats/{id}/messages", h.listChatMessages)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
