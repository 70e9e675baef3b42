package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-voice-keeper/internal/app"
	"github.com/MKhiriev/go-voice-keeper/internal/service"
	"github.com/MKhiriev/go-voice-keeper/internal/store"
	"github.com/MKhiriev/go-voice-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateChat_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, m := newTestRouter(t, ctrl)

	req := models.CreateChatRequest{Title: "standup notes"}
	m.chats.EXPECT().CreateChat(gomock.Any(), testUserID, req).
		Return(models.Chat{ChatID: "chat-1", UserID: testUserID, Title: req.Title, Encrypted: true}, nil)

	rr := serve(router, http.MethodPost, "/api/chats", encodeBody(t, req))

	require.Equal(t, http.StatusCreated, rr.Code)
	got := decodeResponse[models.Chat](t, rr)
	assert.Equal(t, "chat-1", got.ChatID)
	assert.Equal(t, "standup notes", got.Title)
}

func TestGetChat_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, m := newTestRouter(t, ctrl)

	m.chats.EXPECT().GetChat(gomock.Any(), testUserID, "chat-x").Return(models.Chat{}, store.ErrChatNotFound)

	rr := serve(router, http.MethodGet, "/api/chats/chat-x", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgChatNotFound)
}

func TestAddChatMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"created", nil, http.StatusCreated},
		{"bad role", service.ErrInvalidChatRole, http.StatusBadRequest},
		{"empty content", service.ErrEmptyMessage, http.StatusBadRequest},
		{"foreign chat", store.ErrChatNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			router, m := newTestRouter(t, ctrl)

			req := models.AddMessageRequest{Role: models.RoleUser, Content: "summarize"}
			m.chats.EXPECT().AddMessage(gomock.Any(), testUserID, "chat-1", req).
				Return(models.ChatMessage{MessageID: "m-1", ChatID: "chat-1", Role: req.Role, Content: req.Content}, tt.err)

			rr := serve(router, http.MethodPost, "/api/chats/chat-1/messages", encodeBody(t, req))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestListChatMessages_EmptyIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, m := newTestRouter(t, ctrl)

	m.chats.EXPECT().ListMessages(gomock.Any(), testUserID, "chat-1").Return(nil, nil)

	rr := serve(router, http.MethodGet, "/api/chats/chat-1/messages", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListChatMessages_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, m := newTestRouter(t, ctrl)

	m.chats.EXPECT().ListMessages(gomock.Any(), testUserID, "chat-1").Return([]models.ChatMessage{
		{MessageID: "m-1", ChatID: "chat-1", Role: models.RoleUser, Content: "hi"},
		{MessageID: "m-2", ChatID: "chat-1", Role: models.RoleAssistant, Content: "hello"},
	}, nil)

	rr := serve(router, http.MethodGet, "/api/chats/chat-1/messages", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeResponse[[]models.ChatMessage](t, rr)
	require.Len(t, got, 2)
	assert.Equal(t, "hello", got[1].Content)
}
