package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/internal/mock"
	"github.com/MKhiriev/go-voice-keeper/internal/service"
	"github.com/MKhiriev/go-voice-keeper/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID int64 = 7

// ---- Mock: AuthService ----

type mockAuthService struct {
	parseTokenFn func(ctx context.Context, s string) (models.Token, error)
}

func (m *mockAuthService) CreateToken(_ context.Context, userID int64) (models.Token, error) {
	return models.Token{UserID: userID, SignedString: "signed"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: testUserID}, nil
}

// ---- Helpers ----

type handlerMocks struct {
	recordings *mock.MockRecordingService
	chats      *mock.MockChatService
}

// newTestRouter returns the full router with an auth service that accepts
// any token as testUserID.
func newTestRouter(t *testing.T, ctrl *gomock.Controller) (http.Handler, handlerMocks) {
	t.Helper()
	m := handlerMocks{
		recordings: mock.NewMockRecordingService(ctrl),
		chats:      mock.NewMockChatService(ctrl),
	}
	h := &Handler{logger: logger.Nop(), services: testServices(m)}
	return h.Init(), m
}

// testServices wires the mocks behind an auth service that accepts any token.
func testServices(m handlerMocks) *service.Services {
	return &service.Services{
		AuthService:      &mockAuthService{},
		AppInfoService:   &mockAppInfoService{version: "test-version"},
		RecordingService: m.recordings,
		ChatService:      m.chats,
	}
}

func validAuthHeader() string { return "Bearer stub-token" }

// encodeBody serialises v to JSON and returns it as an io.Reader.
func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

// serve sends an authenticated request through router.
func serve(router http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", validAuthHeader())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}
