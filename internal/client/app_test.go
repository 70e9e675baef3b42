package client

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-voice-keeper/internal/adapter"
	"github.com/MKhiriev/go-voice-keeper/internal/crypto"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/internal/mock"
	"github.com/MKhiriev/go-voice-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPassword = "correct-horse-battery-staple"

// queuedPrompter answers prompts in order and records the labels it saw.
type queuedPrompter struct {
	answers []string
	labels  []string
}

func (p *queuedPrompter) Prompt(label string) (string, error) {
	p.labels = append(p.labels, label)
	if len(p.answers) == 0 {
		return "", errors.New("unexpected prompt")
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

type appMocks struct {
	server  *mock.MockServerAdapter
	objects *mock.MockObjectTransfer
}

func newTestApp(t *testing.T, prompter PasswordPrompter) (*App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appMocks{
		server:  mock.NewMockServerAdapter(ctrl),
		objects: mock.NewMockObjectTransfer(ctrl),
	}
	return NewApp(m.server, m.objects, crypto.NewFileCipher(), prompter, logger.Nop()), m
}

func writeTempAudio(t *testing.T) (string, []byte) {
	t.Helper()
	audio := bytes.Repeat([]byte{0x52, 0x49, 0x46, 0x46}, 256)
	path := filepath.Join(t.TempDir(), "memo.wav")
	require.NoError(t, os.WriteFile(path, audio, 0o600))
	return path, audio
}

// encryptFor builds the ciphertext and params a prior upload would have stored.
func encryptFor(t *testing.T, audio []byte, password string) crypto.EncryptedFile {
	t.Helper()
	enc, err := crypto.NewFileCipher().EncryptFile(bytes.NewReader(audio), password)
	require.NoError(t, err)
	return enc
}

// ── Upload ──────────────────────────────────────────────────────────────────

func TestApp_Upload_EncryptsBeforeUpload(t *testing.T) {
	app, m := newTestApp(t, &queuedPrompter{})
	path, audio := writeTempAudio(t)
	ctx := context.Background()

	var uploaded []byte
	gomock.InOrder(
		m.server.EXPECT().CreateUploadTicket(ctx, models.UploadTicketRequest{FileName: "memo.wav", ContentType: ciphertextContentType}).
			Return(models.UploadTicket{ObjectKey: "recordings/7/k", URL: "https://s3/put"}, nil),
		m.objects.EXPECT().Put(ctx, "https://s3/put", ciphertextContentType, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, body []byte) error {
				uploaded = body
				return nil
			}),
		m.server.EXPECT().CreateRecording(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.CreateRecordingRequest) (models.Recording, error) {
				assert.Equal(t, "recordings/7/k", req.ObjectKey)
				assert.True(t, req.IsEncrypted)
				require.NotNil(t, req.EncryptionIV)
				require.NotNil(t, req.EncryptionSalt)
				assert.Nil(t, req.Password, "non-recoverable upload must not send the password")

				plain, err := crypto.NewFileCipher().DecryptFile(bytes.NewReader(uploaded), testPassword,
					crypto.FileParams{IV: *req.EncryptionIV, Salt: *req.EncryptionSalt})
				require.NoError(t, err)
				assert.Equal(t, audio, plain)

				return models.Recording{RecordingID: "rec-1", IsEncrypted: true}, nil
			}),
	)

	rec, err := app.Upload(ctx, path, UploadOptions{Password: testPassword})

	require.NoError(t, err)
	assert.Equal(t, "rec-1", rec.RecordingID)
	assert.NotEqual(t, audio, uploaded[:len(audio)], "object must hold ciphertext")

	cached, ok := app.Cache().Get("rec-1")
	assert.True(t, ok)
	assert.Equal(t, testPassword, cached)
}

func TestApp_Upload_RecoverableSendsPassword(t *testing.T) {
	app, m := newTestApp(t, &queuedPrompter{answers: []string{testPassword, testPassword}})
	path, _ := writeTempAudio(t)

	m.server.EXPECT().CreateUploadTicket(gomock.Any(), gomock.Any()).Return(models.UploadTicket{ObjectKey: "k", URL: "u"}, nil)
	m.objects.EXPECT().Put(gomock.Any(), "u", ciphertextContentType, gomock.Any()).Return(nil)
	m.server.EXPECT().CreateRecording(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.CreateRecordingRequest) (models.Recording, error) {
			require.NotNil(t, req.Password)
			assert.Equal(t, testPassword, *req.Password)
			return models.Recording{RecordingID: "rec-2"}, nil
		})

	_, err := app.Upload(context.Background(), path, UploadOptions{Recoverable: true})
	require.NoError(t, err)
}

func TestApp_Upload_Plain(t *testing.T) {
	app, m := newTestApp(t, &queuedPrompter{})
	path, audio := writeTempAudio(t)

	m.server.EXPECT().CreateUploadTicket(gomock.Any(), gomock.Any()).Return(models.UploadTicket{ObjectKey: "k", URL: "u"}, nil)
	m.objects.EXPECT().Put(gomock.Any(), "u", gomock.Any(), audio).Return(nil)
	m.server.EXPECT().CreateRecording(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.CreateRecordingRequest) (models.Recording, error) {
			assert.False(t, req.IsEncrypted)
			assert.Nil(t, req.EncryptionIV)
			return models.Recording{RecordingID: "rec-3"}, nil
		})

	_, err := app.Upload(context.Background(), path, UploadOptions{Plain: true})
	require.NoError(t, err)
	assert.Zero(t, app.Cache().Len())
}

func TestApp_Upload_PasswordMismatch(t *testing.T) {
	app, _ := newTestApp(t, &queuedPrompter{answers: []string{"one", "two"}})
	path, _ := writeTempAudio(t)

	_, err := app.Upload(context.Background(), path, UploadOptions{})

	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestApp_Upload_ServerRejectsParams(t *testing.T) {
	app, m := newTestApp(t, &queuedPrompter{})
	path, _ := writeTempAudio(t)

	m.server.EXPECT().CreateUploadTicket(gomock.Any(), gomock.Any()).Return(models.UploadTicket{ObjectKey: "k", URL: "u"}, nil)
	m.objects.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.server.EXPECT().CreateRecording(gomock.Any(), gomock.Any()).
		Return(models.Recording{}, errors.Join(adapter.ErrBadRequest, errors.New("bad request: invalid encryption parameters")))

	_, err := app.Upload(context.Background(), path, UploadOptions{Password: testPassword})

	assert.Error(t, err)
}

// ── Download ────────────────────────────────────────────────────────────────

func playback(enc crypto.EncryptedFile, password *string) models.PlaybackMaterial {
	return models.PlaybackMaterial{
		RecordingID:    "rec-1",
		URL:            "https://s3/get",
		FileName:       "memo.wav",
		IsEncrypted:    true,
		EncryptionIV:   &enc.Params.IV,
		EncryptionSalt: &enc.Params.Salt,
		Password:       password,
	}
}

func TestApp_Download_ServerPasswordFirst(t *testing.T) {
	prompter := &queuedPrompter{}
	app, m := newTestApp(t, prompter)
	_, audio := writeTempAudio(t)
	enc := encryptFor(t, audio, testPassword)
	app.Cache().Set("rec-1", "stale-cached-password")

	pw := testPassword
	m.server.EXPECT().GetPlaybackMaterial(gomock.Any(), "rec-1").Return(playback(enc, &pw), nil)
	m.objects.EXPECT().Get(gomock.Any(), "https://s3/get").Return(enc.Ciphertext, nil)

	var out bytes.Buffer
	_, err := app.Download(context.Background(), "rec-1", &out)

	require.NoError(t, err)
	assert.Equal(t, audio, out.Bytes())
	assert.Empty(t, prompter.labels, "no prompt when the server supplies the password")
}

func TestApp_Download_CacheBeforePrompt(t *testing.T) {
	prompter := &queuedPrompter{}
	app, m := newTestApp(t, prompter)
	_, audio := writeTempAudio(t)
	enc := encryptFor(t, audio, testPassword)
	app.Cache().Set(GlobalKey, testPassword)

	m.server.EXPECT().GetPlaybackMaterial(gomock.Any(), "rec-1").Return(playback(enc, nil), nil)
	m.objects.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enc.Ciphertext, nil)

	var out bytes.Buffer
	_, err := app.Download(context.Background(), "rec-1", &out)

	require.NoError(t, err)
	assert.Equal(t, audio, out.Bytes())
	assert.Empty(t, prompter.labels)
}

func TestApp_Download_WrongPasswordThenRetry(t *testing.T) {
	prompter := &queuedPrompter{answers: []string{"wrong", testPassword}}
	app, m := newTestApp(t, prompter)
	_, audio := writeTempAudio(t)
	enc := encryptFor(t, audio, testPassword)

	m.server.EXPECT().GetPlaybackMaterial(gomock.Any(), "rec-1").Return(playback(enc, nil), nil).Times(2)
	m.objects.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enc.Ciphertext, nil).Times(2)

	var out bytes.Buffer
	_, err := app.Download(context.Background(), "rec-1", &out)
	require.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	assert.Zero(t, out.Len(), "nothing is written on failure")
	_, cached := app.Cache().Get("rec-1")
	assert.False(t, cached, "a wrong password must not be cached")

	_, err = app.Download(context.Background(), "rec-1", &out)
	require.NoError(t, err)
	assert.Equal(t, audio, out.Bytes())
	assert.Len(t, prompter.labels, 2)
}

func TestApp_Download_WrongSessionPasswordIsForgotten(t *testing.T) {
	app, m := newTestApp(t, &queuedPrompter{})
	_, audio := writeTempAudio(t)
	enc := encryptFor(t, audio, testPassword)
	app.Cache().Set(GlobalKey, "wrong")

	m.server.EXPECT().GetPlaybackMaterial(gomock.Any(), "rec-1").Return(playback(enc, nil), nil)
	m.objects.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enc.Ciphertext, nil)

	_, err := app.Download(context.Background(), "rec-1", &bytes.Buffer{})

	require.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	_, ok := app.Cache().Get(GlobalKey)
	assert.False(t, ok)
}

func TestApp_Download_DecryptErrorNamesSource(t *testing.T) {
	_, audio := writeTempAudio(t)
	enc := encryptFor(t, audio, testPassword)
	wrong := "wrong"

	tests := []struct {
		name          string
		setup         func(app *App)
		serverPw      *string
		answers       []string
		wantSource    PasswordSource
		wantRetryable bool
	}{
		{name: "server password", serverPw: &wrong, wantSource: SourceServer},
		{name: "cached by id", setup: func(app *App) { app.Cache().Set("rec-1", wrong) }, wantSource: SourceCache, wantRetryable: true},
		{name: "session password", setup: func(app *App) { app.Cache().Set(GlobalKey, wrong) }, wantSource: SourceSession, wantRetryable: true},
		{name: "prompted", answers: []string{wrong}, wantSource: SourcePrompt, wantRetryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, m := newTestApp(t, &queuedPrompter{answers: tt.answers})
			if tt.setup != nil {
				tt.setup(app)
			}

			m.server.EXPECT().GetPlaybackMaterial(gomock.Any(), "rec-1").Return(playback(enc, tt.serverPw), nil)
			m.objects.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enc.Ciphertext, nil)

			_, err := app.Download(context.Background(), "rec-1", &bytes.Buffer{})

			require.ErrorIs(t, err, crypto.ErrDecryptionFailed)
			var de *DecryptError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, "rec-1", de.RecordingID)
			assert.Equal(t, tt.wantSource, de.Source)
			assert.Equal(t, tt.wantRetryable, de.Retryable())
		})
	}
}

func TestApp_AskSessionPassword_ReusedAcrossRecordings(t *testing.T) {
	prompter := &queuedPrompter{answers: []string{testPassword}}
	app, m := newTestApp(t, prompter)
	_, audio := writeTempAudio(t)

	require.NoError(t, app.AskSessionPassword())

	for _, id := range []string{"rec-1", "rec-2", "rec-3"} {
		enc := encryptFor(t, audio, testPassword)
		m.server.EXPECT().GetPlaybackMaterial(gomock.Any(), id).Return(playback(enc, nil), nil)
		m.objects.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enc.Ciphertext, nil)

		var out bytes.Buffer
		_, err := app.Download(context.Background(), id, &out)
		require.NoError(t, err, id)
		assert.Equal(t, audio, out.Bytes())
	}

	assert.Equal(t, []string{"Session password: "}, prompter.labels)
}

func TestApp_AskSessionPassword_Empty(t *testing.T) {
	app, _ := newTestApp(t, &queuedPrompter{answers: []string{""}})

	require.ErrorIs(t, app.AskSessionPassword(), ErrEmptyPassword)
	assert.Zero(t, app.Cache().Len())
}

func TestApp_Download_ObjectMissing(t *testing.T) {
	app, m := newTestApp(t, &queuedPrompter{})

	m.server.EXPECT().GetPlaybackMaterial(gomock.Any(), "rec-1").Return(models.PlaybackMaterial{URL: "u"}, nil)
	m.objects.EXPECT().Get(gomock.Any(), "u").Return(nil, errors.Join(adapter.ErrNotFound, errors.New("not found")))

	_, err := app.Download(context.Background(), "rec-1", &bytes.Buffer{})

	assert.ErrorIs(t, err, ErrFileUnavailable)
}

func TestApp_Download_RecordingNotFound(t *testing.T) {
	app, m := newTestApp(t, &queuedPrompter{})

	m.server.EXPECT().GetPlaybackMaterial(gomock.Any(), "nope").Return(models.PlaybackMaterial{}, adapter.ErrNotFound)

	_, err := app.Download(context.Background(), "nope", &bytes.Buffer{})

	assert.ErrorIs(t, err, ErrRecordingNotFound)
}

// ── other operations ────────────────────────────────────────────────────────

func TestApp_Delete_ForgetsPassword(t *testing.T) {
	app, m := newTestApp(t, &queuedPrompter{})
	app.Cache().Set("rec-1", testPassword)

	m.server.EXPECT().DeleteRecording(gomock.Any(), "rec-1").Return(nil)

	require.NoError(t, app.Delete(context.Background(), "rec-1"))
	_, ok := app.Cache().Get("rec-1")
	assert.False(t, ok)
}

func TestApp_RequestTranscription_Unavailable(t *testing.T) {
	app, m := newTestApp(t, &queuedPrompter{})

	m.server.EXPECT().RequestTranscription(gomock.Any(), "rec-1").Return(adapter.ErrServiceUnavailable)

	assert.ErrorIs(t, app.RequestTranscription(context.Background(), "rec-1"), ErrTranscriptionUnavailable)
}

func TestApp_Close_ClearsCache(t *testing.T) {
	app, _ := newTestApp(t, &queuedPrompter{})
	app.Cache().Set(GlobalKey, testPassword)
	app.Cache().Set("rec-1", testPassword)

	app.Close()

	assert.Zero(t, app.Cache().Len())
}
