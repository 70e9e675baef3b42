package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-voice-keeper/internal/adapter"
	"github.com/MKhiriev/go-voice-keeper/internal/crypto"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/models"
)

const ciphertextContentType = "application/octet-stream"

// UploadOptions control how a file is stored.
type UploadOptions struct {
	// Password encrypts the file. When empty the session cache and then the
	// prompter are asked.
	Password string

	// Recoverable hands the password to the server, which keeps it wrapped
	// under its master key.
	Recoverable bool

	// Plain uploads the file without encryption.
	Plain bool
}

// App is one client session against a voice-keeper server.
type App struct {
	server   adapter.ServerAdapter
	objects  adapter.ObjectTransfer
	cipher   crypto.FileCipher
	cache    *SessionPasswordCache
	prompter PasswordPrompter

	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, objects adapter.ObjectTransfer, cipher crypto.FileCipher, prompter PasswordPrompter, logger *logger.Logger) *App {
	return &App{
		server:   server,
		objects:  objects,
		cipher:   cipher,
		cache:    NewSessionPasswordCache(),
		prompter: prompter,
		logger:   logger,
	}
}

// Cache exposes the session password cache.
func (a *App) Cache() *SessionPasswordCache {
	return a.cache
}

// AskSessionPassword prompts once and stores the answer under GlobalKey, so
// every upload and download of the session reuses it without asking again.
func (a *App) AskSessionPassword() error {
	password, err := a.prompter.Prompt("Session password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return ErrEmptyPassword
	}

	a.cache.Set(GlobalKey, password)
	return nil
}

// Close ends the session and wipes cached passwords.
func (a *App) Close() {
	a.cache.Clear()
}

// Upload encrypts the file at path and registers it as a recording.
func (a *App) Upload(ctx context.Context, path string, opts UploadOptions) (models.Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Recording{}, fmt.Errorf("read %s: %w", path, err)
	}

	fileName := filepath.Base(path)
	contentType := detectContentType(fileName, data)

	req := models.CreateRecordingRequest{
		FileName:    fileName,
		ContentType: contentType,
	}
	body, uploadType := data, contentType

	var password string
	if !opts.Plain {
		if password, err = a.uploadPassword(opts.Password); err != nil {
			return models.Recording{}, err
		}

		encrypted, err := a.cipher.EncryptFile(bytes.NewReader(data), password)
		if err != nil {
			return models.Recording{}, fmt.Errorf("encrypt %s: %w", fileName, err)
		}

		body, uploadType = encrypted.Ciphertext, ciphertextContentType
		req.IsEncrypted = true
		req.EncryptionIV = &encrypted.Params.IV
		req.EncryptionSalt = &encrypted.Params.Salt
		if opts.Recoverable {
			req.Password = &password
		}
	}

	ticket, err := a.server.CreateUploadTicket(ctx, models.UploadTicketRequest{FileName: fileName, ContentType: uploadType})
	if err != nil {
		return models.Recording{}, mapAdapterError(err)
	}

	if err = a.objects.Put(ctx, ticket.URL, uploadType, body); err != nil {
		return models.Recording{}, fmt.Errorf("upload object: %w", err)
	}

	req.ObjectKey = ticket.ObjectKey
	recording, err := a.server.CreateRecording(ctx, req)
	if err != nil {
		return models.Recording{}, mapAdapterError(err)
	}

	a.cache.Set(recording.RecordingID, password)
	a.logger.Info().
		Str("recording_id", recording.RecordingID).
		Bool("encrypted", recording.IsEncrypted).
		Bool("recoverable", opts.Recoverable).
		Msg("recording uploaded")

	return recording, nil
}

// Download fetches a recording and writes its plaintext to out.
//
// The password is taken from the server when it holds one, then from the
// session cache, then from the prompter. A wrong password yields a
// [*DecryptError] wrapping [crypto.ErrDecryptionFailed] and is dropped from
// the cache, so calling Download again prompts afresh.
func (a *App) Download(ctx context.Context, recordingID string, out io.Writer) (models.PlaybackMaterial, error) {
	material, err := a.server.GetPlaybackMaterial(ctx, recordingID)
	if err != nil {
		return models.PlaybackMaterial{}, mapAdapterError(err)
	}

	data, err := a.objects.Get(ctx, material.URL)
	if errors.Is(err, adapter.ErrNotFound) {
		return material, ErrFileUnavailable
	}
	if err != nil {
		return material, fmt.Errorf("download object: %w", err)
	}

	if material.IsEncrypted {
		if material.EncryptionIV == nil || material.EncryptionSalt == nil {
			return material, crypto.ErrValidation
		}

		password, source, err := a.downloadPassword(recordingID, material)
		if err != nil {
			return material, err
		}

		params := crypto.FileParams{IV: *material.EncryptionIV, Salt: *material.EncryptionSalt}
		data, err = a.cipher.DecryptFile(bytes.NewReader(data), password, params)
		if err != nil {
			if errors.Is(err, crypto.ErrDecryptionFailed) {
				a.cache.Forget(recordingID)
				if source == SourceSession {
					a.cache.Forget(GlobalKey)
				}
				a.logger.Warn().Str("recording_id", recordingID).Str("password_source", string(source)).Msg("decryption failed")
				return material, &DecryptError{RecordingID: recordingID, Source: source, Err: err}
			}
			return material, err
		}
		a.cache.Set(recordingID, password)
	}

	if _, err = out.Write(data); err != nil {
		return material, fmt.Errorf("write audio: %w", err)
	}

	return material, nil
}

func (a *App) RequestTranscription(ctx context.Context, recordingID string) error {
	return mapAdapterError(a.server.RequestTranscription(ctx, recordingID))
}

func (a *App) Transcript(ctx context.Context, recordingID string) (models.TranscriptResponse, error) {
	resp, err := a.server.GetTranscript(ctx, recordingID)
	return resp, mapAdapterError(err)
}

func (a *App) Delete(ctx context.Context, recordingID string) error {
	if err := a.server.DeleteRecording(ctx, recordingID); err != nil {
		return mapAdapterError(err)
	}
	a.cache.Forget(recordingID)
	return nil
}

func (a *App) uploadPassword(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if password, ok := a.cache.Get(GlobalKey); ok {
		return password, nil
	}

	password, err := a.prompter.Prompt("Password: ")
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", ErrEmptyPassword
	}

	confirm, err := a.prompter.Prompt("Repeat password: ")
	if err != nil {
		return "", err
	}
	if confirm != password {
		return "", ErrPasswordMismatch
	}

	return password, nil
}

func (a *App) downloadPassword(recordingID string, material models.PlaybackMaterial) (password string, source PasswordSource, err error) {
	if material.Password != nil && *material.Password != "" {
		return *material.Password, SourceServer, nil
	}
	if password, ok := a.cache.Get(recordingID); ok {
		return password, SourceCache, nil
	}
	if password, ok := a.cache.Get(GlobalKey); ok {
		return password, SourceSession, nil
	}

	password, err = a.prompter.Prompt(fmt.Sprintf("Password for %s: ", material.FileName))
	if err != nil {
		return "", "", err
	}
	if password == "" {
		return "", "", ErrEmptyPassword
	}
	return password, SourcePrompt, nil
}

// detectContentType prefers the file extension and falls back to sniffing.
func detectContentType(fileName string, data []byte) string {
	if byExt := mime.TypeByExtension(filepath.Ext(fileName)); byExt != "" {
		return byExt
	}
	return http.DetectContentType(data)
}
