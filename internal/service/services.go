package service

import (
	"fmt"

	"github.com/MKhiriev/go-voice-keeper/internal/adapter"
	"github.com/MKhiriev/go-voice-keeper/internal/config"
	"github.com/MKhiriev/go-voice-keeper/internal/crypto"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/internal/store"
	"github.com/MKhiriev/go-voice-keeper/internal/utils"
)

type Services struct {
	AuthService      AuthService
	AppInfoService   AppInfoService
	RecordingService RecordingService
	ChatService      ChatService
}

// Dependencies are the collaborators the services are built from.
type Dependencies struct {
	Storages    *store.Storages
	Envelope    crypto.PasswordEnvelope
	Decryptor   crypto.FileDecryptor
	Transcriber adapter.Transcriber
	Queue       TranscriptionQueue
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	content := crypto.NewContentEnvelope(deps.Envelope, logger)
	ids := utils.NewUUIDGenerator()

	recordings := &recordingService{
		recordings:     deps.Storages.RecordingRepository,
		objects:        deps.Storages.ObjectStorage,
		envelope:       deps.Envelope,
		content:        content,
		decryptor:      deps.Decryptor,
		transcriber:    deps.Transcriber,
		queue:          deps.Queue,
		ids:            ids,
		presignTTL:     cfg.Storage.Objects.PresignTTL,
		serverSideOnly: cfg.App.ServerSideDecryptionOnly,
		logger:         logger,
	}

	return &Services{
		AuthService:      NewAuthService(cfg.App, logger),
		AppInfoService:   appInfo,
		RecordingService: NewRecordingValidationService().Wrap(recordings),
		ChatService: &chatService{
			chats:   deps.Storages.ChatRepository,
			content: content,
			ids:     ids,
			logger:  logger,
		},
	}, nil
}
