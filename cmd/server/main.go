package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-voice-keeper/internal/adapter"
	"github.com/MKhiriev/go-voice-keeper/internal/config"
	"github.com/MKhiriev/go-voice-keeper/internal/crypto"
	"github.com/MKhiriev/go-voice-keeper/internal/handler"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/internal/server"
	"github.com/MKhiriev/go-voice-keeper/internal/service"
	"github.com/MKhiriev/go-voice-keeper/internal/store"
	"github.com/MKhiriev/go-voice-keeper/internal/workers"
	"github.com/MKhiriev/go-voice-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Fprint(os.Stdout)

	log := logger.NewLogger("voice-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("bucket", cfg.Storage.Objects.Bucket).
		Bool("server_side_decryption_only", cfg.App.ServerSideDecryptionOnly).
		Msg("received configs")

	ctx := context.Background()

	var secrets adapter.SecretsClient
	if cfg.App.MasterKeySecretID != "" {
		if secrets, err = adapter.NewAWSSecretsClient(ctx); err != nil {
			log.Fatal().Err(err).Msg("error creating secrets client")
		}
	}
	masterKey, err := adapter.NewMasterKeyProvider(secrets, log).MasterKey(ctx, cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading master key")
	}

	envelope, err := crypto.NewPasswordEnvelope(masterKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating password envelope")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	transcriber, err := adapter.NewHTTPTranscriber(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating transcriber")
	}

	queue := workers.NewTranscriptionQueue(cfg.Workers.TranscriptionQueueSize)
	defer queue.Close()

	services, err := service.NewServices(service.Dependencies{
		Storages:    storages,
		Envelope:    envelope,
		Decryptor:   crypto.NewFileDecryptor(),
		Transcriber: transcriber,
		Queue:       queue,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs := workers.NewWorkers(queue, services.RecordingService, cfg.Workers, log)

	srv, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
