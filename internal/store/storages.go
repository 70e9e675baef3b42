package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-voice-keeper/internal/config"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
)

// Storages aggregates every persistence component the services depend on.
type Storages struct {
	RecordingRepository RecordingRepository
	ChatRepository      ChatRepository
	ObjectStorage       ObjectStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and opens the
// recordings bucket.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	objects, err := NewS3ObjectStorage(ctx, cfg.Objects, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating object storage: %w", err)
	}

	return &Storages{
		RecordingRepository: NewRecordingRepository(db, log),
		ChatRepository:      NewChatRepository(db, log),
		ObjectStorage:       objects,
		db:                  db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
