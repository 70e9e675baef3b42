// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/go-voice-keeper/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's goroutines and returns immediately. They stop when
// ctx is cancelled; Wait blocks until all of them have returned.
type Worker interface {
	Run(ctx context.Context)
	Wait()
}

// TranscriptionProcessor executes a single transcription job. Jobs left in
// the queue at shutdown are handed to AbandonTranscription instead.
type TranscriptionProcessor interface {
	Transcribe(ctx context.Context, job models.TranscriptionJob) error
	AbandonTranscription(ctx context.Context, job models.TranscriptionJob)
}
