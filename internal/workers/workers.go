package workers

import (
	"context"

	"github.com/MKhiriev/go-voice-keeper/internal/config"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds every background worker of the server.
func NewWorkers(queue *TranscriptionQueue, processor TranscriptionProcessor, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewTranscriptionWorker(queue, processor, cfg.TranscriptionConcurrency, logger),
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Wait blocks until every worker has stopped.
func (w *Workers) Wait() {
	for _, worker := range w.workers {
		worker.Wait()
	}
}
