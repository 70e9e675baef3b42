package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/MKhiriev/go-voice-keeper/models"
	"github.com/rs/zerolog"
)

// TranscriptionQueue is a bounded, non-blocking job buffer between the
// request path and the transcription workers.
type TranscriptionQueue struct {
	mu     sync.RWMutex
	jobs   chan models.TranscriptionJob
	closed bool
}

// NewTranscriptionQueue creates a queue holding at most size pending jobs.
func NewTranscriptionQueue(size int) *TranscriptionQueue {
	return &TranscriptionQueue{jobs: make(chan models.TranscriptionJob, size)}
}

// Enqueue adds job without blocking. It returns ErrQueueFull when the buffer
// is full and ErrQueueClosed after Close.
func (q *TranscriptionQueue) Enqueue(ctx context.Context, job models.TranscriptionJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

// Close stops accepting jobs. Workers drain what is already buffered.
func (q *TranscriptionQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Len reports the number of buffered jobs.
func (q *TranscriptionQueue) Len() int {
	return len(q.jobs)
}

// TranscriptionWorker is a fixed-size pool of goroutines consuming the
// transcription queue.
type TranscriptionWorker struct {
	queue       *TranscriptionQueue
	processor   TranscriptionProcessor
	concurrency int

	wg     sync.WaitGroup
	logger *logger.Logger
}

func NewTranscriptionWorker(queue *TranscriptionQueue, processor TranscriptionProcessor, concurrency int, logger *logger.Logger) *TranscriptionWorker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &TranscriptionWorker{
		queue:       queue,
		processor:   processor,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Run starts the pool. Each goroutine exits when ctx is cancelled or the
// queue is closed and drained.
func (w *TranscriptionWorker) Run(ctx context.Context) {
	w.logger.Info().Int("concurrency", w.concurrency).Msg("starting transcription workers")

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.loop(ctx, i)
	}
}

func (w *TranscriptionWorker) Wait() {
	w.wg.Wait()
}

func (w *TranscriptionWorker) loop(ctx context.Context, id int) {
	defer w.wg.Done()
	log := w.logger.With().Int("worker", id).Logger()

	for {
		select {
		case <-ctx.Done():
			w.abandonBuffered(ctx, log)
			log.Debug().Msg("transcription worker stopped")
			return
		case job, ok := <-w.queue.jobs:
			if !ok {
				log.Debug().Msg("transcription queue closed")
				return
			}

			jobCtx := log.With().Str("recording_id", job.RecordingID).Logger().WithContext(ctx)
			if ctx.Err() != nil {
				w.processor.AbandonTranscription(jobCtx, job)
				continue
			}
			if err := w.processor.Transcribe(jobCtx, job); err != nil {
				log.Err(err).Str("recording_id", job.RecordingID).Msg("transcription job failed")
				continue
			}
			log.Info().Str("recording_id", job.RecordingID).Msg("transcription job done")
		}
	}
}

// abandonBuffered hands every job still in the queue to the processor as
// abandoned, so none is left pending after shutdown.
func (w *TranscriptionWorker) abandonBuffered(ctx context.Context, log zerolog.Logger) {
	for {
		select {
		case job, ok := <-w.queue.jobs:
			if !ok {
				return
			}
			jobCtx := log.With().Str("recording_id", job.RecordingID).Logger().WithContext(ctx)
			w.processor.AbandonTranscription(jobCtx, job)
		default:
			return
		}
	}
}
