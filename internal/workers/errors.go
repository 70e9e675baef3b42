package workers

import "errors"

var (
	// ErrQueueFull is returned by Enqueue when the job buffer is full.
	ErrQueueFull = errors.New("transcription queue is full")

	// ErrQueueClosed is returned by Enqueue after the queue was closed.
	ErrQueueClosed = errors.New("transcription queue is closed")
)
