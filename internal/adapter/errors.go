package adapter

import "errors"

// Errors mapped from HTTP status codes returned by remote services.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrTranscriberNotConfigured is returned by the transcriber when no
	// provider URL is configured.
	ErrTranscriberNotConfigured = errors.New("transcription provider is not configured")

	// ErrMasterKeyUnavailable is returned when the master key secret exists
	// but holds no value.
	ErrMasterKeyUnavailable = errors.New("master key secret is empty")
)
