// Package http implements the HTTP transport layer of the application.
//
// It exposes the recording and chat routes of the voice-keeper API. Bearer
// authentication, request tracing, access logging and response compression
// are handled here before requests are delegated to the service layer.
// Service errors are translated to status codes in errors_mapper.go; a
// failed decryption is always reported with one generic message.
package http
