// Package server wires and runs the voice-keeper HTTP server.
//
// It owns the server lifecycle: startup, signal handling, and graceful
// shutdown of the HTTP listener together with the background transcription
// workers.
package server
