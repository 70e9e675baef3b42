// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the voice-keeper command line client runtime.
//
// It encrypts audio locally, moves ciphertext through presigned object
// storage URLs, and resolves file passwords from the server, an in-memory
// session cache, or an interactive prompt.
package client
