// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []int
		wantStatus int
	}{
		{"single call", []int{http.StatusAccepted}, http.StatusAccepted},
		{"first of two wins", []int{http.StatusUnprocessableEntity, http.StatusOK}, http.StatusUnprocessableEntity},
		{"first of three wins", []int{http.StatusConflict, http.StatusNotFound, http.StatusOK}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			rw := &responseWriter{ResponseWriter: rr}

			for _, s := range tt.statuses {
				rw.WriteHeader(s)
			}

			assert.Equal(t, tt.wantStatus, rw.status)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.True(t, rw.wroteHeader)
		})
	}
}

func TestResponseWriter_WriteImpliesOK(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rr}

	n, err := rw.Write([]byte(`{"status":"pending"}`))

	assert.NoError(t, err)
	assert.Equal(t, 20, n)
	assert.Equal(t, http.StatusOK, rw.status)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestResponseWriter_SizeAccumulates(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rr}

	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write([]byte("RIFF"))
	_, _ = rw.Write([]byte("WAVEfmt "))

	assert.Equal(t, 12, rw.size)
	assert.Equal(t, "RIFFWAVEfmt ", rr.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, rw.Unwrap())
	assert.NoError(t, http.NewResponseController(rw).Flush())
	assert.True(t, rr.Flushed)
}

func TestResponseWriter_NoContent(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rr}

	rw.WriteHeader(http.StatusNoContent)

	assert.Equal(t, 0, rw.size)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
