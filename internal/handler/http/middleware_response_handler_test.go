// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.Status())
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = w.Write([]byte(" world"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.Status())
	assert.Equal(t, 11, w.size)
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_StatusWithoutWrites(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Equal(t, http.StatusOK, w.Status())
	assert.Zero(t, w.size)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	assert.Same(t, rec, w.Unwrap())
}
