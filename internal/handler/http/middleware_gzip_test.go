// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzipString(t *testing.T, data []byte) string {
	t.Helper()

	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echoHandler answers with the request body prefixed by "echo: ".
var echoHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(append([]byte("echo: "), body...))
})

func TestGZip(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		gzipRequest    bool
		requestBody    string
		wantGzipped    bool
		wantBody       string
	}{
		{
			name:           "compress response when client accepts gzip",
			acceptEncoding: "gzip",
			requestBody:    `{"a":1}`,
			wantGzipped:    true,
			wantBody:       `echo: {"a":1}`,
		},
		{
			name:           "accept-encoding list containing gzip",
			acceptEncoding: "deflate, gzip;q=1.0, br",
			requestBody:    "x",
			wantGzipped:    true,
			wantBody:       "echo: x",
		},
		{
			name:        "no compression without accept-encoding",
			requestBody: "x",
			wantBody:    "echo: x",
		},
		{
			name:        "decompress gzipped request body",
			gzipRequest: true,
			requestBody: `{"email":"ana@x.com"}`,
			wantBody:    `echo: {"email":"ana@x.com"}`,
		},
		{
			name:           "decompress request and compress response",
			acceptEncoding: "gzip",
			gzipRequest:    true,
			requestBody:    "payload",
			wantGzipped:    true,
			wantBody:       "echo: payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := []byte(tt.requestBody)
			if tt.gzipRequest {
				body = gzipBytes(t, body)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.gzipRequest {
				req.Header.Set("Content-Encoding", "gzip")
			}
			rec := httptest.NewRecorder()

			withGZip(echoHandler).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzipString(t, rec.Body.Bytes()))
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	called := false
	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGZip_NoContentIsNotCompressed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGZip_EmptyHandlerWritesNoTrailer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Zero(t, rec.Body.Len())
}
