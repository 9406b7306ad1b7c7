package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantKept  bool
		wantValid bool
	}{
		{name: "client trace id is kept", header: "abc-123", wantKept: true},
		{name: "missing trace id is generated", header: ""},
		{name: "too long trace id is replaced", header: strings.Repeat("a", maxTraceIDLength+1)},
		{name: "trace id with spaces is replaced", header: "abc 123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rec, req)

			traceID := rec.Header().Get(traceIDHeader)
			if tt.wantKept {
				assert.Equal(t, tt.header, traceID)
			} else {
				_, err := uuid.Parse(traceID)
				assert.NoError(t, err, "expected generated uuid, got %q", traceID)
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, traceID, entry["trace_id"])
		})
	}
}

func TestWithTraceID_DoesNotLeakIntoParentLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := &logger.Logger{Logger: zerolog.New(&buf)}
	h := &Handler{logger: parent}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "req-1")
	h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(httptest.NewRecorder(), req)

	parent.Info().Msg("after")
	assert.NotContains(t, buf.String(), "req-1")
}

func TestIsValidTraceID(t *testing.T) {
	assert.True(t, isValidTraceID("0af7651916cd43dd8448eb211c80319c"))
	assert.False(t, isValidTraceID(""))
	assert.False(t, isValidTraceID("tab\there"))
	assert.False(t, isValidTraceID("юникод"))
}
