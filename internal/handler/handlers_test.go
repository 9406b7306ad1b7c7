package handler

import (
	"testing"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer, so nil is safe for construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_NoAddress verifies that an empty address is rejected with
// errNoHandlersAreCreated.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
