package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/crypto"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/service"
	"github.com/MKhiriev/go-auth-api/internal/store"
	"github.com/MKhiriev/go-auth-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestInit_RegistersRoutes(t *testing.T) {
	h := newTestHandler(t)
	router := h.Init()

	want := map[string][]string{
		"/api/version":       {http.MethodGet},
		"/api/auth/register": {http.MethodPost},
		"/api/auth/login":    {http.MethodPost},
		"/api/me":            {http.MethodGet},
		"/api/user":          {http.MethodGet},
		"/api/auth/logout":   {http.MethodPost},
	}

	for path, methods := range want {
		for _, method := range methods {
			assert.True(t, routeHandlesMethod(router.Routes(), path, method), "%s %s", method, path)
		}
	}
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/me"},
		{http.MethodGet, "/api/user"},
		{http.MethodPost, "/api/auth/logout"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			h := newTestHandler(t)
			h.authService.EXPECT().CurrentUser(gomock.Any(), "").Return(models.User{}, service.ErrUnauthenticated)

			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Unauthenticated."}`, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/register", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_Version(t *testing.T) {
	h := newTestHandler(t)
	h.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test-version")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
}

// ─────────────────────────────────────────────
// End-to-end through the real SQLite store
// ─────────────────────────────────────────────

func newSQLiteRouter(t *testing.T) http.Handler {
	t.Helper()

	ctx := context.Background()
	log := logger.Nop()

	cfg := &config.StructuredConfig{
		App: config.App{
			PasswordHasher: crypto.AlgorithmBcrypt,
			BcryptCost:     bcrypt.MinCost,
			TokenName:      "API Token",
			Version:        "test",
		},
		Storage: config.Storage{
			DB: config.DB{Driver: config.DriverSQLite, DSN: "file::memory:"},
		},
		Server: config.Server{HTTPAddress: ":0", RequestTimeout: 5 * time.Second},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := service.NewServices(storages, cfg, models.NewAppBuildInfo("", "", ""), log)
	require.NoError(t, err)

	return NewHandler(services, cfg.Server, log).Init()
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), "body: %s", rec.Body.String())
	}
	return rec, decoded
}

func TestEndToEnd_TokenLifecycle(t *testing.T) {
	router := newSQLiteRouter(t)

	register := models.RegisterRequest{
		Name:                 "Ana",
		Email:                "ana@x.com",
		Password:             "secret1",
		PasswordConfirmation: "secret1",
	}

	// register
	rec, body := doJSON(t, router, http.MethodPost, "/api/auth/register", "", register)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := body["data"].(map[string]any)
	user := data["user"].(map[string]any)
	registerToken := data["token"].(string)
	assert.Equal(t, "ana@x.com", user["email"])
	assert.NotEmpty(t, registerToken)
	assert.NotContains(t, rec.Body.String(), "secret1")

	// me with the registration token
	rec, me := doJSON(t, router, http.MethodGet, "/api/me", registerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user["id"], me["id"])

	// duplicate registration, different case
	dup := register
	dup.Email = "ANA@x.com"
	rec, body = doJSON(t, router, http.MethodPost, "/api/auth/register", "", dup)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "The given data was invalid.", body["message"])
	assert.Contains(t, body["errors"], "email")

	// wrong password and unknown email look the same
	recWrong, wrong := doJSON(t, router, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Email: "ana@x.com", Password: "nope123"})
	recUnknown, unknown := doJSON(t, router, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Email: "bob@x.com", Password: "nope123"})
	assert.Equal(t, http.StatusUnauthorized, recWrong.Code)
	assert.Equal(t, recWrong.Code, recUnknown.Code)
	assert.Equal(t, wrong, unknown)

	// two logins give two distinct tokens
	rec, login1 := doJSON(t, router, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Email: "ana@x.com", Password: "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	_, login2 := doJSON(t, router, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Email: "ana@x.com", Password: "secret1"})
	token1, token2 := login1["token"].(string), login2["token"].(string)
	assert.NotEqual(t, token1, token2)

	rec, _ = doJSON(t, router, http.MethodGet, "/api/user", token2, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// logout revokes every token of the user
	rec, body = doJSON(t, router, http.MethodPost, "/api/auth/logout", token1, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Token removed", body["message"])

	for _, token := range []string{registerToken, token1, token2} {
		rec, body = doJSON(t, router, http.MethodGet, "/api/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Unauthenticated.", body["message"])
	}
}

func TestEndToEnd_InvalidInput(t *testing.T) {
	router := newSQLiteRouter(t)

	rec, body := doJSON(t, router, http.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Name:                 "Ana",
		Email:                "not-an-email",
		Password:             "123",
		PasswordConfirmation: "456",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{broken"))
	raw := httptest.NewRecorder()
	router.ServeHTTP(raw, req)
	assert.Equal(t, http.StatusBadRequest, raw.Code)
}
