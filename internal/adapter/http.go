package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/models"
)

type httpAuthAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAuthAPI constructs the HTTP/REST implementation of [AuthAPI].
// The base URL is taken from cfg.HTTPAddress; a bare host:port gets the
// http scheme.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPAuthAPI(cfg config.ClientAdapter, logger *logger.Logger) (AuthAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAuthAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAuthAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAuthAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs req to /api/auth/register and keeps the issued token.
func (h *httpAuthAPI) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterData, error) {
	var result models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/register")
	if err != nil {
		return models.RegisterData{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterData{}, err
	}

	h.SetToken(result.Data.Token)
	h.logger.Debug().Int64("id", result.Data.User.UserID).Msg("registered")

	return result.Data, nil
}

// Login POSTs req to /api/auth/login and keeps the issued token.
func (h *httpAuthAPI) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(result.Token)
	return result.Token, nil
}

func (h *httpAuthAPI) Me(ctx context.Context) (models.User, error) {
	token := h.Token()
	if token == "" {
		return models.User{}, ErrNoToken
	}

	var user models.User

	resp, err := h.client.WithToken(token).
		SetContext(ctx).
		SetResult(&user).
		Get("/api/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpAuthAPI) Logout(ctx context.Context) error {
	token := h.Token()
	if token == "" {
		return ErrNoToken
	}

	resp, err := h.client.WithToken(token).
		SetContext(ctx).
		Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpAuthAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
