package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/utils"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// The value of the "Authorization" header is handed to
// [service.AuthService.CurrentUser] even when it is absent or malformed (as an
// empty string), so every rejected request goes through the same lookup. On
// success the resolved user is stored in the request context under
// [utils.UserCtxKey]; otherwise the request is answered with 401 and
// {"message":"Unauthenticated."}.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		token, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("bearer token is not provided")
		}

		user, err := h.services.AuthService.CurrentUser(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form:
//
//	Authorization: Bearer 3f9a0c...
//
// The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	return strings.TrimSpace(tokenString), nil
}
