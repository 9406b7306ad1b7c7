package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-api/internal/app"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/service"
	"github.com/MKhiriev/go-auth-api/internal/store"
	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/internal/validators"
	"github.com/MKhiriev/go-auth-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrUnauthenticated:     http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusUnprocessableEntity,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrTokenNotFound:      http.StatusUnauthorized,
	store.ErrTokenAlreadyExists: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

var statusMessageMap = map[int]string{
	http.StatusBadRequest:          app.MsgInvalidDataProvided,
	http.StatusUnauthorized:        app.MsgUnauthenticated,
	http.StatusUnprocessableEntity: app.MsgInvalidGivenData,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers the request with the JSON body matching err and logs
// server-side failures once.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErrs validators.ValidationErrors
	if errors.As(err, &validationErrs) {
		log.Debug().Err(err).Msg("request data is invalid")
		utils.WriteJSON(w, models.ValidationErrorResponse{
			Message: app.MsgInvalidGivenData,
			Errors:  validationErrs,
		}, http.StatusUnprocessableEntity)
		return
	}

	if errors.Is(err, service.ErrInvalidCredentials) {
		log.Debug().Err(err).Msg("credentials not match")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgCredentialsNotMatch}, http.StatusUnauthorized)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	message, ok := statusMessageMap[status]
	if !ok {
		message = http.StatusText(status)
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
