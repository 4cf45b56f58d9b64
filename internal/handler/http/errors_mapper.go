package http

import (
	"errors"
	"net/http"

	"github.com/beatvault/beatvault/internal/service"
	"github.com/beatvault/beatvault/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrAccountLocked:      http.StatusForbidden,
	service.ErrUsernameTaken:      http.StatusConflict,
	service.ErrWeakPassword:       http.StatusBadRequest,
	service.ErrInvalidRole:        http.StatusBadRequest,
	service.ErrUnauthenticated:    http.StatusUnauthorized,
	service.ErrForbidden:          http.StatusForbidden,
	service.ErrTrackNotFound:      http.StatusNotFound,
	service.ErrHashingFailure:     http.StatusInternalServerError,
	service.ErrInvalidTrackData:   http.StatusBadRequest,

	store.ErrUsernameTaken:     http.StatusConflict,
	store.ErrNoAccountWasFound: http.StatusNotFound,
	store.ErrNoTrackWasFound:   http.StatusNotFound,
	store.ErrStoreUnavailable:  http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err onto its HTTP status. Internal and unavailability
// errors are masked with the generic status text so no storage detail leaks
// to clients; ErrStoreUnavailable in particular wraps driver error text.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
