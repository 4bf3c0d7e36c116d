package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"igrejaconnect/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
	Retry bool   `json:"retry,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDomainError(w http.ResponseWriter, err error) {
	var partial *domain.PartialWriteError
	if errors.As(err, &partial) {
		// One of the two toggle writes landed; the client retries to converge.
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: partial.Error(), Retry: true})
		return
	}
	writeJSON(w, statusFor(err), errorResponse{Error: messageFor(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrAuthRequired), errors.Is(err, domain.ErrWrongCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotAdmin), errors.Is(err, domain.ErrDisabled):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateEmail), errors.Is(err, domain.ErrEventClosed):
		return http.StatusConflict
	case errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusServiceUnavailable
	}
}

// messageFor keeps taxonomy messages and hides everything else behind the
// generic unavailable error.
func messageFor(err error) string {
	for _, known := range []error{
		domain.ErrAuthRequired, domain.ErrNotFound, domain.ErrDuplicateEmail,
		domain.ErrWrongCredentials, domain.ErrWeakPassword, domain.ErrInvalidEmail,
		domain.ErrDisabled, domain.ErrRateLimited, domain.ErrEventClosed,
		domain.ErrNotAdmin, domain.ErrMissingFields, domain.ErrInvalidCategory,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return domain.ErrRemoteUnavailable.Error()
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
