package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"igrejaconnect/internal/domain"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrAuthRequired, http.StatusUnauthorized},
		{domain.ErrWrongCredentials, http.StatusUnauthorized},
		{domain.ErrNotAdmin, http.StatusForbidden},
		{domain.ErrDisabled, http.StatusForbidden},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrDuplicateEmail, http.StatusConflict},
		{domain.ErrEventClosed, http.StatusConflict},
		{domain.ErrWeakPassword, http.StatusBadRequest},
		{domain.ErrInvalidEmail, http.StatusBadRequest},
		{domain.ErrRateLimited, http.StatusTooManyRequests},
		{errors.New("pgx: conexão recusada"), http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		if got := statusFor(tc.err); got != tc.want {
			t.Fatalf("statusFor(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}

	// Wrapped taxonomy errors keep their status.
	wrapped := fmt.Errorf("fetch profile: %w", domain.ErrNotFound)
	if got := statusFor(wrapped); got != http.StatusNotFound {
		t.Fatalf("wrapped: got %d", got)
	}
}

func TestWriteDomainError_PartialWriteAsksForRetry(t *testing.T) {
	rec := httptest.NewRecorder()
	writeDomainError(rec, &domain.PartialWriteError{
		Applied: "event",
		Failed:  "user",
		Err:     errors.New("conexão recusada"),
	})

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("got status %d, want 502", rec.Code)
	}
	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Retry {
		t.Fatal("partial write response must set retry")
	}
}

func TestMessageFor_HidesInternalErrors(t *testing.T) {
	if got := messageFor(errors.New("pgx: detalhe interno da conexão")); got != domain.ErrRemoteUnavailable.Error() {
		t.Fatalf("internal detail leaked: %q", got)
	}
	if got := messageFor(fmt.Errorf("x: %w", domain.ErrEventClosed)); got != domain.ErrEventClosed.Error() {
		t.Fatalf("got %q", got)
	}
}
