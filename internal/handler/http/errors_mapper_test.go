package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beatfluencer/beatfluencer-api/internal/service"
	"github.com/beatfluencer/beatfluencer-api/internal/store"
	"github.com/beatfluencer/beatfluencer-api/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"validation keeps cause", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmail), http.StatusBadRequest, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmail).Error()},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Incorrect email or password"},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "Could not validate credentials"},
		{"taken user email", service.ErrEmailAlreadyRegistered, http.StatusBadRequest, "Email already registered"},
		{"taken influencer email", service.ErrInfluencerEmailExists, http.StatusBadRequest, "Email already exists"},
		{"unknown influencer", service.ErrInfluencerNotFound, http.StatusNotFound, "Influencer not found"},
		{"unknown file", service.ErrFileNotFound, http.StatusNotFound, "File not found"},
		{"wrapped store outage", fmt.Errorf("listing brands failed: %w", store.ErrStoreUnavailable), http.StatusServiceUnavailable, "service unavailable"},
		{"query failure hidden", fmt.Errorf("x: %w", store.ErrExecutingQuery), http.StatusInternalServerError, "internal server error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantDetail, detail)
		})
	}
}

func TestWriteError_SetsAuthenticateHeaderOnlyFor401(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), service.ErrInvalidCredentials)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))

	rr = httptest.NewRecorder()
	writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), service.ErrInfluencerNotFound)
	assert.Empty(t, rr.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}
