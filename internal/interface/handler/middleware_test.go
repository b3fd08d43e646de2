package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/internal/domain/repository"
	"recharge-travels-service/internal/usecase"
	"recharge-travels-service/pkg/auth"
	"recharge-travels-service/pkg/logger"
	"recharge-travels-service/pkg/metrics"
	"recharge-travels-service/pkg/policy"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", &usecase.ValidationError{Fields: map[string]string{"email": "Email is required"}}, http.StatusUnprocessableEntity, "validation_failed"},
		{"not found", fmt.Errorf("owner x: %w", repository.ErrNotFound), http.StatusNotFound, "not_found"},
		{"transition", fmt.Errorf("%w: nope", usecase.ErrInvalidTransition), http.StatusConflict, "invalid_transition"},
		{"state", usecase.ErrInvalidState, http.StatusConflict, "invalid_state"},
		{"reason", usecase.ErrReasonRequired, http.StatusUnprocessableEntity, "reason_required"},
		{"note", usecase.ErrNoteRequired, http.StatusUnprocessableEntity, "note_required"},
		{"status", usecase.ErrInvalidStatus, http.StatusUnprocessableEntity, "invalid_status"},
		{"folder", usecase.ErrInvalidFolder, http.StatusUnprocessableEntity, "invalid_folder"},
		{"submission", usecase.ErrSubmissionFailed, http.StatusBadGateway, "submission_failed"},
		{"other", errors.New("mongo down"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := classify(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestClassify_ValidationKeepsFields(t *testing.T) {
	_, body := classify(&usecase.ValidationError{Fields: map[string]string{"email": "Email is required"}})
	assert.Equal(t, "Email is required", body.Fields["email"])
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestLogger_ObservesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetricsWithRegistry("test", reg)

	r := chi.NewRouter()
	r.Use(RequestLogger(logger.NewNop(), m))
	r.Get("/v1/tours/{tourId}/config", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tours/sigiriya/config", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)

	families, err := reg.Gather()
	require.NoError(t, err)
	labels := map[string]string{}
	for _, mf := range families {
		if mf.GetName() != "test_http_request_duration_seconds" {
			continue
		}
		require.Len(t, mf.GetMetric(), 1)
		for _, lp := range mf.GetMetric()[0].GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
	}
	assert.Equal(t, "/v1/tours/{tourId}/config", labels["route"])
	assert.Equal(t, "418", labels["status"])
}

type authFixture struct {
	verifier *auth.Verifier
	handler  http.Handler
	seen     *entity.User
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	authz, err := policy.NewAdminPolicy(context.Background())
	require.NoError(t, err)

	f := &authFixture{verifier: auth.NewVerifier("test-secret")}
	f.handler = RequireAdmin(f.verifier, authz, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.seen = UserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))
	return f
}

func (f *authFixture) token(t *testing.T, role string) string {
	t.Helper()
	tok, err := f.verifier.Issue(entity.User{ID: "u-1", Email: "ops@rechargetravels.com", Role: role}, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		method string
		status int
	}{
		{"no token", "", http.MethodGet, http.StatusUnauthorized},
		{"customer", entity.RoleCustomer, http.MethodGet, http.StatusForbidden},
		{"staff read", "staff", http.MethodGet, http.StatusNoContent},
		{"staff write", "staff", http.MethodPost, http.StatusForbidden},
		{"admin write", entity.RoleAdmin, http.MethodPost, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			req := httptest.NewRequest(tt.method, "/v1/admin/owners", nil)
			if tt.role != "" {
				req.Header.Set("Authorization", "Bearer "+f.token(t, tt.role))
			}

			rec := httptest.NewRecorder()
			f.handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusNoContent {
				require.NotNil(t, f.seen)
				assert.Equal(t, tt.role, f.seen.Role)
			}
		})
	}
}

func TestRequireAdmin_BadToken(t *testing.T) {
	f := newAuthFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/owners", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"unauthorized"`)
}

func TestOptionalAuth(t *testing.T) {
	verifier := auth.NewVerifier("test-secret")
	var seen *entity.User
	h := OptionalAuth(verifier, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/v1/booking-wizard", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Nil(t, seen)

	tok, err := verifier.Issue(entity.User{ID: "c-9", DisplayName: "Nimal Perera", Role: entity.RoleCustomer}, time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/v1/booking-wizard", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.NotNil(t, seen)
	assert.Equal(t, "Nimal Perera", seen.DisplayName)
}
