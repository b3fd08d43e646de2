package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"recharge-travels-service/internal/domain/entity"
	"recharge-travels-service/pkg/logger"
	"recharge-travels-service/pkg/metrics"
	"recharge-travels-service/pkg/policy"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// TokenVerifier turns a bearer token into a user
type TokenVerifier interface {
	Verify(token string) (*entity.User, error)
}

// Authorizer decides whether a user may call an admin route
type Authorizer interface {
	Allow(ctx context.Context, input policy.Input) (bool, error)
}

// RequestID propagates the caller's request id or assigns a new one
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

// RequestLogger logs each request and observes its duration by route
func RequestLogger(log logger.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			elapsed := time.Since(start)

			m.RequestDuration.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
			log.Info("HTTP request",
				"requestId", RequestIDFromContext(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", elapsed.String())
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// OptionalAuth attaches the user when a valid token is sent. Requests
// without one, or with a bad one, continue anonymously.
func OptionalAuth(verifier TokenVerifier, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := verifier.Verify(token)
			if err != nil {
				log.Debug("Ignoring invalid token on public route", "path", r.URL.Path, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequireAdmin rejects requests without a valid token or that the admin
// policy does not allow.
func RequireAdmin(verifier TokenVerifier, authz Authorizer, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := verifier.Verify(bearerToken(r))
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "unauthorized", "valid bearer token required")
				return
			}

			allowed, err := authz.Allow(r.Context(), policy.Input{User: *user, Method: r.Method, Path: r.URL.Path})
			if err != nil {
				log.Error("Admin policy evaluation failed", "path", r.URL.Path, "error", err)
				WriteError(w, http.StatusInternalServerError, "internal", "internal error")
				return
			}
			if !allowed {
				log.Warn("Admin access denied", "userId", user.ID, "role", user.Role, "method", r.Method, "path", r.URL.Path)
				WriteError(w, http.StatusForbidden, "forbidden", "not allowed")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
