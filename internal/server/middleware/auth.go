package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/livinghopeag/churchapi/internal/model"
	"github.com/livinghopeag/churchapi/internal/service"
)

type contextKeyAuth string

// AdminUserKey is the context key for the authenticated admin account.
const AdminUserKey contextKeyAuth = "admin_user"

// Authenticate returns an HTTP middleware enforcing the admin authorization
// gate. It expects an Authorization: Bearer <token> header, verifies the
// token through the AuthService, and attaches the resolved admin account to
// the request context.
//
// Every authentication failure produces the same 401 response class; the
// internal failure kind (malformed token, expired token, disabled account)
// is logged so operators can tell them apart. A store outage during subject
// resolution is surfaced as 503, never masked as unauthorized.
func Authenticate(authSvc *service.AuthService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				logger.Warn("admin request without bearer token",
					"path", r.URL.Path,
					"request_id", GetRequestID(r.Context()),
				)
				writeAuthError(w, http.StatusUnauthorized, "No authentication token provided")
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			admin, err := authSvc.Authorize(r.Context(), token)
			if err != nil {
				if !service.IsAuthError(err) {
					logger.Error("authorization gate store failure",
						"path", r.URL.Path,
						"request_id", GetRequestID(r.Context()),
						"error", err,
					)
					writeAuthError(w, http.StatusServiceUnavailable, "Authentication service unavailable")
					return
				}
				logger.Warn("admin request rejected",
					"path", r.URL.Path,
					"request_id", GetRequestID(r.Context()),
					"reason", err.Error(),
				)
				writeAuthError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), AdminUserKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdmin extracts the authenticated admin from the context. Returns nil
// if the request did not pass through Authenticate.
func GetAdmin(ctx context.Context) *model.AdminUser {
	if a, ok := ctx.Value(AdminUserKey).(*model.AdminUser); ok {
		return a
	}
	return nil
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Success: false, Error: message})
}
