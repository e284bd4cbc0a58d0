package middleware

import (
	"net/http"
	"strings"

	"srent/internal/data/entity"
	"srent/internal/data/repository"
	"srent/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthSession validates the bearer token against the session store and
// puts the user id and role on the request context.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token, err := uuid.Parse(parts[1])
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid token format")
				return
			}

			session, err := sessionRepo.FindValid(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("token", token.String()))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID, string(session.Role))
			ctx = utils.SetTokenContext(ctx, token.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin gates a route on the admin role already resolved by AuthSession.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != string(entity.RoleAdmin) {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Admin check: non-admin access attempt",
					zap.Int64("user_id", userID),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
