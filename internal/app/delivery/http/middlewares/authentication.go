package middlewares

import (
	"context"
	"net/http"
	"strings"

	"careportal-service/internal/app/models"
	"careportal-service/internal/app/services/core/rbac"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
)

// Authenticate resolves the bearer token into a principal. Any token that does
// not resolve to a live session is rejected the same way, so a caller cannot
// tell a bad token from an expired one.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)

		session, err := m.SessionService.ResolveSession(r.Context(), token)
		if err != nil || session == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrUnauthenticated(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_PRINCIPAL_KEY, session.Principal())
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, session.SessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission gates a route on a single grant. It assumes Authenticate
// ran earlier in the chain; a missing principal is an authentication failure,
// not a permission one.
func (m *Middlewares) RequirePermission(permission models.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, _ := r.Context().Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal)
			if principal == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrUnauthenticated(nil))
				return
			}

			if err := rbac.RequirePermission(principal, permission); err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
