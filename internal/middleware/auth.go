package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/bookexchange/covers/internal/auth"
	"github.com/bookexchange/covers/internal/response"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

// SubjectKey is the context key for the authenticated caller's subject.
const SubjectKey contextKey = "subject"

// RoleKey is the context key for the authenticated caller's role.
const RoleKey contextKey = "role"

// RequireRole returns middleware that validates a Bearer JWT, checks that it
// carries role, and injects the caller's claims into the request context.
func RequireRole(jwtSecret, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "authorization header required")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				response.Unauthorized(w, "invalid authorization header format")
				return
			}

			claims, err := auth.ParseToken(jwtSecret, parts[1])
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if claims.Role != role {
				response.Forbidden(w, "insufficient role")
				return
			}

			ctx := context.WithValue(r.Context(), SubjectKey, claims.Subject)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Subject returns the authenticated subject stored by RequireRole.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(SubjectKey).(string)
	return s
}
