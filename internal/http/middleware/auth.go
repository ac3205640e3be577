package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/neutralpress/member-service/internal/http/response"
	"github.com/neutralpress/member-service/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "auth.claims"

func ClaimsFromContext(ctx context.Context) (*security.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*security.Claims)
	return claims, ok
}

// RequireAuth validates the bearer access token and injects its claims into
// the request context. Handlers pass the claimed identity to services as an
// explicit argument; nothing downstream reads ambient auth state.
func RequireAuth(manager *security.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing access token", nil)
				return
			}
			claims, err := manager.ParseAccessToken(token)
			if err != nil {
				response.Error(w, r, http.StatusUnauthorized, "INVALID_OR_EXPIRED_TOKEN", "invalid or expired access token", nil)
				return
			}
			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
