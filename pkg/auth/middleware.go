package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/nexilab/agent-credit/pkg/utils"
)

type contextKey string

const AdminIDKey contextKey = "adminID"

// AdminVerifier reports whether the admin behind a token still exists
// and is active.
type AdminVerifier interface {
	VerifyActive(ctx context.Context, adminID string) error
}

func Middleware(jwtService JWTServiceInterface, admins AdminVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "missing or malformed token")
				return
			}

			claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			if err := admins.VerifyActive(r.Context(), claims.AdminID); err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "account disabled or removed")
				return
			}

			ctx := context.WithValue(r.Context(), AdminIDKey, claims.AdminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminIDFromContext returns the authenticated admin id set by Middleware.
func AdminIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AdminIDKey).(string)
	return id, ok
}
