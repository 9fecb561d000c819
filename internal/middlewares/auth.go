package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-user-identity/internal/logger"
)

// Authenticator resolves the bearer token of a request to a user id.
type Authenticator interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Authenticate(ctx context.Context, tokenString string) (int64, error)
}

type userIDKey struct{}

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the user id stored by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// authenticated user id in the request context.
func AuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := auth.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := auth.Authenticate(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}
