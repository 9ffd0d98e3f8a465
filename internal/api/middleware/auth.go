package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/CHARUMATHIBALA/giftshop-backend/internal/service"
	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// Auth rejects requests without a valid bearer token and binds the token's
// user id into the request context. It never touches the database: a valid
// unexpired token is accepted even if its user no longer exists.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("ERROR [middleware.Auth] missing authorization header")
				http.Error(w, "No token provided", http.StatusUnauthorized)
				return
			}

			// The scheme prefix is optional; a raw token is accepted too.
			tokenString, _ := strings.CutPrefix(authHeader, "Bearer ")

			userID, err := authService.ValidateToken(tokenString)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token validation failed: %v", err)
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}
