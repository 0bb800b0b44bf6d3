package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kbrerx/Centro-de-operaciones-INFINITY/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// publicPaths dispensa autenticação nas rotas de entrada da API.
var publicPaths = map[string]bool{
	"/healthcheck": true,
	"/v1/login":    true,
	"/v1/register": true,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
