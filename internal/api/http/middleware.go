package http

import (
	"context"
	"net/http"
	"strings"

	"projectportal/internal/domain"
	"projectportal/internal/security"
)

type contextKey string

const principalKey contextKey = "principal"

// AuthMiddleware extracts the principal from a Bearer token. A missing
// or invalid token leaves the principal nil; handlers that require
// authentication wrap themselves in RequireAuth.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			claims, err := m.tokens.Validate(strings.TrimPrefix(header, "Bearer "))
			if err == nil {
				principal := &domain.Principal{AccountID: claims.AccountID, Role: claims.Role}
				r = r.WithContext(context.WithValue(r.Context(), principalKey, principal))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects anonymous requests before they reach the handler.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if principalFrom(r) == nil {
			writeJSON(w, http.StatusUnauthorized, "not logged in", nil)
			return
		}
		next(w, r)
	}
}

// principalFrom returns the authenticated principal, or nil for an
// anonymous request.
func principalFrom(r *http.Request) *domain.Principal {
	principal, _ := r.Context().Value(principalKey).(*domain.Principal)
	return principal
}
