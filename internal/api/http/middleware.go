package http

import (
	"net/http"
	"strings"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/security"
)

// AuthMiddleware validates the bearer token and installs the actor into the
// request context. Role and ownership checks stay in the services.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Kind: domain.KindForbidden, Message: "missing bearer token"})
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil || claims.Type != security.TokenTypeAccess {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Kind: domain.KindForbidden, Message: "invalid or expired token"})
			return
		}

		actor := domain.Actor{ID: claims.UserID, Role: claims.Role}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// mustActor is used by handlers behind the auth middleware.
func mustActor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Kind: domain.KindForbidden, Message: "not authenticated"})
	}
	return actor, ok
}
