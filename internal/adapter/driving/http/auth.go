package httphandler

import (
	"context"
	"net/http"
	"strings"

	"github.com/ericfisherdev/foliopanel/internal/application"
)

type contextKey string

const identityContextKey contextKey = "identity"

// requireAuth guards a mutating route behind the bearer session token.
// A missing Authorization header is 401; a header that is present but does
// not carry a valid token is 403. Neither response has a body.
func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		identity, err := h.auth.Verify(token)
		if err != nil {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next(w, r.WithContext(ctx))
	}
}

// IdentityFromContext returns the authenticated identity placed in the
// context by requireAuth, or nil outside guarded routes.
func IdentityFromContext(ctx context.Context) *application.Identity {
	identity, _ := ctx.Value(identityContextKey).(*application.Identity)
	return identity
}
