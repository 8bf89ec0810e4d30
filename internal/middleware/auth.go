package middleware

import (
	"context"
	"net/http"

	"github.com/vancomm/lockbox-server/internal/config"
)

type CtxKey int

const (
	CtxOwnerClaims CtxKey = iota
)

// Auth decodes the owner cookies into request context. Requests
// without valid claims pass through anonymously; handlers that need an
// owner decide what to do about it.
func Auth(cookies *config.Cookies) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := cookies.ParseOwnerClaims(r)
			if err != nil {
				cookies.Clear(w)
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxOwnerClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OwnerID extracts the authenticated owner id from request context.
func OwnerID(r *http.Request) (string, bool) {
	claims, ok := r.Context().Value(CtxOwnerClaims).(*config.OwnerClaims)
	if !ok {
		return "", false
	}
	return claims.OwnerID, true
}
