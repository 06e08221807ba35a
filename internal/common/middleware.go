package common

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthMiddleware resolves the bearer token into a Principal stored on the
// request context. Requests without a valid token never reach a handler.
func AuthMiddleware(tm *TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				WriteError(w, Unauthenticated("authorization required"))
				return
			}

			// Bearer <token>
			parts := strings.Fields(header)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				WriteError(w, Unauthenticated("invalid auth header"))
				return
			}

			claims, err := tm.ValidToken(parts[1])
			if err != nil {
				WriteError(w, Unauthenticated("invalid or expired token"))
				return
			}
			principal, err := claims.Principal()
			if err != nil {
				WriteError(w, Unauthenticated(err.Error()))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// ActorID returns the principal id, or the zero id when the request is
// anonymous. Services turn a zero id into Unauthenticated.
func ActorID(r *http.Request) primitive.ObjectID {
	p, _ := PrincipalFromContext(r.Context())
	return p.UserID
}
