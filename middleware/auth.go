package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/kborsotti/pokecard-api/auth"
	"github.com/kborsotti/pokecard-api/models"
)

// Define a key type for context values to avoid collisions
type contextKey string

const claimsKey contextKey = "authClaims"

// Fixed rejection bodies of the bearer gate.
const (
	MsgMissingToken   = "Token manquant dans le header Authorization"
	MsgMalformedToken = "Token manquant ou mal formaté"
	MsgInvalidToken   = "Token invalide ou expiré"
)

// Auth gates a route behind a bearer token. It has exactly three rejection
// states: no Authorization header, a header that is not "Bearer <token>" with
// a non-empty token, and a token failing signature or expiration checks. On
// success the decoded claims are attached to the request context and the next
// handler runs. Nothing else happens.
func Auth(tokens *auth.TokenService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				rejectUnauthorized(w, MsgMissingToken)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				rejectUnauthorized(w, MsgMalformedToken)
				return
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				rejectUnauthorized(w, MsgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}

// ContextWithClaims returns a context carrying the decoded token claims.
func ContextWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext retrieves the claims attached by Auth, if any.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

func rejectUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}
