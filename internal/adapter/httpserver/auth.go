package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/Chudy3122/doradca-ai/internal/domain"
)

// Claims carries the authenticated user id. Tokens are issued by the login
// service; this API only verifies them.
type Claims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

type userIDKey struct{}

// RequireAuth verifies the bearer token and stores the user id in the
// request context. Requests without a valid token get 401 with the standard
// error envelope.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				writeError(w, r, fmt.Errorf("%w: missing bearer token", domain.ErrUnauthorized), nil)
				return
			}
			tok := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			claims, err := parseToken(tok, key)
			if err != nil || claims.UID == "" {
				writeError(w, r, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized), nil)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey{}, claims.UID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseToken(tok string, key []byte) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tok, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return c, nil
}

// UserIDFrom returns the authenticated user id stored by RequireAuth.
func UserIDFrom(r *http.Request) string {
	if v := r.Context().Value(userIDKey{}); v != nil {
		if uid, ok := v.(string); ok {
			return uid
		}
	}
	return ""
}
