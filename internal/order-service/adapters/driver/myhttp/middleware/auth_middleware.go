package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
)

type AuthMiddleware struct {
	accessSecret string
}

func NewAuthMiddleware(accessSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		accessSecret: accessSecret,
	}
}

// Wrap validates the bearer token and passes the verified caller identity to
// the next handler via the X-UserId header. Handlers never trust ids from
// request bodies.
func (am *AuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			authError(w, fmt.Errorf("no token, authorization denied"))
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			return []byte(am.accessSecret), nil
		})
		if err != nil {
			authError(w, fmt.Errorf("failed to parse JWT token"))
			return
		}

		if !token.Valid {
			authError(w, fmt.Errorf("token is not valid"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			authError(w, fmt.Errorf("invalid claims"))
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok {
			authError(w, fmt.Errorf("user id not found in token"))
			return
		}

		// drop any spoofed header before setting the verified identity
		r.Header.Del("X-UserId")
		r.Header.Set("X-UserId", userID)

		next.ServeHTTP(w, r)
	})
}

func authError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": err.Error()})
}
