package middleware

import (
	"context"
	"dice_game/pkg/token"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type ctxKey struct{}

// GameAuth Проверяет Bearer токен хоста. Subject токена должен совпадать с {id} в пути
func GameAuth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessToken, ok := bearerToken(r)
			if !ok {
				http.Error(w, "authorization required", http.StatusUnauthorized)
				return
			}

			claims, err := token.VerifyToken(accessToken, secretKey)
			if err != nil {
				log.Println("token verify error:", err)
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			gameID := chi.URLParam(r, "id")
			if claims.Subject != gameID {
				http.Error(w, "token does not grant access to this game", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, gameID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken Токен из заголовка Authorization. Браузер не может задать заголовок
// для WebSocket, поэтому допускается параметр ?token=
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		accessToken := r.URL.Query().Get("token")
		return accessToken, accessToken != ""
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	accessToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return accessToken, accessToken != ""
}

// GameIDFromContext ID партии, проверенный GameAuth
func GameIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok
}
