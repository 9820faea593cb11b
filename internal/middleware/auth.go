package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"charlies_odds_backend/internal/config"
	"charlies_odds_backend/pkg/resp"
	"charlies_odds_backend/pkg/token"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	isAdminKey
)

// Auth проверяет Bearer токен и кладёт ID пользователя в контекст
func Auth(jwtConfig config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				resp.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := token.VerifyToken(tokenStr, jwtConfig.AccessTokenSecretKey())
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			userID, err := strconv.Atoi(claims.ID)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid token claims")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, isAdminKey, claims.IsAdmin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly пропускает только админов. Ставится после Auth
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isAdmin, _ := r.Context().Value(isAdminKey).(bool)
		if !isAdmin {
			resp.WriteError(w, http.StatusForbidden, "admin only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID достаёт ID пользователя из контекста запроса
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}
