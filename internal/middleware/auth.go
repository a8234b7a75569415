package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/forum-dev/forum-api/internal/token"
)

// Key to store the authenticated user id in the request context
type key int

const userIdKey key = 0

type Auth struct {
	tokens token.Service
}

func NewAuth(tokens token.Service) *Auth {
	return &Auth{tokens: tokens}
}

// NeedAuth rejects requests without a valid bearer token and stores the
// authenticated user id in the request context.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || tokenStr == "" {
				http.Error(w, "Missing authentication", http.StatusUnauthorized)
				return
			}

			userId, err := a.tokens.DecodeUserId(tokenStr)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserId(r.Context(), userId)))
		})
	}
}

// WithUserId stores the authenticated user id in the context.
func WithUserId(ctx context.Context, userId string) context.Context {
	return context.WithValue(ctx, userIdKey, userId)
}

// UserIdFromContext returns the authenticated user id, or "" when the
// request went through without NeedAuth.
func UserIdFromContext(ctx context.Context) string {
	userId, _ := ctx.Value(userIdKey).(string)
	return userId
}
