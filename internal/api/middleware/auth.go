package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Moshe1988/CouponManagementSystem/internal/api/respond"
	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
	"github.com/Moshe1988/CouponManagementSystem/internal/service"
)

type contextKey string

const (
	capabilityKey contextKey = "capability"
	tokenKey      contextKey = "token"
)

// Auth resolves the bearer token to its capability through the session
// registry and stores both on the request context. This is the single
// checkpoint every protected route passes through; an unknown or expired
// token is rejected here and never reaches a handler.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				respond.Error(w, domain.ErrSessionExpired)
				return
			}

			capability, err := authService.Resolve(token)
			if err != nil {
				respond.Error(w, domain.ErrSessionExpired)
				return
			}

			ctx := context.WithValue(r.Context(), capabilityKey, capability)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects requests whose capability is scoped to a different
// role.
func RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capability, ok := GetCapability(r.Context())
			if !ok || capability.Role != role {
				respond.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func GetCapability(ctx context.Context) (domain.Capability, bool) {
	capability, ok := ctx.Value(capabilityKey).(domain.Capability)
	return capability, ok
}

func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
