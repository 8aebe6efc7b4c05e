// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/core"
	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/policy"
)

const (
	PrincipalKey contextKey = "principal"
	TokenKey     contextKey = "credential"
)

// IdentityResolver turns a presented credential into a principal. Any
// error other than an internal failure means the credential is unusable.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*policy.Principal, error)
}

func Authenticator(
	resolver IdentityResolver,
	cookieName string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractCredential(r, cookieName)
			if token == "" {
				core.JSONError(w, core.UnauthorizedError("not authenticated"))
				return
			}

			principal, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				handleAuthError(w, r, err)
				return
			}

			ctx := WithPrincipal(r.Context(), *principal)
			ctx = context.WithValue(ctx, TokenKey, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireOperation gates a route group on the access policy operation
// table. It must run after Authenticator.
func RequireOperation(op policy.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipal(r.Context())
			if !ok {
				core.JSONError(w, core.UnauthorizedError(""))
				return
			}

			if err := policy.Authorize(principal, op); err != nil {
				core.JSONError(
					w,
					core.ForbiddenError("access restricted to commercial direction"),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ExtractCredential prefers the session cookie over the Authorization
// header.
func ExtractCredential(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ExtractBearer(r)
}

func ExtractBearer(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func handleAuthError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidSession),
		errors.Is(err, core.ErrTokenExpired),
		errors.Is(err, core.ErrTokenInvalid),
		errors.Is(err, core.ErrTokenRevoked),
		errors.Is(err, core.ErrNotFound):
		core.JSONError(w, core.InvalidSessionError())
	default:
		core.Error(w, r, err, "session")
	}
}

func WithPrincipal(ctx context.Context, p policy.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

func GetPrincipal(ctx context.Context) (policy.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(policy.Principal)
	return p, ok
}

func GetUserID(ctx context.Context) string {
	if p, ok := GetPrincipal(ctx); ok {
		return p.ID
	}
	return ""
}

// GetCredential returns the raw token the request authenticated with.
func GetCredential(ctx context.Context) string {
	if token, ok := ctx.Value(TokenKey).(string); ok {
		return token
	}
	return ""
}
