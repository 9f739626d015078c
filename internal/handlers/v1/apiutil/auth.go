package apiutil

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/credential"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/model"
)

// tokenParser verifies bearer tokens.
type tokenParser interface {
	Parse(raw string) (*credential.Claims, error)
}

// Authenticate verifies an Authorization bearer token when one is sent and
// stores its claims on the request context. Requests without a token pass
// through; handlers that need a user call RequireUserID.
func Authenticate(api huma.API, tokens tokenParser) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		if header == "" {
			next(ctx)
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "authorization header must be a bearer token")
			return
		}
		claims, err := tokens.Parse(raw)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		next(huma.WithContext(ctx, credential.WithClaims(ctx.Context(), claims)))
	}
}

// RequireUserID returns the authenticated user id or a 401.
func RequireUserID(ctx context.Context) (string, error) {
	claims, ok := credential.ClaimsFromContext(ctx)
	if !ok || claims.Subject == "" {
		return "", huma.NewError(http.StatusUnauthorized, "authentication required")
	}
	logging.GetLogData(ctx).AddData("userID", claims.Subject)
	return claims.Subject, nil
}

// RequireAdmin returns the authenticated claims if the caller is an admin.
func RequireAdmin(ctx context.Context) (*credential.Claims, error) {
	if _, err := RequireUserID(ctx); err != nil {
		return nil, err
	}
	claims, _ := credential.ClaimsFromContext(ctx)
	if claims.Role != string(model.RoleAdmin) {
		return nil, huma.NewError(http.StatusForbidden, "admin role required")
	}
	return claims, nil
}
