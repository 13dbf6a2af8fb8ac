package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	id "barhub/pkg/domain"
	dErrors "barhub/pkg/domain-errors"
	"barhub/pkg/platform/httputil"
	"barhub/pkg/requestcontext"
)

// TenantTokenValidator defines the interface for validating tenant bearer tokens
type TenantTokenValidator interface {
	ValidateToken(tokenString string) (*TenantClaims, error)
}

// TenantClaims represents the claims we expect from the token validator
type TenantClaims struct {
	TenantID string
	Subject  string
	JTI      string
}

// RequireTenant rejects requests without a valid bearer token and stores the
// token's tenant in the request context.
func RequireTenant(validator TenantTokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Missing or invalid Authorization header"))
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Invalid or expired token"))
				return
			}

			tenantID, err := id.ParseTenantID(claims.TenantID)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - malformed tenant claim",
					"error", err,
					"jti", claims.JTI,
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Invalid or expired token"))
				return
			}

			ctx = requestcontext.WithTenantID(ctx, tenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
