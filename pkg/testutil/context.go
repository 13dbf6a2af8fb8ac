package testutil

import (
	"net/http"
	"time"

	id "barhub/pkg/domain"
	"barhub/pkg/requestcontext"
)

// WithTenant adds a tenant ID to the request context, the way RequireTenant
// does for a validated bearer token. Invalid IDs are silently ignored.
func WithTenant(req *http.Request, tenantID string) *http.Request {
	parsed, err := id.ParseTenantID(tenantID)
	if err != nil {
		return req
	}
	return req.WithContext(requestcontext.WithTenantID(req.Context(), parsed))
}

// WithRequestTime pins the request-scoped clock.
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
