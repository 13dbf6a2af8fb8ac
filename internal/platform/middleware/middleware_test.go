package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "barhub/pkg/domain"
	"barhub/pkg/requestcontext"
	"barhub/pkg/testutil"
)

type stubValidator struct {
	claims *TenantClaims
	err    error
}

func (s stubValidator) ValidateToken(string) (*TenantClaims, error) {
	return s.claims, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequireTenant(t *testing.T) {
	tenant := uuid.New()

	var seen id.TenantID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.TenantID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("missing header", func(t *testing.T) {
		h := RequireTenant(stubValidator{}, discardLogger())(next)
		rr := testutil.DoRequest(h, testutil.NewRequest(t, http.MethodGet, "/crm/segments"))
		testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, "unauthorized")
	})

	t.Run("invalid token", func(t *testing.T) {
		h := RequireTenant(stubValidator{err: errors.New("bad signature")}, discardLogger())(next)
		req := testutil.NewRequest(t, http.MethodGet, "/crm/segments")
		req.Header.Set("Authorization", "Bearer nope")
		rr := testutil.DoRequest(h, req)
		testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, "unauthorized")
	})

	t.Run("malformed tenant claim", func(t *testing.T) {
		h := RequireTenant(stubValidator{claims: &TenantClaims{TenantID: "venue-42"}}, discardLogger())(next)
		req := testutil.NewRequest(t, http.MethodGet, "/crm/segments")
		req.Header.Set("Authorization", "Bearer ok")
		rr := testutil.DoRequest(h, req)
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	})

	t.Run("valid token stores tenant", func(t *testing.T) {
		h := RequireTenant(stubValidator{claims: &TenantClaims{TenantID: tenant.String()}}, discardLogger())(next)
		req := testutil.NewRequest(t, http.MethodGet, "/crm/segments")
		req.Header.Set("Authorization", "Bearer ok")
		rr := testutil.DoRequest(h, req)
		testutil.AssertStatus(t, rr, http.StatusNoContent)
		assert.Equal(t, tenant.String(), seen.String())
	})
}

func TestRequestIDPropagatesOrMints(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rr := testutil.DoRequest(h, req)
	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rr.Header().Get(RequestIDHeader))

	rr = testutil.DoRequest(h, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))
}

func TestRequestTimePinsClock(t *testing.T) {
	var first, second time.Time
	h := RequestTime(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		first = requestcontext.Now(r.Context())
		time.Sleep(time.Millisecond)
		second = requestcontext.Now(r.Context())
	}))
	testutil.DoRequest(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, first, second)
}
