package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapAndHasCode(t *testing.T) {
	t.Run("wrap nil returns nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "ignored"))
	})

	t.Run("code survives fmt wrapping", func(t *testing.T) {
		base := Wrap(errors.New("dial tcp: refused"), CodeUpstream, "fetch ticketing signals")
		err := fmt.Errorf("segment tenant: %w", base)
		assert.True(t, HasCode(err, CodeUpstream))
		assert.False(t, HasCode(err, CodeInternal))
		assert.Equal(t, CodeUpstream, CodeOf(err))
		assert.Contains(t, err.Error(), "dial tcp: refused")
	})

	t.Run("plain error defaults to internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})
}

func TestIsMatchesByCode(t *testing.T) {
	err := New(CodeValidation, "page must be positive")
	require.ErrorIs(t, err, New(CodeValidation, "a different message"))
	assert.NotErrorIs(t, err, New(CodeNotFound, "page must be positive"))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeValidation:   http.StatusBadRequest,
		CodeInvalidInput: http.StatusBadRequest,
		CodeUnauthorized: http.StatusUnauthorized,
		CodeUpstream:     http.StatusBadGateway,
		CodeTimeout:      http.StatusGatewayTimeout,
		CodeInternal:     http.StatusInternalServerError,
		Code("unknown"):  http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), "code %s", code)
	}
}
