package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrUnauthenticated, ErrInvalidArgument, ErrNotFound, ErrStorage}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
		}
	}
}

func TestConstructorsWrapSentinels(t *testing.T) {
	assert.ErrorIs(t, Unauthenticated(), ErrUnauthenticated)
	assert.ErrorIs(t, InvalidArgument("bad id"), ErrInvalidArgument)
	assert.ErrorIs(t, NotFound("product", "abc"), ErrNotFound)
	assert.ErrorIs(t, Storage("find products", errors.New("conn reset")), ErrStorage)
}

func TestStoragePreservesCause(t *testing.T) {
	cause := errors.New("conn reset")
	err := Storage("find products", cause)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "find products")
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Unauthenticated(), http.StatusUnauthorized},
		{InvalidArgument("x"), http.StatusBadRequest},
		{NotFound("cart", "u1"), http.StatusNotFound},
		{Storage("op", errors.New("down")), http.StatusServiceUnavailable},
		{fmt.Errorf("wrapped: %w", ErrInvalidArgument), http.StatusBadRequest},
		{errors.New("mystery"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HTTPStatus(c.err), "for %v", c.err)
	}
}

func TestMessageNeverLeaksInternals(t *testing.T) {
	err := Storage("find products", errors.New("password=hunter2"))
	assert.NotContains(t, Message(err), "hunter2")
	assert.Equal(t, "internal error", Message(errors.New("raw")))
}
