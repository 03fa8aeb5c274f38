package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrNotFound, http.StatusNotFound},
		{ErrValidation, http.StatusBadRequest},
		{ErrConflict, http.StatusConflict},
		{ErrUpstream, http.StatusBadGateway},
		{errors.New("driver: bad connection"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusCode(tt.err), "error %v", tt.err)
	}
}

func TestStatusCodeUnwrapsContext(t *testing.T) {
	wrapped := fmt.Errorf("%w: waste report %s", ErrNotFound, "abc")
	assert.Equal(t, http.StatusNotFound, StatusCode(wrapped))
	assert.Equal(t, wrapped.Error(), Message(wrapped))
}

func TestMessageHidesInternalDetails(t *testing.T) {
	assert.Equal(t, "internal server error", Message(errors.New("pq: relation does not exist")))
}
