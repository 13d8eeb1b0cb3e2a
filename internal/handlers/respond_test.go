package handlers_test

import (
	"net/http"
	"testing"

	"github.com/skamga/accounts-api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknownRouteEnvelope(t *testing.T) {
	env := newTestEnv(t)

	status, out := env.request(t, http.MethodGet, "/no-such-route", "", nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, dto.CodeNotFound, out.ErrorCode)
	assert.NotEmpty(t, out.Message)
}
