package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oversizedCredentials() string {
	return `{"username":"alice","password":"` + strings.Repeat("p", maxRequestBodyBytes) + `"}`
}

// No Login expectation: the service must not be reached.
func TestLogin_BodyTooLarge(t *testing.T) {
	h, _ := newMockedHandler(t)

	rr := serve(h, http.MethodPost, "/auth/login", oversizedCredentials(), nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, ErrRequestBodyTooLarge.Error(), decodeError(t, rr))
}

func TestCreateUser_BodyTooLarge(t *testing.T) {
	h, _ := newMockedHandler(t)

	rr := serve(h, http.MethodPost, "/users/create", oversizedCredentials(), nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var got models.PublicUser
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, models.PublicUser{}, got)
}

func TestStatusFromError_BodyTooLarge(t *testing.T) {
	status, msg := statusFromError(ErrRequestBodyTooLarge)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Equal(t, "request body too large", msg)
}
