package handlers_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func decodeJWTPayload(t *testing.T, seg string) string {
	t.Helper()
	raw, err := base64.RawURLEncoding.DecodeString(seg)
	require.NoError(t, err)
	return string(raw)
}

// login returns a bearer access token and the refresh cookie for a
// seeded user.
func (f *fixture) login(t *testing.T, username, password string) (string, *http.Cookie) {
	t.Helper()
	resp, err := f.app.Test(jsonRequest(t, fiber.MethodPost, "/api/auth/login",
		map[string]string{"username": username, "password": password}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token, _ := body["accessToken"].(string)
	require.NotEmpty(t, token)
	return token, refreshCookie(resp)
}

func (f *fixture) authed(t *testing.T, token string, method, target string, body any) *http.Request {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = jsonRequest(t, method, target, body)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	return req
}
