package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlows(t *testing.T) {
	r, _ := setupServer(t)

	t.Run("signup rejects empty fields", func(t *testing.T) {
		w := postForm(t, r, "/signup", url.Values{
			"email":    {""},
			"username": {""},
			"password": {""},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	token := registerAndLogin(t, r, "carol@example.com", "carol", "Carol", "Chen")

	t.Run("duplicate registration rejected", func(t *testing.T) {
		w := postForm(t, r, "/signup", url.Values{
			"email":    {"carol@example.com"},
			"username": {"carol2"},
			"password": {"testpass123"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		w := postForm(t, r, "/login", url.Values{
			"email":    {"carol@example.com"},
			"password": {"wrongpass"},
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("events require authentication", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/events", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bearer token grants access", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/auth/me", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "carol@example.com")
	})

	t.Run("session cookie grants access", func(t *testing.T) {
		login := postForm(t, r, "/login", url.Values{
			"email":    {"carol@example.com"},
			"password": {"testpass123"},
		})
		require.Equal(t, http.StatusOK, login.Code)
		cookies := login.Result().Cookies()
		require.NotEmpty(t, cookies)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/me", strings.NewReader(""))
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		// Logout tears the session down
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodDelete, "/auth/logout", strings.NewReader(""))
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
