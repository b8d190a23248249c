package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tadelakiran/Book-Library-Management/internal/config"
	"github.com/tadelakiran/Book-Library-Management/internal/repository"
	"github.com/tadelakiran/Book-Library-Management/internal/store"
)

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	cfg := config.Config{
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
		BcryptCost:     bcrypt.MinCost,
	}
	return NewAuthHandler(cfg, repository.NewUserRepo(store.NewMemory()))
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestRegister(t *testing.T) {
	h := newAuthHandler(t)

	rec := doJSON(t, h.Register, http.MethodPost, "/v1/auth/register",
		`{"email":"Alice@Example.com","password":"secret","name":"Alice","role":"user"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.User.Email, "email is normalized on create")
	assert.Equal(t, "user", resp.User.Role)
	assert.NotEmpty(t, resp.Access.Token)
	assert.NotEmpty(t, resp.Refresh.Token)

	t.Run("duplicate email conflicts case-insensitively", func(t *testing.T) {
		rec := doJSON(t, h.Register, http.MethodPost, "/v1/auth/register",
			`{"email":"ALICE@example.com","password":"other","name":"Imposter"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown role falls back to user", func(t *testing.T) {
		rec := doJSON(t, h.Register, http.MethodPost, "/v1/auth/register",
			`{"email":"bob@example.com","password":"secret","name":"Bob","role":"superuser"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		var resp authResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "user", resp.User.Role)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		rec := doJSON(t, h.Register, http.MethodPost, "/v1/auth/register", `{"email":"x@y.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	h := newAuthHandler(t)
	rec := doJSON(t, h.Register, http.MethodPost, "/v1/auth/register",
		`{"email":"alice@example.com","password":"secret","name":"Alice"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("valid credentials", func(t *testing.T) {
		rec := doJSON(t, h.Login, http.MethodPost, "/v1/auth/login",
			`{"email":"Alice@Example.com","password":"secret"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp authResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "alice@example.com", resp.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := doJSON(t, h.Login, http.MethodPost, "/v1/auth/login",
			`{"email":"alice@example.com","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email gets the same 401", func(t *testing.T) {
		rec := doJSON(t, h.Login, http.MethodPost, "/v1/auth/login",
			`{"email":"nobody@example.com","password":"secret"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRefreshRotation(t *testing.T) {
	h := newAuthHandler(t)
	rec := doJSON(t, h.Register, http.MethodPost, "/v1/auth/register",
		`{"email":"alice@example.com","password":"secret","name":"Alice"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var first authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))

	body := fmt.Sprintf(`{"refresh_token":%q}`, first.Refresh.Token)
	rec = doJSON(t, h.Refresh, http.MethodPost, "/v1/auth/refresh", body)
	require.Equal(t, http.StatusOK, rec.Code)
	var second authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.NotEqual(t, first.Refresh.Token, second.Refresh.Token)

	// The old token was revoked by the rotation.
	rec = doJSON(t, h.Refresh, http.MethodPost, "/v1/auth/refresh", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesRefresh(t *testing.T) {
	h := newAuthHandler(t)
	rec := doJSON(t, h.Register, http.MethodPost, "/v1/auth/register",
		`{"email":"alice@example.com","password":"secret","name":"Alice"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	body := fmt.Sprintf(`{"refresh_token":%q}`, resp.Refresh.Token)
	rec = doJSON(t, h.Logout, http.MethodPost, "/v1/auth/logout", body)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h.Refresh, http.MethodPost, "/v1/auth/refresh", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	t.Run("unknown token rejected", func(t *testing.T) {
		rec := doJSON(t, h.Logout, http.MethodPost, "/v1/auth/logout", `{"refresh_token":"bogus"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
