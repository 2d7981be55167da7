package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wilovy09/pgmq-test/internal/server/auth"
)

func getWithAuth(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()
	e := NewRouter(NewHandlers(&stubUsers{}, &stubReset{}), []byte("k"))
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth_Success(t *testing.T) {
	token, err := auth.GenerateToken("test", time.Hour, auth.TokenTypeAccess, "u1", "admin", []byte("k"))
	require.NoError(t, err)

	rec := getWithAuth(t, "Bearer "+token)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "u1", body["user_id"])
	assert.Equal(t, "admin", body["user_role"])
}

func TestJWTAuth_MissingToken(t *testing.T) {
	rec := getWithAuth(t, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Token not specified", decodeError(t, rec).Error)
}

func TestJWTAuth_NotBearer(t *testing.T) {
	rec := getWithAuth(t, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	rec := getWithAuth(t, "Bearer not.a.token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeError(t, rec).Error)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("test", time.Hour, auth.TokenTypeAccess, "u1", "user", []byte("other"))
	require.NoError(t, err)

	rec := getWithAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	token, err := auth.GenerateToken("test", -time.Minute, auth.TokenTypeAccess, "u1", "user", []byte("k"))
	require.NoError(t, err)

	rec := getWithAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_WrongTokenType(t *testing.T) {
	token, err := auth.GenerateToken("test", time.Hour, "refresh", "u1", "user", []byte("k"))
	require.NoError(t, err)

	rec := getWithAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
