package authctl

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wilovy09/pgmq-test/internal/server/auth"
)

func stubPassword(t *testing.T, password string) {
	t.Helper()
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() { readPassword = orig })
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  alice@example.com  \n"))

	got, err := GetSimpleText(reader, "Enter email", &out)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got)
	assert.Contains(t, out.String(), "Enter email")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("no-newline"))

	got, err := GetSimpleText(reader, "p", &out)
	require.NoError(t, err)
	assert.Equal(t, "no-newline", got)
}

func TestGetPassword(t *testing.T) {
	stubPassword(t, "s3cret")

	var out bytes.Buffer
	got, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Contains(t, out.String(), "Enter password")
}

func TestMintToken(t *testing.T) {
	var out bytes.Buffer
	app := NewApp(strings.NewReader(""), &out)

	err := app.MintToken([]string{"-secret", "k", "-user", "u1", "-role", "admin"})
	require.NoError(t, err)

	claims, err := auth.ValidateToken(strings.TrimSpace(out.String()), []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin", claims.UserRole)
	assert.Equal(t, auth.TokenTypeAccess, claims.TokenType)
}

func TestMintToken_MissingFlags(t *testing.T) {
	app := NewApp(strings.NewReader(""), &bytes.Buffer{})

	assert.Error(t, app.MintToken([]string{"-user", "u1"}))
	assert.Error(t, app.MintToken([]string{"-secret", "k"}))
}

func TestRegister_AgainstServer(t *testing.T) {
	stubPassword(t, "Str0ng!pass")

	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"jwt-token"}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	app := NewApp(strings.NewReader("alice@example.com\n"), &out)

	err := app.Run(context.Background(), []string{"register", "-addr", srv.URL})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", gotBody["email"])
	assert.Equal(t, "Str0ng!pass", gotBody["password"])
	assert.Contains(t, out.String(), "jwt-token")
}

func TestRegister_ServerRejects(t *testing.T) {
	stubPassword(t, "Str0ng!pass")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"email already registered","code":400}`))
	}))
	defer srv.Close()

	app := NewApp(strings.NewReader("alice@example.com\n"), &bytes.Buffer{})

	err := app.Run(context.Background(), []string{"register", "-addr", srv.URL})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email already registered")
}

func TestRun_UnknownCommand(t *testing.T) {
	var out bytes.Buffer
	app := NewApp(strings.NewReader(""), &out)

	err := app.Run(context.Background(), []string{"frobnicate"})
	require.Error(t, err)
	assert.Contains(t, out.String(), "Usage:")
}
