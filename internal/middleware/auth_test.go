package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "mywallet/internal/errors"
)

// fakeRegistry is an in-memory session registry for tests.
type fakeRegistry struct {
	sessions map[string]uint
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{sessions: make(map[string]uint)}
}

func (f *fakeRegistry) Save(_ context.Context, token string, userID uint) error {
	f.sessions[token] = userID
	return nil
}

func (f *fakeRegistry) Resolve(_ context.Context, token string) (uint, error) {
	userID, ok := f.sessions[token]
	if !ok {
		return 0, apperrors.ErrSessionNotFound
	}
	return userID, nil
}

func (f *fakeRegistry) Delete(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func runGate(t *testing.T, registry *fakeRegistry, authHeader string) (uint, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenUserID uint
	next := func(c echo.Context) error {
		seenUserID = UserID(c)
		return c.NoContent(http.StatusOK)
	}

	err := AuthGate(registry)(next)(c)
	return seenUserID, err
}

func TestAuthGate_MissingHeader(t *testing.T) {
	_, err := runGate(t, newFakeRegistry(), "")

	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Code)
}

func TestAuthGate_UnknownToken(t *testing.T) {
	_, err := runGate(t, newFakeRegistry(), "Bearer no-such-token")

	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthGate_ResolvesUserID(t *testing.T) {
	registry := newFakeRegistry()
	require.NoError(t, registry.Save(context.Background(), "tok-1", 42))

	userID, err := runGate(t, registry, "Bearer tok-1")

	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestAuthGate_AcceptsBareToken(t *testing.T) {
	// The Bearer prefix is optional; whatever is left after stripping is
	// the token.
	registry := newFakeRegistry()
	require.NoError(t, registry.Save(context.Background(), "tok-1", 42))

	userID, err := runGate(t, registry, "tok-1")

	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestUserID_DefaultsToZero(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, uint(0), UserID(c))
}
