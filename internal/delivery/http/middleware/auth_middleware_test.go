package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "shelf/internal/delivery/context"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/service"
	mockservice "shelf/internal/mocks/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthenticate_NoTokenProceedsAnonymously(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, _ := newAuthTestContext(req)

	called := false
	err := m.Authenticate(func(c echo.Context) error {
		called = true
		_, ok := deliverycontext.GetIdentity(c)
		assert.False(t, ok)

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthenticate_BearerHeader(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	claims := &service.Claims{Username: "alice", Email: "alice@example.com"}
	tokenSvc.EXPECT().Verify("header-token").Return(claims, nil).Once()

	m := NewAuthMiddleware(tokenSvc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	c, _ := newAuthTestContext(req)

	err := m.Authenticate(func(c echo.Context) error {
		got, ok := deliverycontext.GetIdentity(c)
		require.True(t, ok)
		assert.Equal(t, claims, got)

		return nil
	})(c)

	require.NoError(t, err)
}

func TestAuthenticate_HeaderWinsOverBodyAndQuery(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("header-token").Return(&service.Claims{}, nil).Once()

	m := NewAuthMiddleware(tokenSvc, discardLogger())

	body := strings.NewReader(`{"token":"body-token"}`)
	req := httptest.NewRequest(http.MethodPost, "/?token=query-token", body)
	req.Header.Set("Authorization", "Bearer header-token")
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, _ := newAuthTestContext(req)

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)
}

func TestAuthenticate_BodyToken_RestoresBody(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("body-token").Return(&service.Claims{}, nil).Once()

	m := NewAuthMiddleware(tokenSvc, discardLogger())

	payload := `{"token":"body-token","bookId":"OL1M"}`
	req := httptest.NewRequest(http.MethodPut, "/books", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, _ := newAuthTestContext(req)

	err := m.Authenticate(func(c echo.Context) error {
		// Downstream handlers must still see the full body.
		raw, readErr := io.ReadAll(c.Request().Body)
		require.NoError(t, readErr)
		assert.Equal(t, payload, string(raw))

		return nil
	})(c)

	require.NoError(t, err)
}

func TestAuthenticate_QueryToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("query-token").Return(&service.Claims{}, nil).Once()

	m := NewAuthMiddleware(tokenSvc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/?token=query-token", nil)
	c, _ := newAuthTestContext(req)

	err := m.Authenticate(func(c echo.Context) error {
		_, ok := deliverycontext.GetIdentity(c)
		assert.True(t, ok)

		return nil
	})(c)

	require.NoError(t, err)
}

func TestAuthenticate_InvalidTokenFailsRequest(t *testing.T) {
	for name, verifyErr := range map[string]error{
		"invalid": service.ErrTokenInvalid,
		"expired": service.ErrTokenExpired,
	} {
		t.Run(name, func(t *testing.T) {
			tokenSvc := mockservice.NewMockTokenService(t)
			tokenSvc.EXPECT().Verify("bad-token").Return(nil, verifyErr).Once()

			m := NewAuthMiddleware(tokenSvc, discardLogger())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer bad-token")
			c, _ := newAuthTestContext(req)

			err := m.Authenticate(func(c echo.Context) error {
				t.Fatal("handler must not run with a bad token")

				return nil
			})(c)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}

func TestAuthenticate_MalformedBodyIgnored(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, _ := newAuthTestContext(req)

	called := false
	err := m.Authenticate(func(c echo.Context) error {
		called = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestRequireAuth(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, discardLogger())

	t.Run("anonymous rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		c, _ := newAuthTestContext(req)

		err := m.RequireAuth(func(c echo.Context) error { return nil })(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("authenticated passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		c, _ := newAuthTestContext(req)
		deliverycontext.SetIdentity(c, &service.Claims{Username: "alice"})

		called := false
		err := m.RequireAuth(func(c echo.Context) error {
			called = true

			return nil
		})(c)
		require.NoError(t, err)
		assert.True(t, called)
	})
}
