package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	deliverycontext "shelf/internal/delivery/context"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxBodyPeek bounds how much of the request body is buffered when looking for
// a body-carried token.
const maxBodyPeek = 1 << 20

// AuthMiddleware computes the per-request identity context and gates protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate runs once per request on every route. A request without a token
// proceeds anonymously: that is a normal outcome, and public operations accept
// it. A request that does carry a token must carry a valid one; a malformed or
// expired token always fails the request, never silently downgrades to
// anonymous. The rejection cause is logged server-side only; the client sees
// a single undifferentiated code.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, found := extractToken(c)
		if !found {
			return next(c)
		}

		claims, err := m.tokenSvc.Verify(token)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				m.logger.Warn("Rejected expired token", slog.String("path", c.Request().URL.Path))
			} else {
				m.logger.Warn("Rejected invalid token", slog.String("path", c.Request().URL.Path))
			}

			return domainerrors.ErrUnauthenticated.WrapMessage("token verification failed")
		}

		deliverycontext.SetIdentity(c, claims)

		return next(c)
	}
}

// RequireAuth gates protected routes on a non-empty identity context.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := deliverycontext.GetIdentity(c); !ok {
			return domainerrors.ErrUnauthenticated.WrapMessage("no identity on protected operation")
		}

		return next(c)
	}
}

// extractToken pulls the identity token off the request. Extraction order,
// first match wins: Authorization Bearer header, body field "token", query
// parameter "token".
func extractToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != authHeader {
			if token = strings.TrimSpace(token); token != "" {
				return token, true
			}
		}
	}

	if token := tokenFromBody(c); token != "" {
		return token, true
	}

	if token := c.QueryParam("token"); token != "" {
		return token, true
	}

	return "", false
}

// tokenFromBody peeks at a JSON request body for a top-level "token" field,
// restoring the body so downstream binding still sees it.
func tokenFromBody(c echo.Context) string {
	req := c.Request()
	if req.Body == nil {
		return ""
	}

	raw, err := io.ReadAll(io.LimitReader(req.Body, maxBodyPeek))
	req.Body = io.NopCloser(io.MultiReader(bytes.NewReader(raw), req.Body))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}

	return payload.Token
}
