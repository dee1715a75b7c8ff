package context

import (
	"shelf/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for the per-request identity context: the verified
// claims about the caller, computed once per request. Absent for anonymous
// requests.
const KeyIdentity ContextKey = "identity"

// SetIdentity attaches verified claims to the request.
func SetIdentity(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyIdentity), claims)
}

// GetIdentity returns the verified claims for the request, or ok=false when
// the request is anonymous.
func GetIdentity(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(string(KeyIdentity)).(*service.Claims)
	if !ok || claims == nil {
		return nil, false
	}

	return claims, true
}
