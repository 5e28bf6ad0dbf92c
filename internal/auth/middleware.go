package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freshmarket/storefront/internal/models"
)

const (
	SessionCookie = "session"

	ctxUserID = "user_id"
	ctxRole   = "role"
)

type Middleware struct {
	Secret []byte
}

func (m *Middleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ck, err := c.Cookie(SessionCookie)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		claims, err := ParseSessionToken(ck.Value, m.Secret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		c.Set(ctxUserID, claims.Subject)
		c.Set(ctxRole, claims.Role)
		return next(c)
	}
}

func (m *Middleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireLogin(func(c echo.Context) error {
		if RoleFromContext(c) != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
		}
		return next(c)
	})
}

func UserIDFromContext(c echo.Context) string {
	if s, ok := c.Get(ctxUserID).(string); ok {
		return s
	}
	return ""
}

func RoleFromContext(c echo.Context) models.Role {
	if s, ok := c.Get(ctxRole).(string); ok {
		return models.Role(s)
	}
	return ""
}
