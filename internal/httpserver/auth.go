package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freshmarket/storefront/internal/auth"
	"github.com/freshmarket/storefront/internal/logging"
	"github.com/freshmarket/storefront/internal/models"
	"github.com/freshmarket/storefront/internal/session"
)

// AuthHTTP serves the stubbed login. No password is checked anywhere; the
// request body simply becomes the active user.
type AuthHTTP struct {
	Sessions *session.Manager
	Secret   []byte
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Role    string `json:"role"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Email == "" {
		l.Warn("login_error", "status", 400)
		return echo.NewHTTPError(http.StatusBadRequest, "email required")
	}

	role := models.RoleCustomer
	if req.Role == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}

	user, err := h.Sessions.Login(ctx, models.User{
		Name:    req.Name,
		Email:   req.Email,
		Role:    role,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		l.Error("login_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	token, err := auth.SignSessionToken(user, h.Secret, auth.SessionTTL)
	if err != nil {
		l.Error("login_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	c.SetCookie(sessionCookie(token, time.Now().Add(auth.SessionTTL)))

	l.Info("login_success", "userID", user.ID, "role", user.Role)
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.logout")

	if err := h.Sessions.Logout(ctx); err != nil {
		l.Error("logout_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	c.SetCookie(sessionCookie("", time.Unix(0, 0)))

	l.Info("logout_success")
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.Sessions.Current(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(http.StatusOK, user)
}

func sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
