package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freshmarket/storefront/internal/auth"
	"github.com/freshmarket/storefront/internal/logging"
	"github.com/freshmarket/storefront/internal/models"
	"github.com/freshmarket/storefront/internal/order"
	"github.com/freshmarket/storefront/internal/session"
)

type OrderHTTP struct {
	Svc      *order.Service
	Repo     *order.Repo
	Sessions *session.Manager
}

func (h *OrderHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.checkout")

	var req struct {
		Address   string `json:"address"`
		Reference string `json:"reference"`
		Phone     string `json:"phone"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("checkout_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Sessions.Current(ctx)
	if err != nil {
		l.Warn("checkout_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	shipping := models.ShippingAddress{
		Address:   req.Address,
		Reference: req.Reference,
		Phone:     req.Phone,
	}
	o, err := h.Svc.Checkout(ctx, user, shipping)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrValidation):
			l.Warn("checkout_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrEmptyCart):
			l.Warn("checkout_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "no items in cart")
		default:
			l.Error("checkout_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	l.Info("checkout_success", "orderID", o.ID, "total", o.Total)
	return c.JSON(http.StatusCreated, o)
}

// ListMyOrders returns the caller's order history, newest first.
func (h *OrderHTTP) ListMyOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_mine")

	userID := auth.UserIDFromContext(c)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := h.Repo.ListForUser(ctx, userID)
	if err != nil {
		l.Error("list_orders_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// ListAllOrders backs the admin panel.
func (h *OrderHTTP) ListAllOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list_all")

	orders, err := h.Repo.List(ctx)
	if err != nil {
		l.Error("list_orders_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_status_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	orderID := c.Param("id")
	status, err := h.Svc.UpdateStatus(ctx, orderID, req.Status)
	if err != nil {
		if errors.Is(err, order.ErrValidation) {
			l.Warn("update_status_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("update_status_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("order_status_updated", "orderID", orderID, "newStatus", status)
	return c.JSON(http.StatusOK, map[string]any{"id": orderID, "status": status})
}
