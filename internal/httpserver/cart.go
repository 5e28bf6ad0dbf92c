package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freshmarket/storefront/internal/cart"
	"github.com/freshmarket/storefront/internal/catalog"
	"github.com/freshmarket/storefront/internal/logging"
	"github.com/freshmarket/storefront/internal/models"
)

type CartHTTP struct {
	Svc     *cart.Service
	Catalog *catalog.Provider
}

type cartResponse struct {
	Items []models.CartItem `json:"items"`
	Total float64           `json:"total"`
}

func (h *CartHTTP) respond(c echo.Context, status int) error {
	ctx := c.Request().Context()

	items, err := h.Svc.Items(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if items == nil {
		items = []models.CartItem{}
	}
	total, err := h.Svc.Total(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(status, cartResponse{Items: items, Total: total})
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	return h.respond(c, http.StatusOK)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req struct {
		ProductID string `json:"product_id"`
		Quantity  uint   `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.ProductID == "" || req.Quantity < 1 {
		l.Warn("add_to_cart_error", "status", 400)
		return echo.NewHTTPError(http.StatusBadRequest, "quantity>0 and product_id required")
	}

	product, err := h.Catalog.FindProduct(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			l.Warn("add_to_cart_error", "status", 404, "productID", req.ProductID)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if err := h.Svc.Add(ctx, product, req.Quantity); err != nil {
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("cart_item_added", "productID", req.ProductID, "quantity", req.Quantity)
	return h.respond(c, http.StatusCreated)
}

func (h *CartHTTP) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_quantity")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_quantity_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	productID := c.Param("id")
	if err := h.Svc.UpdateQuantity(ctx, productID, req.Quantity); err != nil {
		l.Error("update_quantity_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("cart_quantity_updated", "productID", productID, "quantity", req.Quantity)
	return h.respond(c, http.StatusOK)
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	productID := c.Param("id")
	if err := h.Svc.Remove(ctx, productID); err != nil {
		l.Error("remove_from_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("cart_item_removed", "productID", productID)
	return h.respond(c, http.StatusOK)
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	if err := h.Svc.Clear(ctx); err != nil {
		l.Error("clear_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("cart_cleared")
	return h.respond(c, http.StatusOK)
}
