package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freshmarket/storefront/internal/auth"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMW := &auth.Middleware{Secret: d.JWTSecret}

	v1 := e.Group("/api/v1")

	v1.POST("/login", d.AuthHandler.Login)
	v1.POST("/logout", d.AuthHandler.Logout)
	v1.GET("/me", d.AuthHandler.Me, authMW.RequireLogin)

	v1.GET("/categories", d.CatalogHandler.GetCategories)
	v1.GET("/products", d.CatalogHandler.GetProducts)
	v1.GET("/products/:id", d.CatalogHandler.GetProduct)
	v1.GET("/search", d.CatalogHandler.SearchProducts)

	cart := v1.Group("/cart", authMW.RequireLogin)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("/items", d.CartHandler.AddToCart)
	cart.PATCH("/items/:id", d.CartHandler.UpdateQuantity)
	cart.DELETE("/items/:id", d.CartHandler.RemoveFromCart)
	cart.DELETE("", d.CartHandler.ClearCart)
	cart.POST("/checkout", d.OrderHandler.Checkout)

	v1.GET("/orders", d.OrderHandler.ListMyOrders, authMW.RequireLogin)

	admin := v1.Group("/admin", authMW.AdminOnly)
	admin.GET("/orders", d.OrderHandler.ListAllOrders)
	admin.PATCH("/orders/:id/status", d.OrderHandler.UpdateStatus)
}
