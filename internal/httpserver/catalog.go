package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freshmarket/storefront/internal/catalog"
	"github.com/freshmarket/storefront/internal/logging"
	"github.com/freshmarket/storefront/internal/models"
	"github.com/freshmarket/storefront/internal/search"
)

type CatalogHTTP struct {
	Catalog *catalog.Provider
	// Search is nil when Elasticsearch is not configured; queries then
	// fall back to the catalog's substring filter.
	Search *search.Client
}

func (h *CatalogHTTP) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Catalog.Categories())
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	f := catalog.Filter{
		Query:      c.QueryParam("q"),
		CategoryID: c.QueryParam("category"),
	}
	products := h.Catalog.Filter(f)
	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	p, err := h.Catalog.FindProduct(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.search")

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q required")
	}

	if h.Search == nil {
		return c.JSON(http.StatusOK, h.Catalog.Filter(catalog.Filter{Query: q}))
	}

	products, err := h.Search.Search(ctx, q, 20)
	if err != nil {
		l.Error("search_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, products)
}
