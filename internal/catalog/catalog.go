// Package catalog exposes read-only access to the compiled-in product and
// category sets. There are no mutation operations.
package catalog

import (
	"errors"
	"strings"

	"github.com/freshmarket/storefront/internal/models"
)

var ErrNotFound = errors.New("catalog: not found")

type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

// Categories returns the category set in declaration order.
func (p *Provider) Categories() []models.Category {
	out := make([]models.Category, len(categories))
	copy(out, categories)
	return out
}

// Products returns the full product set in declaration order.
func (p *Provider) Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

func (p *Provider) FindProduct(id string) (models.Product, error) {
	for _, prod := range products {
		if prod.ID == id {
			return prod, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (p *Provider) FindCategory(id string) (models.Category, error) {
	for _, cat := range categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	return models.Category{}, ErrNotFound
}

// Filter narrows the product set. Zero-value fields match everything, so
// Filter{} returns the whole catalog.
type Filter struct {
	// Query matches the product name, case-insensitive substring.
	Query string
	// CategoryID matches by exact category id.
	CategoryID string
}

func (p *Provider) Filter(f Filter) []models.Product {
	q := strings.ToLower(f.Query)

	var out []models.Product
	for _, prod := range products {
		if f.CategoryID != "" && prod.CategoryID != f.CategoryID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(prod.Name), q) {
			continue
		}
		out = append(out, prod)
	}
	return out
}
