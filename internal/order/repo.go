// Package order persists the order collection and runs checkout. Orders
// are append-only: once created, status is the only field ever rewritten.
package order

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/freshmarket/storefront/internal/kvstore"
	"github.com/freshmarket/storefront/internal/logging"
	"github.com/freshmarket/storefront/internal/models"
)

// Repo stores the whole order collection as one blob, newest first. The
// mutex serializes read-rewrite-persist cycles.
type Repo struct {
	Store kvstore.Store

	mu sync.Mutex
}

func NewRepo(store kvstore.Store) *Repo {
	return &Repo{Store: store}
}

// Create prepends the order and persists the full collection. The caller
// generates the id; no collision detection is performed.
func (r *Repo) Create(ctx context.Context, o models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := append([]models.Order{o}, r.load(ctx)...)
	return r.save(ctx, orders)
}

// List returns every order, newest first, or an empty slice when none
// exist yet.
func (r *Repo) List(ctx context.Context) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx), nil
}

// ListForUser is a filtered view over List, not a separate store.
func (r *Repo) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Order
	for _, o := range r.load(ctx) {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// UpdateStatus replaces the status of the matching order and leaves every
// other field untouched. An unknown id rewrites the collection unchanged.
func (r *Repo) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := r.load(ctx)
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			break
		}
	}
	return r.save(ctx, orders)
}

func (r *Repo) load(ctx context.Context) []models.Order {
	data, err := r.Store.Get(ctx, kvstore.KeyOrders)
	if err != nil {
		return []models.Order{}
	}
	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		logging.FromContext(ctx).Warn("orders_blob_malformed", "error", err)
		return []models.Order{}
	}
	return orders
}

func (r *Repo) save(ctx context.Context, orders []models.Order) error {
	if orders == nil {
		orders = []models.Order{}
	}
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("order: marshal failed: %w", err)
	}
	if err := r.Store.Set(ctx, kvstore.KeyOrders, data); err != nil {
		return fmt.Errorf("order: persist failed: %w", err)
	}
	return nil
}
