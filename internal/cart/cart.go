// Package cart maintains the authoritative cart collection and mirrors it
// into the blob store on every change.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/freshmarket/storefront/internal/events"
	"github.com/freshmarket/storefront/internal/kvstore"
	"github.com/freshmarket/storefront/internal/logging"
	"github.com/freshmarket/storefront/internal/models"
)

// Service is the cart state manager. Each mutation reads the persisted
// snapshot, rewrites it in full and persists it back; the mutex serializes
// those cycles so concurrent requests cannot lose updates.
type Service struct {
	Store  kvstore.Store
	Events events.Publisher

	mu sync.Mutex
}

func NewService(store kvstore.Store, pub events.Publisher) *Service {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Service{Store: store, Events: pub}
}

// Items returns the current cart contents in insertion order.
func (s *Service) Items(ctx context.Context) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx), nil
}

// Add inserts the product with the given quantity, or increments the
// existing line's quantity when the product is already in the cart.
func (s *Service) Add(ctx context.Context, product models.Product, quantity uint) error {
	if quantity < 1 {
		return fmt.Errorf("cart: quantity must be >= 1, got %d", quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	found := false
	for i := range items {
		if items[i].ID == product.ID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{Product: product, Quantity: quantity})
	}

	if err := s.save(ctx, items); err != nil {
		return err
	}
	s.publish(ctx, map[string]any{
		"type":      "cart_item_added",
		"productID": product.ID,
		"quantity":  quantity,
	})
	return nil
}

// Remove deletes the line with the given product id. Removing an absent id
// is a no-op, and so is a second Remove of the same id.
func (s *Service) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(ctx, productID)
}

// UpdateQuantity sets the line's quantity to exactly quantity. A value
// below 1 removes the line instead; an absent id is a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return s.remove(ctx, productID)
	}

	items := s.load(ctx)
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = uint(quantity)
			if err := s.save(ctx, items); err != nil {
				return err
			}
			s.publish(ctx, map[string]any{
				"type":      "cart_quantity_updated",
				"productID": productID,
				"quantity":  quantity,
			})
			return nil
		}
	}
	return nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(ctx, nil); err != nil {
		return err
	}
	s.publish(ctx, map[string]any{"type": "cart_cleared"})
	return nil
}

// Total recomputes the cart total from the current contents. It is never
// cached.
func (s *Service) Total(ctx context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, it := range s.load(ctx) {
		total += it.Subtotal()
	}
	return total, nil
}

func (s *Service) remove(ctx context.Context, productID string) error {
	items := s.load(ctx)
	kept := items[:0]
	for _, it := range items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}

	if err := s.save(ctx, kept); err != nil {
		return err
	}
	s.publish(ctx, map[string]any{
		"type":      "cart_item_removed",
		"productID": productID,
	})
	return nil
}

// load treats a missing or malformed blob as an empty cart. Cold start is
// not an error.
func (s *Service) load(ctx context.Context) []models.CartItem {
	data, err := s.Store.Get(ctx, kvstore.KeyCart)
	if err != nil {
		return nil
	}
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		logging.FromContext(ctx).Warn("cart_blob_malformed", "error", err)
		return nil
	}
	return items
}

func (s *Service) save(ctx context.Context, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cart: marshal failed: %w", err)
	}
	if err := s.Store.Set(ctx, kvstore.KeyCart, data); err != nil {
		return fmt.Errorf("cart: persist failed: %w", err)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, event map[string]any) {
	if err := s.Events.Publish(ctx, events.TopicCartEvents, kvstore.KeyCart, event); err != nil {
		logging.FromContext(ctx).Warn("cart_event_publish_failed", "error", err)
	}
}
