package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/freshmarket/storefront/internal/cart"
	"github.com/freshmarket/storefront/internal/events"
	"github.com/freshmarket/storefront/internal/logging"
	"github.com/freshmarket/storefront/internal/models"
)

var (
	ErrValidation = errors.New("validation")
	ErrEmptyCart  = errors.New("no items in cart")
)

type Service struct {
	Repo   *Repo
	Cart   *cart.Service
	Events events.Publisher

	// now is swapped out in tests.
	now func() time.Time
}

func NewService(repo *Repo, cartSvc *cart.Service, pub events.Publisher) *Service {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Service{Repo: repo, Cart: cartSvc, Events: pub, now: time.Now}
}

// Checkout freezes the current cart into a new order for the given user and
// clears the cart. The order items are copies: later catalog price changes
// do not reach them, and the total is fixed at creation.
func (s *Service) Checkout(ctx context.Context, user models.User, shipping models.ShippingAddress) (models.Order, error) {
	if shipping.Address == "" {
		return models.Order{}, fmt.Errorf("%w: shipping address required", ErrValidation)
	}
	if shipping.Phone == "" {
		return models.Order{}, fmt.Errorf("%w: phone required", ErrValidation)
	}

	items, err := s.Cart.Items(ctx)
	if err != nil {
		return models.Order{}, err
	}
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	var total float64
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		sub := it.Subtotal()
		orderItems = append(orderItems, models.OrderItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Subtotal: sub,
			Image:    it.Image,
		})
		total += sub
	}

	o := models.Order{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		UserEmail:       user.Email,
		UserName:        user.Name,
		Items:           orderItems,
		Total:           total,
		Status:          models.OrderStatusReceived,
		CreatedAt:       s.now().UTC(),
		ShippingAddress: shipping,
	}

	if err := s.Repo.Create(ctx, o); err != nil {
		return models.Order{}, err
	}
	if err := s.Cart.Clear(ctx); err != nil {
		return models.Order{}, err
	}

	s.publish(ctx, map[string]any{
		"type":    "order_created",
		"orderID": o.ID,
		"userID":  o.UserID,
		"total":   o.Total,
	})
	return o, nil
}

// UpdateStatus sets the order's status to any member of the enum. There is
// no transition graph: delivered back to received is accepted.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status string) (models.OrderStatus, error) {
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.Repo.UpdateStatus(ctx, orderID, parsed); err != nil {
		return "", err
	}
	s.publish(ctx, map[string]any{
		"type":    "order_status_updated",
		"orderID": orderID,
		"status":  parsed,
	})
	return parsed, nil
}

func (s *Service) publish(ctx context.Context, event map[string]any) {
	if err := s.Events.Publish(ctx, events.TopicOrderEvents, "orders", event); err != nil {
		logging.FromContext(ctx).Warn("order_event_publish_failed", "error", err)
	}
}
