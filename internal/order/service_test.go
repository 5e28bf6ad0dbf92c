package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmarket/storefront/internal/cart"
	"github.com/freshmarket/storefront/internal/kvstore"
	"github.com/freshmarket/storefront/internal/models"
)

var testUser = models.User{
	ID:    "u-1",
	Name:  "Maria",
	Email: "maria@example.com",
	Role:  models.RoleCustomer,
}

var testShipping = models.ShippingAddress{
	Address: "Rua das Flores 10",
	Phone:   "11 99999-0000",
}

func newTestCheckout(t *testing.T) (*Service, *cart.Service) {
	t.Helper()

	store := kvstore.NewMemory()
	cartSvc := cart.NewService(store, nil)
	repo := NewRepo(store)
	svc := NewService(repo, cartSvc, nil)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, cartSvc
}

func TestCheckout_FreezesCartIntoOrder(t *testing.T) {
	t.Parallel()

	svc, cartSvc := newTestCheckout(t)
	ctx := context.Background()

	apple := models.Product{ID: "101", Name: "Maçã Fuji", Price: 8.90, Unit: "kg"}
	juice := models.Product{ID: "301", Name: "Suco de Laranja", Price: 12.00, Unit: "un"}
	require.NoError(t, cartSvc.Add(ctx, apple, 2))
	require.NoError(t, cartSvc.Add(ctx, juice, 1))

	o, err := svc.Checkout(ctx, testUser, testShipping)
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "u-1", o.UserID)
	assert.Equal(t, "maria@example.com", o.UserEmail)
	assert.Equal(t, "Maria", o.UserName)
	assert.Equal(t, models.OrderStatusReceived, o.Status)
	assert.Equal(t, testShipping, o.ShippingAddress)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), o.CreatedAt)

	require.Len(t, o.Items, 2)
	assert.Equal(t, "101", o.Items[0].ID)
	assert.InDelta(t, 17.80, o.Items[0].Subtotal, 1e-9)
	assert.Equal(t, "301", o.Items[1].ID)
	assert.InDelta(t, 12.00, o.Items[1].Subtotal, 1e-9)
	assert.InDelta(t, 29.80, o.Total, 1e-9)

	// The cart is cleared once the order exists.
	items, err := cartSvc.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// And the order is the newest entry in the repository.
	orders, err := svc.Repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, o, orders[0])
}

func TestCheckout_TotalImmuneToLaterPriceChanges(t *testing.T) {
	t.Parallel()

	svc, cartSvc := newTestCheckout(t)
	ctx := context.Background()

	require.NoError(t, cartSvc.Add(ctx, models.Product{ID: "101", Name: "Maçã Fuji", Price: 8.90}, 2))
	o, err := svc.Checkout(ctx, testUser, testShipping)
	require.NoError(t, err)

	// A new cart round at a different price must not reach the stored order.
	require.NoError(t, cartSvc.Add(ctx, models.Product{ID: "101", Name: "Maçã Fuji", Price: 99.99}, 1))

	orders, err := svc.Repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.InDelta(t, 17.80, orders[0].Total, 1e-9)
	assert.InDelta(t, 8.90, orders[0].Items[0].Price, 1e-9)
	assert.Equal(t, o.Total, orders[0].Total)
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCheckout(t)
	_, err := svc.Checkout(context.Background(), testUser, testShipping)
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_ShippingValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		shipping models.ShippingAddress
	}{
		{name: "missing address", shipping: models.ShippingAddress{Phone: "11 99999-0000"}},
		{name: "missing phone", shipping: models.ShippingAddress{Address: "Rua das Flores 10"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, cartSvc := newTestCheckout(t)
			ctx := context.Background()
			require.NoError(t, cartSvc.Add(ctx, models.Product{ID: "101", Price: 8.90}, 1))

			_, err := svc.Checkout(ctx, testUser, tt.shipping)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	svc, _ := newTestCheckout(t)
	_, err := svc.UpdateStatus(context.Background(), "o-1", "teleported")
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatus_AcceptsAnyEnumMember(t *testing.T) {
	t.Parallel()

	svc, cartSvc := newTestCheckout(t)
	ctx := context.Background()

	require.NoError(t, cartSvc.Add(ctx, models.Product{ID: "101", Price: 8.90}, 1))
	o, err := svc.Checkout(ctx, testUser, testShipping)
	require.NoError(t, err)

	for _, s := range []string{"delivered", "picking", "shipping", "received"} {
		got, err := svc.UpdateStatus(ctx, o.ID, s)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatus(s), got)
	}
}
