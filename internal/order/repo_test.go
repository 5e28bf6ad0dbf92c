package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmarket/storefront/internal/kvstore"
	"github.com/freshmarket/storefront/internal/models"
)

func testOrder(id, userID string) models.Order {
	items := []models.OrderItem{
		{ID: "101", Name: "Maçã Fuji", Price: 8.90, Quantity: 2, Subtotal: 17.80},
		{ID: "301", Name: "Suco de Laranja", Price: 12.00, Quantity: 1, Subtotal: 12.00},
	}
	return models.Order{
		ID:        id,
		UserID:    userID,
		UserEmail: "user@example.com",
		UserName:  "User",
		Items:     items,
		Total:     29.80,
		Status:    models.OrderStatusReceived,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		ShippingAddress: models.ShippingAddress{
			Address: "Rua das Flores 10",
			Phone:   "11 99999-0000",
		},
	}
}

func TestCreate_PrependsNewestFirst(t *testing.T) {
	t.Parallel()

	repo := NewRepo(kvstore.NewMemory())
	ctx := context.Background()

	first := testOrder("o-1", "u-1")
	second := testOrder("o-2", "u-1")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o-2", orders[0].ID)
	assert.Equal(t, "o-1", orders[1].ID)
}

func TestCreate_ThenListReturnsEqualOrder(t *testing.T) {
	t.Parallel()

	repo := NewRepo(kvstore.NewMemory())
	ctx := context.Background()

	o := testOrder("o-1", "u-1")
	require.NoError(t, repo.Create(ctx, o))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, o, orders[0])

	var sum float64
	for _, it := range orders[0].Items {
		sum += it.Subtotal
	}
	assert.InDelta(t, sum, orders[0].Total, 1e-9)
}

func TestList_EmptyStoreReturnsEmpty(t *testing.T) {
	t.Parallel()

	repo := NewRepo(kvstore.NewMemory())
	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestListForUser_FiltersByUserID(t *testing.T) {
	t.Parallel()

	repo := NewRepo(kvstore.NewMemory())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testOrder("o-1", "u-1")))
	require.NoError(t, repo.Create(ctx, testOrder("o-2", "u-2")))
	require.NoError(t, repo.Create(ctx, testOrder("o-3", "u-1")))

	orders, err := repo.ListForUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o-3", orders[0].ID)
	assert.Equal(t, "o-1", orders[1].ID)

	orders, err = repo.ListForUser(ctx, "u-3")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUpdateStatus_ChangesOnlyStatus(t *testing.T) {
	t.Parallel()

	repo := NewRepo(kvstore.NewMemory())
	ctx := context.Background()

	o := testOrder("o-1", "u-1")
	require.NoError(t, repo.Create(ctx, o))
	require.NoError(t, repo.UpdateStatus(ctx, "o-1", models.OrderStatusDelivered))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got := orders[0]
	assert.Equal(t, models.OrderStatusDelivered, got.Status)

	want := o
	want.Status = models.OrderStatusDelivered
	assert.Equal(t, want, got)
}

func TestUpdateStatus_UnknownIDLeavesCollectionUnchanged(t *testing.T) {
	t.Parallel()

	repo := NewRepo(kvstore.NewMemory())
	ctx := context.Background()

	o := testOrder("o-1", "u-1")
	require.NoError(t, repo.Create(ctx, o))
	require.NoError(t, repo.UpdateStatus(ctx, "missing", models.OrderStatusShipping))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, o, orders[0])
}

func TestUpdateStatus_NoTransitionGraph(t *testing.T) {
	t.Parallel()

	repo := NewRepo(kvstore.NewMemory())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testOrder("o-1", "u-1")))

	// Any status may replace any other, including going backwards.
	require.NoError(t, repo.UpdateStatus(ctx, "o-1", models.OrderStatusDelivered))
	require.NoError(t, repo.UpdateStatus(ctx, "o-1", models.OrderStatusReceived))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusReceived, orders[0].Status)
}
