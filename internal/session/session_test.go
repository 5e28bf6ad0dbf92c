package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmarket/storefront/internal/kvstore"
	"github.com/freshmarket/storefront/internal/models"
)

func TestLogin_AssignsDefaults(t *testing.T) {
	t.Parallel()

	m := NewManager(kvstore.NewMemory(), nil)
	ctx := context.Background()

	u, err := m.Login(ctx, models.User{Name: "Maria", Email: "maria@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, models.RoleCustomer, u.Role)

	got, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestLogin_RequiresEmail(t *testing.T) {
	t.Parallel()

	m := NewManager(kvstore.NewMemory(), nil)
	_, err := m.Login(context.Background(), models.User{Name: "Maria"})
	require.Error(t, err)
}

func TestLogout_DestroysSession(t *testing.T) {
	t.Parallel()

	m := NewManager(kvstore.NewMemory(), nil)
	ctx := context.Background()

	_, err := m.Login(ctx, models.User{Email: "maria@example.com"})
	require.NoError(t, err)
	require.NoError(t, m.Logout(ctx))

	_, err = m.Current(ctx)
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestCurrent_NoSession(t *testing.T) {
	t.Parallel()

	m := NewManager(kvstore.NewMemory(), nil)
	_, err := m.Current(context.Background())
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestCurrent_MalformedBlobReadsAsLoggedOut(t *testing.T) {
	t.Parallel()

	store := kvstore.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, kvstore.KeyUser, []byte("{broken")))

	m := NewManager(store, nil)
	_, err := m.Current(ctx)
	require.ErrorIs(t, err, ErrNotLoggedIn)
}
