// Package session tracks the active user. Login is a stub: no credentials
// are checked, the user record is simply persisted and deleted again on
// logout.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/freshmarket/storefront/internal/events"
	"github.com/freshmarket/storefront/internal/kvstore"
	"github.com/freshmarket/storefront/internal/logging"
	"github.com/freshmarket/storefront/internal/models"
)

var ErrNotLoggedIn = errors.New("session: not logged in")

type Manager struct {
	Store  kvstore.Store
	Events events.Publisher
}

func NewManager(store kvstore.Store, pub events.Publisher) *Manager {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Manager{Store: store, Events: pub}
}

// Current returns the stored user. A missing or malformed blob reads as
// logged out.
func (m *Manager) Current(ctx context.Context) (models.User, error) {
	data, err := m.Store.Get(ctx, kvstore.KeyUser)
	if err != nil {
		return models.User{}, ErrNotLoggedIn
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		logging.FromContext(ctx).Warn("user_blob_malformed", "error", err)
		return models.User{}, ErrNotLoggedIn
	}
	return u, nil
}

// Login persists the user as the active session. An empty id gets a fresh
// one, an empty role defaults to customer.
func (m *Manager) Login(ctx context.Context, u models.User) (models.User, error) {
	if u.Email == "" {
		return models.User{}, fmt.Errorf("session: email required")
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = models.RoleCustomer
	}

	data, err := json.Marshal(u)
	if err != nil {
		return models.User{}, fmt.Errorf("session: marshal failed: %w", err)
	}
	if err := m.Store.Set(ctx, kvstore.KeyUser, data); err != nil {
		return models.User{}, fmt.Errorf("session: persist failed: %w", err)
	}

	m.publish(ctx, map[string]any{"type": "user_logged_in", "userID": u.ID, "role": u.Role})
	return u, nil
}

// Logout destroys the session record.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.Store.Delete(ctx, kvstore.KeyUser); err != nil {
		return fmt.Errorf("session: delete failed: %w", err)
	}
	m.publish(ctx, map[string]any{"type": "user_logged_out"})
	return nil
}

func (m *Manager) publish(ctx context.Context, event map[string]any) {
	if err := m.Events.Publish(ctx, events.TopicUserEvents, kvstore.KeyUser, event); err != nil {
		logging.FromContext(ctx).Warn("user_event_publish_failed", "error", err)
	}
}
