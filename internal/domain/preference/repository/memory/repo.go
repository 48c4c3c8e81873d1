package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Conte777/tubedigest/internal/domain/preference/deps"
	"github.com/Conte777/tubedigest/internal/domain/preference/entities"
	preferrors "github.com/Conte777/tubedigest/internal/domain/preference/errors"
	"github.com/lib/pq"
)

// Repository keeps preferences in process memory. It backs tests and local runs without Postgres.
type Repository struct {
	mu     sync.RWMutex
	byUser map[string]entities.NotificationPreference
	writes int
}

func NewRepository() *Repository {
	return &Repository{byUser: make(map[string]entities.NotificationPreference)}
}

var _ deps.PreferenceRepository = (*Repository)(nil)

func (r *Repository) Upsert(_ context.Context, pref *entities.NotificationPreference) (*entities.NotificationPreference, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	r.writes++

	stored, ok := r.byUser[pref.UserID]
	if !ok {
		stored = *pref
		stored.CreatedAt = now
	} else {
		stored.ChannelType = pref.ChannelType
		stored.Destination = pref.Destination
	}
	stored.Categories = append(pq.StringArray(nil), pref.Categories...)
	stored.UpdatedAt = now
	r.byUser[pref.UserID] = stored

	out := stored
	return &out, nil
}

func (r *Repository) GetByUserID(_ context.Context, userID string) (*entities.NotificationPreference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pref, ok := r.byUser[userID]
	if !ok {
		return nil, preferrors.ErrPreferenceNotFound
	}
	return &pref, nil
}

func (r *Repository) SetEnabled(_ context.Context, userID string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pref, ok := r.byUser[userID]
	if !ok {
		return preferrors.ErrPreferenceNotFound
	}
	pref.Enabled = enabled
	r.byUser[userID] = pref
	r.writes++
	return nil
}

// Len returns the number of stored preferences
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser)
}

// Writes returns the number of write operations performed
func (r *Repository) Writes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.writes
}
