package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Conte777/tubedigest/internal/domain/user/deps"
	"github.com/Conte777/tubedigest/internal/domain/user/entities"
	usererrors "github.com/Conte777/tubedigest/internal/domain/user/errors"
)

type Repository struct {
	mu    sync.RWMutex
	users map[string]entities.User
}

func NewRepository() *Repository {
	return &Repository{users: make(map[string]entities.User)}
}

var _ deps.UserRepository = (*Repository)(nil)

func (r *Repository) Upsert(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	existing, ok := r.users[user.ID]
	if !ok {
		stored := *user
		stored.CreatedAt, stored.UpdatedAt = now, now
		r.users[user.ID] = stored
		return nil
	}

	if user.Name != "" {
		existing.Name = user.Name
	}
	if user.Email != "" {
		existing.Email = user.Email
	}
	if user.Image != "" {
		existing.Image = user.Image
	}
	existing.UpdatedAt = now
	r.users[user.ID] = existing
	return nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, usererrors.ErrUserNotFound
	}
	return &user, nil
}
