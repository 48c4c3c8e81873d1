package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Conte777/tubedigest/internal/domain/subscription/deps"
	"github.com/Conte777/tubedigest/internal/domain/subscription/entities"
	suberrors "github.com/Conte777/tubedigest/internal/domain/subscription/errors"
	"github.com/google/uuid"
)

// Repository is an in-memory SubscriptionRepository.
// Now is replaceable so tests can control subscription timestamps.
type Repository struct {
	mu         sync.RWMutex
	channels   map[uuid.UUID]entities.Channel
	byExternal map[string]uuid.UUID
	subs       map[string]map[uuid.UUID]time.Time

	Now func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		channels:   make(map[uuid.UUID]entities.Channel),
		byExternal: make(map[string]uuid.UUID),
		subs:       make(map[string]map[uuid.UUID]time.Time),
		Now:        func() time.Time { return time.Now().UTC() },
	}
}

var _ deps.SubscriptionRepository = (*Repository)(nil)

func (r *Repository) GetOrCreateChannel(_ context.Context, ch *entities.Channel) (*entities.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byExternal[ch.ChannelID]; ok {
		existing := r.channels[id]
		return &existing, nil
	}

	stored := *ch
	now := r.Now()
	stored.CreatedAt, stored.UpdatedAt = now, now
	r.channels[stored.ID] = stored
	r.byExternal[stored.ChannelID] = stored.ID
	return &stored, nil
}

func (r *Repository) GetChannelByID(_ context.Context, id uuid.UUID) (*entities.Channel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, ok := r.channels[id]
	if !ok {
		return nil, suberrors.ErrChannelNotFound
	}
	return &ch, nil
}

func (r *Repository) GetChannelByExternalID(ctx context.Context, externalID string) (*entities.Channel, error) {
	r.mu.RLock()
	id, ok := r.byExternal[externalID]
	r.mu.RUnlock()
	if !ok {
		return nil, suberrors.ErrChannelNotFound
	}
	return r.GetChannelByID(ctx, id)
}

func (r *Repository) AddSubscription(_ context.Context, userID string, channelID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userSubs, ok := r.subs[userID]
	if !ok {
		userSubs = make(map[uuid.UUID]time.Time)
		r.subs[userID] = userSubs
	}
	if _, exists := userSubs[channelID]; exists {
		return false, nil
	}
	userSubs[channelID] = r.Now()
	return true, nil
}

func (r *Repository) RemoveSubscription(_ context.Context, userID string, channelID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userSubs := r.subs[userID]
	if _, exists := userSubs[channelID]; !exists {
		return false, nil
	}
	delete(userSubs, channelID)
	return true, nil
}

func (r *Repository) ListByUser(_ context.Context, userID string) ([]entities.SubscribedChannel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.SubscribedChannel, 0, len(r.subs[userID]))
	for id, at := range r.subs[userID] {
		out = append(out, entities.SubscribedChannel{Channel: r.channels[id], SubscribedAt: at})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubscribedAt.Equal(out[j].SubscribedAt) {
			return out[i].SubscribedAt.After(out[j].SubscribedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *Repository) Exists(_ context.Context, userID string, channelID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.subs[userID][channelID]
	return ok, nil
}

// ChannelCount returns the number of stored channels
func (r *Repository) ChannelCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channels)
}

// SubscriptionCount returns the number of subscriptions across all users
func (r *Repository) SubscriptionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, s := range r.subs {
		n += len(s)
	}
	return n
}
