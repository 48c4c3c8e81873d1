package cached

import (
	"context"
	"time"

	"github.com/Conte777/tubedigest/internal/domain/subscription/deps"
	"github.com/Conte777/tubedigest/internal/domain/subscription/entities"
	"github.com/Conte777/tubedigest/internal/infrastructure/cache"
	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repository wraps a SubscriptionRepository with a Redis read cache.
// Subscription lists and channel rows are served from cache when possible;
// subscription writes invalidate the owner's list.
type Repository struct {
	inner   deps.SubscriptionRepository
	cache   *cache.Redis
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

func NewRepository(inner deps.SubscriptionRepository, c *cache.Redis, ttl time.Duration, m *metrics.Metrics, logger zerolog.Logger) *Repository {
	return &Repository{inner: inner, cache: c, ttl: ttl, metrics: m, logger: logger}
}

var _ deps.SubscriptionRepository = (*Repository)(nil)

func listKey(userID string) string {
	return "tubedigest:subscriptions:" + userID
}

func channelKey(id uuid.UUID) string {
	return "tubedigest:channel:" + id.String()
}

func externalKey(id string) string {
	return "tubedigest:channel-ext:" + id
}

func (r *Repository) GetOrCreateChannel(ctx context.Context, ch *entities.Channel) (*entities.Channel, error) {
	return r.inner.GetOrCreateChannel(ctx, ch)
}

func (r *Repository) GetChannelByID(ctx context.Context, id uuid.UUID) (*entities.Channel, error) {
	key := channelKey(id)
	if v, err := cache.Get[entities.Channel](ctx, r.cache, key); err == nil {
		r.hit(true)
		return &v, nil
	}
	r.hit(false)

	ch, err := r.inner.GetChannelByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.set(ctx, key, ch)
	return ch, nil
}

func (r *Repository) GetChannelByExternalID(ctx context.Context, externalID string) (*entities.Channel, error) {
	key := externalKey(externalID)
	if v, err := cache.Get[entities.Channel](ctx, r.cache, key); err == nil {
		r.hit(true)
		return &v, nil
	}
	r.hit(false)

	ch, err := r.inner.GetChannelByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	r.set(ctx, key, ch)
	return ch, nil
}

func (r *Repository) AddSubscription(ctx context.Context, userID string, channelID uuid.UUID) (bool, error) {
	created, err := r.inner.AddSubscription(ctx, userID, channelID)
	if err != nil {
		return false, err
	}
	if created {
		r.invalidate(ctx, listKey(userID))
	}
	return created, nil
}

func (r *Repository) RemoveSubscription(ctx context.Context, userID string, channelID uuid.UUID) (bool, error) {
	removed, err := r.inner.RemoveSubscription(ctx, userID, channelID)
	if err != nil {
		return false, err
	}
	if removed {
		r.invalidate(ctx, listKey(userID))
	}
	return removed, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]entities.SubscribedChannel, error) {
	key := listKey(userID)
	if v, err := cache.Get[[]entities.SubscribedChannel](ctx, r.cache, key); err == nil {
		r.hit(true)
		return v, nil
	}
	r.hit(false)

	channels, err := r.inner.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	r.set(ctx, key, channels)
	return channels, nil
}

func (r *Repository) Exists(ctx context.Context, userID string, channelID uuid.UUID) (bool, error) {
	return r.inner.Exists(ctx, userID, channelID)
}

func (r *Repository) set(ctx context.Context, key string, v any) {
	if err := cache.Set(ctx, r.cache, key, v, r.ttl); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (r *Repository) invalidate(ctx context.Context, key string) {
	if err := cache.Del(ctx, r.cache, key); err != nil {
		// a stale list lives at most one TTL
		r.logger.Warn().Err(err).Str("key", key).Dur("ttl", r.ttl).Msg("cache invalidation failed")
	}
}

func (r *Repository) hit(ok bool) {
	if r.metrics == nil {
		return
	}
	if ok {
		r.metrics.CacheHits.WithLabelValues("hit").Inc()
	} else {
		r.metrics.CacheHits.WithLabelValues("miss").Inc()
	}
}
