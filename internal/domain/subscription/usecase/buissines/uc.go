package buissines

import (
	"context"
	"strings"
	"time"

	"github.com/Conte777/tubedigest/internal/domain/events"
	"github.com/Conte777/tubedigest/internal/domain/identity"
	"github.com/Conte777/tubedigest/internal/domain/subscription/deps"
	"github.com/Conte777/tubedigest/internal/domain/subscription/dto"
	"github.com/Conte777/tubedigest/internal/domain/subscription/entities"
	suberrors "github.com/Conte777/tubedigest/internal/domain/subscription/errors"
	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	pkgerrors "github.com/Conte777/tubedigest/pkg/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type UseCase struct {
	repo      deps.SubscriptionRepository
	fetcher   deps.MetadataFetcher
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

func NewUseCase(
	repo deps.SubscriptionRepository,
	fetcher deps.MetadataFetcher,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		repo:      repo,
		fetcher:   fetcher,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

var _ deps.SubscriptionUseCase = (*UseCase)(nil)

// Subscribe resolves the channel row for desc, creating it on first sight,
// and links it to userID. Subscribing twice is a successful no-op reported
// through AlreadySubscribed.
func (u *UseCase) Subscribe(ctx context.Context, userID string, desc entities.ChannelDescriptor) (*dto.SubscribeResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, suberrors.ErrInvalidUserID
	}

	desc.ExternalID = strings.TrimSpace(desc.ExternalID)
	desc.Name = strings.TrimSpace(desc.Name)
	if desc.ExternalID == "" {
		return nil, suberrors.ErrChannelIDRequired
	}
	if desc.Name == "" {
		return nil, suberrors.ErrChannelNameRequired
	}
	if strings.TrimSpace(desc.URL) == "" {
		desc.URL = identity.ChannelRef{ID: desc.ExternalID, Form: identity.FormChannel}.CanonicalURL()
	}

	channel, err := u.repo.GetOrCreateChannel(ctx, desc.NewChannel())
	if err != nil {
		u.logger.Error().Err(err).Str("channel_id", desc.ExternalID).Msg("failed to resolve channel")
		return nil, err
	}

	created, err := u.repo.AddSubscription(ctx, userID, channel.ID)
	if err != nil {
		u.logger.Error().Err(err).
			Str("user_id", userID).
			Str("channel_id", channel.ChannelID).
			Msg("failed to add subscription")
		return nil, err
	}

	if !created {
		if u.metrics != nil {
			u.metrics.SubscriptionsDeduplicated.Inc()
		}
		u.logger.Debug().Str("user_id", userID).Str("channel_id", channel.ChannelID).Msg("already subscribed")
		return &dto.SubscribeResult{Channel: channel, AlreadySubscribed: true}, nil
	}

	if u.metrics != nil {
		u.metrics.SubscriptionsCreated.Inc()
	}
	u.publish(ctx, events.TopicSubscriptionCreated, userID, channel)

	u.logger.Info().
		Str("user_id", userID).
		Str("channel_id", channel.ChannelID).
		Str("channel_name", channel.Name).
		Msg("subscribed to channel")

	return &dto.SubscribeResult{Channel: channel}, nil
}

// SubscribeByURL resolves a channel URL and subscribes to it. Channel
// metadata is fetched only for channels not seen before; a failed fetch
// stores the channel under its identifier.
func (u *UseCase) SubscribeByURL(ctx context.Context, userID, channelURL string) (*dto.SubscribeResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, suberrors.ErrInvalidUserID
	}
	if strings.TrimSpace(channelURL) == "" {
		return nil, suberrors.ErrChannelURLRequired
	}

	ref, err := identity.ResolveChannel(channelURL)
	if err != nil {
		return nil, err
	}

	desc := entities.ChannelDescriptor{
		ExternalID: ref.ID,
		Name:       ref.ID,
		URL:        ref.CanonicalURL(),
	}

	_, err = u.repo.GetChannelByExternalID(ctx, ref.ID)
	switch {
	case err == nil:
		// known channel, stored metadata wins
	case pkgerrors.IsNotFoundError(err):
		u.enrich(ctx, &desc)
	default:
		u.logger.Error().Err(err).Str("channel_id", ref.ID).Msg("failed to look up channel")
		return nil, err
	}

	return u.Subscribe(ctx, userID, desc)
}

func (u *UseCase) enrich(ctx context.Context, desc *entities.ChannelDescriptor) {
	if u.fetcher == nil {
		return
	}

	meta, err := u.fetcher.FetchChannel(ctx, desc.URL)
	if err != nil {
		u.logger.Warn().Err(err).
			Str("channel_id", desc.ExternalID).
			Msg("channel metadata unavailable, using identifier as name")
		return
	}

	if meta.Name != "" {
		desc.Name = meta.Name
	}
	desc.Description = meta.Description
	desc.ThumbnailURL = meta.ThumbnailURL
}

// Unsubscribe removes the subscription. Removing a subscription that does
// not exist is not an error.
func (u *UseCase) Unsubscribe(ctx context.Context, userID string, channelID uuid.UUID) error {
	if strings.TrimSpace(userID) == "" {
		return suberrors.ErrInvalidUserID
	}
	if channelID == uuid.Nil {
		return suberrors.ErrInvalidChannelID
	}

	removed, err := u.repo.RemoveSubscription(ctx, userID, channelID)
	if err != nil {
		u.logger.Error().Err(err).
			Str("user_id", userID).
			Str("channel_id", channelID.String()).
			Msg("failed to remove subscription")
		return err
	}
	if !removed {
		return nil
	}

	if u.metrics != nil {
		u.metrics.Unsubscriptions.Inc()
	}

	channel, err := u.repo.GetChannelByID(ctx, channelID)
	if err != nil {
		u.logger.Warn().Err(err).Str("channel_id", channelID.String()).Msg("unsubscribed channel not found")
		channel = &entities.Channel{ID: channelID}
	}
	u.publish(ctx, events.TopicSubscriptionCancelled, userID, channel)

	u.logger.Info().Str("user_id", userID).Str("channel_id", channel.ChannelID).Msg("unsubscribed from channel")
	return nil
}

// ListSubscriptions returns the user's channels, most recently subscribed first
func (u *UseCase) ListSubscriptions(ctx context.Context, userID string) ([]entities.SubscribedChannel, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, suberrors.ErrInvalidUserID
	}

	channels, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list subscriptions")
		return nil, err
	}
	return channels, nil
}

func (u *UseCase) IsSubscribed(ctx context.Context, userID string, channelID uuid.UUID) (bool, error) {
	if strings.TrimSpace(userID) == "" {
		return false, suberrors.ErrInvalidUserID
	}
	return u.repo.Exists(ctx, userID, channelID)
}

func (u *UseCase) GetChannel(ctx context.Context, channelID uuid.UUID) (*entities.Channel, error) {
	return u.repo.GetChannelByID(ctx, channelID)
}

// FindChannel looks a channel up by its YouTube identifier
func (u *UseCase) FindChannel(ctx context.Context, externalID string) (*entities.Channel, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, suberrors.ErrChannelIDRequired
	}
	return u.repo.GetChannelByExternalID(ctx, externalID)
}

func (u *UseCase) publish(ctx context.Context, topic, userID string, channel *entities.Channel) {
	event := events.SubscriptionChanged{
		UserID:      userID,
		ChannelID:   channel.ChannelID,
		ChannelName: channel.Name,
		ChannelURL:  channel.URL,
		OccurredAt:  time.Now().UTC(),
	}
	if err := u.publisher.SendToTopic(ctx, topic, userID, event); err != nil {
		u.logger.Error().Err(err).
			Str("topic", topic).
			Str("user_id", userID).
			Msg("failed to publish subscription event")
	}
}
