package deps

import (
	"context"

	"github.com/Conte777/tubedigest/internal/domain/subscription/dto"
	"github.com/Conte777/tubedigest/internal/domain/subscription/entities"
	"github.com/Conte777/tubedigest/internal/infrastructure/youtube"
	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	// GetOrCreateChannel returns the row for ch.ChannelID, inserting ch when
	// none exists. Safe under concurrent calls for the same id.
	GetOrCreateChannel(ctx context.Context, ch *entities.Channel) (*entities.Channel, error)
	GetChannelByID(ctx context.Context, id uuid.UUID) (*entities.Channel, error)
	GetChannelByExternalID(ctx context.Context, externalID string) (*entities.Channel, error)

	// AddSubscription reports false when the pair already existed.
	AddSubscription(ctx context.Context, userID string, channelID uuid.UUID) (bool, error)
	// RemoveSubscription reports false when there was nothing to remove.
	RemoveSubscription(ctx context.Context, userID string, channelID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]entities.SubscribedChannel, error)
	Exists(ctx context.Context, userID string, channelID uuid.UUID) (bool, error)
}

type MetadataFetcher interface {
	FetchChannel(ctx context.Context, pageURL string) (youtube.ChannelMetadata, error)
}

type SubscriptionUseCase interface {
	Subscribe(ctx context.Context, userID string, desc entities.ChannelDescriptor) (*dto.SubscribeResult, error)
	SubscribeByURL(ctx context.Context, userID, channelURL string) (*dto.SubscribeResult, error)
	Unsubscribe(ctx context.Context, userID string, channelID uuid.UUID) error
	ListSubscriptions(ctx context.Context, userID string) ([]entities.SubscribedChannel, error)
	IsSubscribed(ctx context.Context, userID string, channelID uuid.UUID) (bool, error)
	GetChannel(ctx context.Context, channelID uuid.UUID) (*entities.Channel, error)
	FindChannel(ctx context.Context, externalID string) (*entities.Channel, error)
}
