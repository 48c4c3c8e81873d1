package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Conte777/tubedigest/internal/domain/subscription/deps"
	"github.com/Conte777/tubedigest/internal/domain/subscription/entities"
	suberrors "github.com/Conte777/tubedigest/internal/domain/subscription/errors"
	pkgerrors "github.com/Conte777/tubedigest/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.SubscriptionRepository {
	return &Repository{db: db}
}

func (r *Repository) GetOrCreateChannel(ctx context.Context, ch *entities.Channel) (*entities.Channel, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "channel_id"}},
			DoNothing: true,
		}).
		Create(ch)
	if result.Error != nil {
		return nil, pkgerrors.NewDatabaseError("failed to create channel", result.Error)
	}

	if result.RowsAffected == 1 {
		return ch, nil
	}

	// lost the race or the channel already existed
	return r.GetChannelByExternalID(ctx, ch.ChannelID)
}

func (r *Repository) GetChannelByID(ctx context.Context, id uuid.UUID) (*entities.Channel, error) {
	return r.firstChannel(ctx, "id = ?", id)
}

func (r *Repository) GetChannelByExternalID(ctx context.Context, externalID string) (*entities.Channel, error) {
	return r.firstChannel(ctx, "channel_id = ?", externalID)
}

func (r *Repository) firstChannel(ctx context.Context, query string, arg any) (*entities.Channel, error) {
	var ch entities.Channel
	result := r.db.WithContext(ctx).Where(query, arg).First(&ch)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, suberrors.ErrChannelNotFound
		}
		return nil, pkgerrors.NewDatabaseError("failed to load channel", result.Error)
	}
	return &ch, nil
}

func (r *Repository) AddSubscription(ctx context.Context, userID string, channelID uuid.UUID) (bool, error) {
	sub := entities.Subscription{
		UserID:       userID,
		ChannelID:    channelID,
		SubscribedAt: time.Now().UTC(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&sub)
	if result.Error != nil {
		return false, pkgerrors.NewDatabaseError("failed to create subscription", result.Error)
	}

	return result.RowsAffected == 1, nil
}

func (r *Repository) RemoveSubscription(ctx context.Context, userID string, channelID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND channel_id = ?", userID, channelID).
		Delete(&entities.Subscription{})
	if result.Error != nil {
		return false, pkgerrors.NewDatabaseError("failed to delete subscription", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]entities.SubscribedChannel, error) {
	var channels []entities.SubscribedChannel
	result := r.db.WithContext(ctx).
		Table("user_channel_subscriptions AS s").
		Select("c.*, s.subscribed_at").
		Joins("JOIN youtube_channels AS c ON c.id = s.channel_id").
		Where("s.user_id = ?", userID).
		Order("s.subscribed_at DESC, c.id").
		Scan(&channels)
	if result.Error != nil {
		return nil, pkgerrors.NewDatabaseError("failed to list subscriptions", result.Error)
	}

	return channels, nil
}

func (r *Repository) Exists(ctx context.Context, userID string, channelID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&entities.Subscription{}).
		Where("user_id = ? AND channel_id = ?", userID, channelID).
		Count(&count)
	if result.Error != nil {
		return false, pkgerrors.NewDatabaseError("failed to check subscription", result.Error)
	}

	return count > 0, nil
}
