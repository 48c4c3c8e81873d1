package postgres

import (
	"context"
	"errors"

	"github.com/Conte777/tubedigest/internal/domain/preference/deps"
	"github.com/Conte777/tubedigest/internal/domain/preference/entities"
	preferrors "github.com/Conte777/tubedigest/internal/domain/preference/errors"
	pkgerrors "github.com/Conte777/tubedigest/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.PreferenceRepository {
	return &Repository{db: db}
}

func (r *Repository) Upsert(ctx context.Context, pref *entities.NotificationPreference) (*entities.NotificationPreference, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"notification_type", "notification_value", "categories", "updated_at"}),
		}).
		Create(pref)
	if result.Error != nil {
		return nil, pkgerrors.NewDatabaseError("failed to save notification preference", result.Error)
	}

	return r.GetByUserID(ctx, pref.UserID)
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*entities.NotificationPreference, error) {
	var pref entities.NotificationPreference
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&pref)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, preferrors.ErrPreferenceNotFound
		}
		return nil, pkgerrors.NewDatabaseError("failed to load notification preference", result.Error)
	}
	return &pref, nil
}

func (r *Repository) SetEnabled(ctx context.Context, userID string, enabled bool) error {
	result := r.db.WithContext(ctx).
		Model(&entities.NotificationPreference{}).
		Where("user_id = ?", userID).
		Update("enabled", enabled)
	if result.Error != nil {
		return pkgerrors.NewDatabaseError("failed to update notification preference", result.Error)
	}
	if result.RowsAffected == 0 {
		return preferrors.ErrPreferenceNotFound
	}
	return nil
}
