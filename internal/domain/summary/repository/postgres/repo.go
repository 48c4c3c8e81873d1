package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Conte777/tubedigest/internal/domain/summary/deps"
	"github.com/Conte777/tubedigest/internal/domain/summary/dto"
	"github.com/Conte777/tubedigest/internal/domain/summary/entities"
	sumerrors "github.com/Conte777/tubedigest/internal/domain/summary/errors"
	pkgerrors "github.com/Conte777/tubedigest/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.SummaryRepository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, s *entities.VideoSummary) (*entities.VideoSummary, bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoNothing: true,
		}).
		Create(s)
	if result.Error != nil {
		return nil, false, pkgerrors.NewDatabaseError("failed to create video summary", result.Error)
	}
	if result.RowsAffected == 1 {
		return s, true, nil
	}

	var existing entities.VideoSummary
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", s.UserID, s.VideoID).
		First(&existing).Error; err != nil {
		return nil, false, pkgerrors.NewDatabaseError("failed to load video summary", err)
	}
	return &existing, false, nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID, userID string) (*entities.VideoSummary, error) {
	var s entities.VideoSummary
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, sumerrors.ErrSummaryNotFound
		}
		return nil, pkgerrors.NewDatabaseError("failed to load video summary", result.Error)
	}
	return &s, nil
}

func (r *Repository) ListForChannel(ctx context.Context, channelID uuid.UUID, userID string) ([]entities.VideoSummary, error) {
	var summaries []entities.VideoSummary
	result := r.db.WithContext(ctx).
		Where("channel_id = ? AND user_id = ?", channelID, userID).
		Order("published_at DESC, id").
		Find(&summaries)
	if result.Error != nil {
		return nil, pkgerrors.NewDatabaseError("failed to list video summaries", result.Error)
	}
	return summaries, nil
}

// SetRead only touches rows whose state differs, so RowsAffected tells a
// real change apart from a repeated call.
func (r *Repository) SetRead(ctx context.Context, id uuid.UUID, userID string, read bool) (dto.ReadResult, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.VideoSummary{}).
		Where("id = ? AND user_id = ? AND is_read <> ?", id, userID, read).
		Updates(map[string]any{
			"is_read":    read,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return dto.ReadResult{}, pkgerrors.NewDatabaseError("failed to update read state", result.Error)
	}
	if result.RowsAffected > 0 {
		return dto.ReadResult{Found: true, Changed: true}, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.VideoSummary{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error; err != nil {
		return dto.ReadResult{}, pkgerrors.NewDatabaseError("failed to check video summary", err)
	}
	return dto.ReadResult{Found: count > 0}, nil
}
