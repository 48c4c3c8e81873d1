package postgres

import (
	"context"
	"errors"

	"github.com/Conte777/tubedigest/internal/domain/user/deps"
	"github.com/Conte777/tubedigest/internal/domain/user/entities"
	usererrors "github.com/Conte777/tubedigest/internal/domain/user/errors"
	pkgerrors "github.com/Conte777/tubedigest/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.UserRepository {
	return &Repository{db: db}
}

func (r *Repository) Upsert(ctx context.Context, user *entities.User) error {
	columns := []string{"updated_at"}
	if user.Name != "" {
		columns = append(columns, "name")
	}
	if user.Email != "" {
		columns = append(columns, "email")
	}
	if user.Image != "" {
		columns = append(columns, "image")
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(user)
	if result.Error != nil {
		return pkgerrors.NewDatabaseError("failed to save user", result.Error)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound
		}
		return nil, pkgerrors.NewDatabaseError("failed to load user", result.Error)
	}
	return &user, nil
}
