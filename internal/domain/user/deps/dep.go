package deps

import (
	"context"

	"github.com/Conte777/tubedigest/internal/domain/user/entities"
)

type UserRepository interface {
	// Upsert inserts the user or refreshes the non-empty profile fields
	Upsert(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
}

type UserUseCase interface {
	EnsureUser(ctx context.Context, user entities.User) error
}
