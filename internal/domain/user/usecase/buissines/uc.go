package buissines

import (
	"context"
	"strings"

	"github.com/Conte777/tubedigest/internal/domain/user/deps"
	"github.com/Conte777/tubedigest/internal/domain/user/entities"
	usererrors "github.com/Conte777/tubedigest/internal/domain/user/errors"
	"github.com/rs/zerolog"
)

type UseCase struct {
	repo   deps.UserRepository
	logger zerolog.Logger
}

func NewUseCase(repo deps.UserRepository, logger zerolog.Logger) *UseCase {
	return &UseCase{repo: repo, logger: logger}
}

// EnsureUser records the caller's profile so their rows have an owner to
// reference. Fields left empty keep their stored values.
func (u *UseCase) EnsureUser(ctx context.Context, user entities.User) error {
	user.ID = strings.TrimSpace(user.ID)
	if user.ID == "" {
		return usererrors.ErrMissingIdentity
	}
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)
	user.Image = strings.TrimSpace(user.Image)

	if err := u.repo.Upsert(ctx, &user); err != nil {
		u.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to save user profile")
		return err
	}
	return nil
}
