package user

import (
	userhttp "github.com/Conte777/tubedigest/internal/domain/user/delivery/http"
	"github.com/Conte777/tubedigest/internal/domain/user/deps"
	"github.com/Conte777/tubedigest/internal/domain/user/repository/postgres"
	"github.com/Conte777/tubedigest/internal/domain/user/usecase/buissines"
	"github.com/Conte777/tubedigest/internal/infrastructure/http/server"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module(
	"user",
	fx.Provide(
		NewRepository,
		NewUseCase,
		NewAuthMiddleware,
	),
)

func NewRepository(db *gorm.DB) deps.UserRepository {
	return postgres.NewRepository(db)
}

func NewUseCase(repo deps.UserRepository, logger zerolog.Logger) deps.UserUseCase {
	return buissines.NewUseCase(repo, logger.With().Str("component", "user").Logger())
}

func NewAuthMiddleware(uc deps.UserUseCase, logger zerolog.Logger) server.AuthMiddleware {
	return userhttp.NewAuthMiddleware(uc, logger)
}
