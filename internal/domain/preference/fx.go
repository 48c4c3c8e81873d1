package preference

import (
	"github.com/Conte777/tubedigest/config"
	"github.com/Conte777/tubedigest/internal/domain/events"
	prefhttp "github.com/Conte777/tubedigest/internal/domain/preference/delivery/http"
	"github.com/Conte777/tubedigest/internal/domain/preference/deps"
	"github.com/Conte777/tubedigest/internal/domain/preference/repository/postgres"
	"github.com/Conte777/tubedigest/internal/domain/preference/usecase/buissines"
	"github.com/Conte777/tubedigest/internal/infrastructure/http/server"
	"github.com/Conte777/tubedigest/internal/infrastructure/kafka"
	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module(
	"preference",
	fx.Provide(
		NewRepository,
		NewUseCase,
		prefhttp.NewHandler,
		prefhttp.NewRouter,
	),
	fx.Invoke(registerRoutes),
)

func NewRepository(db *gorm.DB) deps.PreferenceRepository {
	return postgres.NewRepository(db)
}

func NewUseCase(
	repo deps.PreferenceRepository,
	producer *kafka.Producer,
	catalog *config.CatalogConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) deps.PreferenceUseCase {
	var publisher events.Publisher = producer
	return buissines.NewUseCase(repo, publisher, catalog, m, logger.With().Str("component", "preference").Logger())
}

func registerRoutes(srv *server.Server, router *prefhttp.Router) {
	router.RegisterRoutes(srv.Router)
}
