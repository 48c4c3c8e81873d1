package app

import (
	"github.com/Conte777/tubedigest/config"
	"github.com/Conte777/tubedigest/internal/domain"
	"github.com/Conte777/tubedigest/internal/infrastructure"
	"go.uber.org/fx"
)

// CreateApp creates the fx application options
func CreateApp() fx.Option {
	return fx.Options(
		fx.Provide(config.Out),

		infrastructure.Module,
		domain.Module,
	)
}
