package http

import (
	"context"

	"github.com/Conte777/tubedigest/config"
	"github.com/Conte777/tubedigest/internal/infrastructure/http/server"
	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Module provides HTTP server for fx DI
var Module = fx.Module("http",
	fx.Provide(NewServerFx),
)

// ServerParams collects the server dependencies, including every registered health check
type ServerParams struct {
	fx.In

	Lifecycle    fx.Lifecycle
	Config       *config.ServiceConfig
	Metrics      *metrics.Metrics
	Logger       zerolog.Logger
	HealthChecks []server.HealthCheck `group:"health_checks"`
}

// NewServerFx creates HTTP server with lifecycle hooks for fx DI
func NewServerFx(p ServerParams) *server.Server {
	srv := server.NewServer(p.Config.Name, p.Config.Port, p.Metrics, p.Logger)

	srv.RegisterMetrics()
	srv.Router.GET("/health", server.NewHealthHandler(p.HealthChecks, p.Logger).Handle)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return srv.Start()
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}
