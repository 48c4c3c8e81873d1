package infrastructure

import (
	"github.com/Conte777/tubedigest/internal/infrastructure/cache"
	"github.com/Conte777/tubedigest/internal/infrastructure/database"
	"github.com/Conte777/tubedigest/internal/infrastructure/grpc"
	"github.com/Conte777/tubedigest/internal/infrastructure/http"
	"github.com/Conte777/tubedigest/internal/infrastructure/kafka"
	"github.com/Conte777/tubedigest/internal/infrastructure/logger"
	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	"github.com/Conte777/tubedigest/internal/infrastructure/youtube"
	"go.uber.org/fx"
)

// Module bundles every infrastructure module
var Module = fx.Options(
	logger.Module,
	metrics.Module,
	database.Module,
	cache.Module,
	kafka.Module,
	youtube.Module,
	http.Module,
	grpc.Module,
)
