package youtube

import (
	"net/http"

	"github.com/Conte777/tubedigest/config"
	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var Module = fx.Module("youtube",
	fx.Provide(NewFetcherFx),
)

func NewFetcherFx(cfg *config.YouTubeConfig, m *metrics.Metrics, log zerolog.Logger) *Fetcher {
	return NewFetcher(&http.Client{}, cfg.UserAgent, cfg.FetchTimeout, m, log.With().Str("component", "youtube_fetcher").Logger())
}
