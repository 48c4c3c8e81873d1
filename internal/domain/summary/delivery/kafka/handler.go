package kafka

import (
	"context"
	"encoding/json"

	"github.com/Conte777/tubedigest/internal/domain/events"
	"github.com/Conte777/tubedigest/internal/domain/summary/deps"
	"github.com/Conte777/tubedigest/internal/domain/summary/dto"
	pkgerrors "github.com/Conte777/tubedigest/pkg/errors"
	"github.com/rs/zerolog"
)

// Handler stores summaries announced on the summary.generated topic
type Handler struct {
	useCase  deps.SummaryUseCase
	channels deps.ChannelDirectory
	logger   zerolog.Logger
}

func NewHandler(useCase deps.SummaryUseCase, channels deps.ChannelDirectory, logger zerolog.Logger) *Handler {
	return &Handler{useCase: useCase, channels: channels, logger: logger}
}

// HandleSummaryGenerated returns an error only for failures worth
// redelivering. Messages that can never be stored are logged and dropped.
func (h *Handler) HandleSummaryGenerated(ctx context.Context, value []byte) error {
	var event events.SummaryGenerated
	if err := json.Unmarshal(value, &event); err != nil {
		h.logger.Error().Err(err).Msg("dropping malformed summary event")
		return nil
	}

	channel, err := h.channels.FindChannel(ctx, event.ChannelID)
	if err != nil {
		return h.dropOrRetry(err, event, "unknown channel in summary event")
	}

	summary, err := h.useCase.Ingest(ctx, dto.IngestSummary{
		UserID:         event.UserID,
		ChannelID:      channel.ID,
		VideoID:        event.VideoID,
		VideoTitle:     event.VideoTitle,
		VideoURL:       event.VideoURL,
		ThumbnailURL:   event.ThumbnailURL,
		PublishedAt:    event.PublishedAt,
		SummaryContent: event.SummaryContent,
	})
	if err != nil {
		return h.dropOrRetry(err, event, "summary event rejected")
	}

	h.logger.Debug().
		Str("user_id", event.UserID).
		Str("summary_id", summary.ID.String()).
		Msg("summary event processed")
	return nil
}

func (h *Handler) dropOrRetry(err error, event events.SummaryGenerated, msg string) error {
	if pkgerrors.IsValidationError(err) || pkgerrors.IsNotFoundError(err) {
		h.logger.Warn().Err(err).
			Str("user_id", event.UserID).
			Str("channel_id", event.ChannelID).
			Str("video_id", event.VideoID).
			Msg(msg)
		return nil
	}
	return err
}
