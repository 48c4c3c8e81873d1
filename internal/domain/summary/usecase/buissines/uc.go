package buissines

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Conte777/tubedigest/internal/domain/events"
	"github.com/Conte777/tubedigest/internal/domain/identity"
	"github.com/Conte777/tubedigest/internal/domain/summary/deps"
	"github.com/Conte777/tubedigest/internal/domain/summary/dto"
	"github.com/Conte777/tubedigest/internal/domain/summary/entities"
	sumerrors "github.com/Conte777/tubedigest/internal/domain/summary/errors"
	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type UseCase struct {
	repo      deps.SummaryRepository
	channels  deps.ChannelDirectory
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

func NewUseCase(
	repo deps.SummaryRepository,
	channels deps.ChannelDirectory,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		repo:      repo,
		channels:  channels,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

var _ deps.SummaryUseCase = (*UseCase)(nil)

// MarkRead flags the summary as read for its owner. Unknown summaries and
// summaries owned by other users report Found=false without an error.
func (u *UseCase) MarkRead(ctx context.Context, summaryID uuid.UUID, userID string) (dto.ReadResult, error) {
	return u.setRead(ctx, summaryID, userID, true)
}

// MarkUnread is the explicit inverse of MarkRead
func (u *UseCase) MarkUnread(ctx context.Context, summaryID uuid.UUID, userID string) (dto.ReadResult, error) {
	return u.setRead(ctx, summaryID, userID, false)
}

func (u *UseCase) setRead(ctx context.Context, summaryID uuid.UUID, userID string, read bool) (dto.ReadResult, error) {
	if strings.TrimSpace(userID) == "" {
		return dto.ReadResult{}, sumerrors.ErrInvalidUserID
	}
	if summaryID == uuid.Nil {
		return dto.ReadResult{}, sumerrors.ErrInvalidSummaryID
	}

	res, err := u.repo.SetRead(ctx, summaryID, userID, read)
	if err != nil {
		u.logger.Error().Err(err).
			Str("user_id", userID).
			Str("summary_id", summaryID.String()).
			Bool("read", read).
			Msg("failed to update read state")
		return dto.ReadResult{}, err
	}

	if res.Changed {
		if u.metrics != nil {
			u.metrics.ReadStateChanges.WithLabelValues(readLabel(read)).Inc()
		}
		u.logger.Debug().
			Str("user_id", userID).
			Str("summary_id", summaryID.String()).
			Bool("read", read).
			Msg("read state changed")
	}
	return res, nil
}

// ListForChannel returns the user's summaries of one channel, newest video first
func (u *UseCase) ListForChannel(ctx context.Context, channelID uuid.UUID, userID string) ([]entities.VideoSummary, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, sumerrors.ErrInvalidUserID
	}
	if channelID == uuid.Nil {
		return nil, sumerrors.ErrInvalidChannelID
	}

	summaries, err := u.repo.ListForChannel(ctx, channelID, userID)
	if err != nil {
		u.logger.Error().Err(err).
			Str("user_id", userID).
			Str("channel_id", channelID.String()).
			Msg("failed to list summaries")
		return nil, err
	}
	return summaries, nil
}

func (u *UseCase) Get(ctx context.Context, summaryID uuid.UUID, userID string) (*entities.VideoSummary, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, sumerrors.ErrInvalidUserID
	}
	return u.repo.Get(ctx, summaryID, userID)
}

// Ingest stores a generated summary verbatim. The video id is taken from the
// URL when absent, and a second summary of the same video for the same user
// returns the stored one.
func (u *UseCase) Ingest(ctx context.Context, in dto.IngestSummary) (*entities.VideoSummary, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return nil, sumerrors.ErrInvalidUserID
	}
	if in.ChannelID == uuid.Nil {
		return nil, sumerrors.ErrInvalidChannelID
	}

	videoID := strings.TrimSpace(in.VideoID)
	if videoID == "" {
		if strings.TrimSpace(in.VideoURL) == "" {
			return nil, sumerrors.ErrVideoURLRequired
		}
		id, err := identity.ResolveVideo(in.VideoURL)
		if err != nil {
			return nil, err
		}
		videoID = id
	}
	if strings.TrimSpace(in.VideoTitle) == "" {
		return nil, sumerrors.ErrVideoTitleRequired
	}
	if strings.TrimSpace(in.SummaryContent) == "" {
		return nil, sumerrors.ErrContentRequired
	}

	subscribed, err := u.channels.IsSubscribed(ctx, in.UserID, in.ChannelID)
	if err != nil {
		return nil, err
	}
	if !subscribed {
		return nil, sumerrors.ErrNotSubscribed
	}

	videoURL := strings.TrimSpace(in.VideoURL)
	if videoURL == "" {
		videoURL = identity.VideoURL(videoID)
	}
	thumbnail := strings.TrimSpace(in.ThumbnailURL)
	if thumbnail == "" {
		thumbnail = identity.ThumbnailURL(videoID)
	}
	publishedAt := in.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now().UTC()
	}

	summary, created, err := u.repo.Create(ctx, &entities.VideoSummary{
		ID:             uuid.New(),
		UserID:         in.UserID,
		ChannelID:      in.ChannelID,
		VideoID:        videoID,
		VideoTitle:     strings.TrimSpace(in.VideoTitle),
		VideoURL:       videoURL,
		ThumbnailURL:   &thumbnail,
		PublishedAt:    publishedAt,
		SummaryContent: in.SummaryContent,
	})
	if err != nil {
		u.logger.Error().Err(err).
			Str("user_id", in.UserID).
			Str("video_id", videoID).
			Msg("failed to store summary")
		return nil, err
	}

	if created {
		if u.metrics != nil {
			u.metrics.SummariesIngested.Inc()
		}
		u.logger.Info().
			Str("user_id", in.UserID).
			Str("video_id", videoID).
			Str("summary_id", summary.ID.String()).
			Msg("summary stored")
	}
	return summary, nil
}

// RequestVideo asks the summarizer to process a video of a channel the user
// follows. Nothing is stored until the summary comes back.
func (u *UseCase) RequestVideo(ctx context.Context, userID string, channelID uuid.UUID, videoURL string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", sumerrors.ErrInvalidUserID
	}
	if channelID == uuid.Nil {
		return "", sumerrors.ErrInvalidChannelID
	}
	if strings.TrimSpace(videoURL) == "" {
		return "", sumerrors.ErrVideoURLRequired
	}

	videoID, err := identity.ResolveVideo(videoURL)
	if err != nil {
		return "", err
	}

	subscribed, err := u.channels.IsSubscribed(ctx, userID, channelID)
	if err != nil {
		return "", err
	}
	if !subscribed {
		return "", sumerrors.ErrNotSubscribed
	}

	channel, err := u.channels.GetChannel(ctx, channelID)
	if err != nil {
		return "", err
	}

	event := events.VideoRequested{
		UserID:      userID,
		ChannelID:   channel.ChannelID,
		VideoID:     videoID,
		VideoURL:    identity.VideoURL(videoID),
		RequestedAt: time.Now().UTC(),
	}
	if err := u.publisher.SendToTopic(ctx, events.TopicVideoRequested, userID, event); err != nil {
		u.logger.Error().Err(err).
			Str("user_id", userID).
			Str("video_id", videoID).
			Msg("failed to publish video request")
		return "", fmt.Errorf("publish video request: %w", err)
	}

	u.logger.Info().
		Str("user_id", userID).
		Str("channel_id", channel.ChannelID).
		Str("video_id", videoID).
		Msg("video summary requested")
	return videoID, nil
}

func readLabel(read bool) string {
	if read {
		return "read"
	}
	return "unread"
}
