package deps

import (
	"context"

	subentities "github.com/Conte777/tubedigest/internal/domain/subscription/entities"
	"github.com/Conte777/tubedigest/internal/domain/summary/dto"
	"github.com/Conte777/tubedigest/internal/domain/summary/entities"
	"github.com/google/uuid"
)

type SummaryRepository interface {
	// Create stores s unless the user already has a summary of the video,
	// in which case the stored row is returned with created=false.
	Create(ctx context.Context, s *entities.VideoSummary) (summary *entities.VideoSummary, created bool, err error)
	Get(ctx context.Context, id uuid.UUID, userID string) (*entities.VideoSummary, error)
	ListForChannel(ctx context.Context, channelID uuid.UUID, userID string) ([]entities.VideoSummary, error)
	// SetRead updates is_read on a summary owned by userID
	SetRead(ctx context.Context, id uuid.UUID, userID string, read bool) (dto.ReadResult, error)
}

// ChannelDirectory is the part of the subscription ledger the tracker relies on
type ChannelDirectory interface {
	IsSubscribed(ctx context.Context, userID string, channelID uuid.UUID) (bool, error)
	GetChannel(ctx context.Context, channelID uuid.UUID) (*subentities.Channel, error)
	FindChannel(ctx context.Context, externalID string) (*subentities.Channel, error)
}

type SummaryUseCase interface {
	MarkRead(ctx context.Context, summaryID uuid.UUID, userID string) (dto.ReadResult, error)
	MarkUnread(ctx context.Context, summaryID uuid.UUID, userID string) (dto.ReadResult, error)
	ListForChannel(ctx context.Context, channelID uuid.UUID, userID string) ([]entities.VideoSummary, error)
	Get(ctx context.Context, summaryID uuid.UUID, userID string) (*entities.VideoSummary, error)
	Ingest(ctx context.Context, in dto.IngestSummary) (*entities.VideoSummary, error)
	RequestVideo(ctx context.Context, userID string, channelID uuid.UUID, videoURL string) (string, error)
}
