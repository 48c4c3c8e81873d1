package http

import (
	"context"
	"encoding/json"

	"github.com/Conte777/tubedigest/internal/domain/summary/deps"
	"github.com/Conte777/tubedigest/internal/domain/summary/dto"
	"github.com/Conte777/tubedigest/internal/domain/summary/entities"
	sumerrors "github.com/Conte777/tubedigest/internal/domain/summary/errors"
	"github.com/Conte777/tubedigest/internal/infrastructure/http/server"
	pkgerrors "github.com/Conte777/tubedigest/pkg/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

type Handler struct {
	useCase deps.SummaryUseCase
	mapper  *pkgerrors.Mapper
	logger  zerolog.Logger
}

func NewHandler(useCase deps.SummaryUseCase, logger zerolog.Logger) *Handler {
	return &Handler{
		useCase: useCase,
		mapper:  pkgerrors.NewMapper(),
		logger:  logger,
	}
}

// ListForChannel handles GET /api/v1/channels/{id}/summaries
func (h *Handler) ListForChannel(ctx *fasthttp.RequestCtx) {
	channelID, ok := h.pathID(ctx, sumerrors.ErrInvalidChannelID)
	if !ok {
		return
	}

	summaries, err := h.useCase.ListForChannel(ctx, channelID, server.UserID(ctx))
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	server.WriteJSON(ctx, fasthttp.StatusOK, toResponses(summaries))
}

// RequestVideo handles POST /api/v1/channels/{id}/videos
func (h *Handler) RequestVideo(ctx *fasthttp.RequestCtx) {
	channelID, ok := h.pathID(ctx, sumerrors.ErrInvalidChannelID)
	if !ok {
		return
	}

	var req dto.RequestVideoRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		server.WriteError(ctx, fasthttp.StatusBadRequest, "invalid request body")
		return
	}

	videoID, err := h.useCase.RequestVideo(ctx, server.UserID(ctx), channelID, req.URL)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	server.WriteJSON(ctx, fasthttp.StatusAccepted, dto.RequestVideoResponse{VideoID: videoID})
}

// Get handles GET /api/v1/summaries/{id}
func (h *Handler) Get(ctx *fasthttp.RequestCtx) {
	summaryID, ok := h.pathID(ctx, sumerrors.ErrInvalidSummaryID)
	if !ok {
		return
	}

	summary, err := h.useCase.Get(ctx, summaryID, server.UserID(ctx))
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	server.WriteJSON(ctx, fasthttp.StatusOK, dto.NewSummaryResponse(summary))
}

// MarkRead handles POST /api/v1/summaries/{id}/read
func (h *Handler) MarkRead(ctx *fasthttp.RequestCtx) {
	h.setRead(ctx, h.useCase.MarkRead)
}

// MarkUnread handles DELETE /api/v1/summaries/{id}/read
func (h *Handler) MarkUnread(ctx *fasthttp.RequestCtx) {
	h.setRead(ctx, h.useCase.MarkUnread)
}

func (h *Handler) setRead(ctx *fasthttp.RequestCtx, fn func(ctx context.Context, summaryID uuid.UUID, userID string) (dto.ReadResult, error)) {
	summaryID, ok := h.pathID(ctx, sumerrors.ErrInvalidSummaryID)
	if !ok {
		return
	}

	res, err := fn(ctx, summaryID, server.UserID(ctx))
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	if !res.Found {
		h.handleError(ctx, sumerrors.ErrSummaryNotFound)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (h *Handler) pathID(ctx *fasthttp.RequestCtx, invalid error) (uuid.UUID, bool) {
	id, err := uuid.Parse(server.PathParam(ctx, "id"))
	if err != nil {
		h.handleError(ctx, invalid)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(ctx *fasthttp.RequestCtx, err error) {
	status, msg := h.mapper.MapErrorToHttp(err)
	if status >= fasthttp.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", string(ctx.Path())).Msg("request failed")
	}
	server.WriteError(ctx, status, msg)
}

func toResponses(summaries []entities.VideoSummary) []dto.SummaryResponse {
	out := make([]dto.SummaryResponse, 0, len(summaries))
	for i := range summaries {
		out = append(out, dto.NewSummaryResponse(&summaries[i]))
	}
	return out
}
