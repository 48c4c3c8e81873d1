package http

import (
	"encoding/json"
	"strings"

	"github.com/Conte777/tubedigest/internal/domain/subscription/deps"
	"github.com/Conte777/tubedigest/internal/domain/subscription/dto"
	suberrors "github.com/Conte777/tubedigest/internal/domain/subscription/errors"
	"github.com/Conte777/tubedigest/internal/infrastructure/http/server"
	pkgerrors "github.com/Conte777/tubedigest/pkg/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

type Handler struct {
	useCase deps.SubscriptionUseCase
	mapper  *pkgerrors.Mapper
	logger  zerolog.Logger
}

func NewHandler(useCase deps.SubscriptionUseCase, logger zerolog.Logger) *Handler {
	return &Handler{
		useCase: useCase,
		mapper:  pkgerrors.NewMapper(),
		logger:  logger,
	}
}

// List handles GET /api/v1/channels
func (h *Handler) List(ctx *fasthttp.RequestCtx) {
	channels, err := h.useCase.ListSubscriptions(ctx, server.UserID(ctx))
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	resp := make([]dto.ChannelResponse, 0, len(channels))
	for _, c := range channels {
		resp = append(resp, dto.NewSubscribedChannelResponse(c))
	}
	server.WriteJSON(ctx, fasthttp.StatusOK, resp)
}

// Subscribe handles POST /api/v1/channels. A body with channelId subscribes
// by descriptor, otherwise url is resolved.
func (h *Handler) Subscribe(ctx *fasthttp.RequestCtx) {
	var req dto.SubscribeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		server.WriteError(ctx, fasthttp.StatusBadRequest, "invalid request body")
		return
	}

	userID := server.UserID(ctx)

	var (
		res *dto.SubscribeResult
		err error
	)
	if strings.TrimSpace(req.ChannelID) != "" {
		res, err = h.useCase.Subscribe(ctx, userID, req.Descriptor())
	} else {
		res, err = h.useCase.SubscribeByURL(ctx, userID, req.URL)
	}
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	status := fasthttp.StatusCreated
	if res.AlreadySubscribed {
		status = fasthttp.StatusOK
	}
	server.WriteJSON(ctx, status, dto.SubscribeResponse{
		Channel:           dto.NewChannelResponse(res.Channel),
		AlreadySubscribed: res.AlreadySubscribed,
	})
}

// Get handles GET /api/v1/channels/{id}
func (h *Handler) Get(ctx *fasthttp.RequestCtx) {
	channelID, ok := h.channelID(ctx)
	if !ok {
		return
	}

	subscribed, err := h.useCase.IsSubscribed(ctx, server.UserID(ctx), channelID)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	if !subscribed {
		h.handleError(ctx, suberrors.ErrChannelNotFound)
		return
	}

	channel, err := h.useCase.GetChannel(ctx, channelID)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	server.WriteJSON(ctx, fasthttp.StatusOK, dto.NewChannelResponse(channel))
}

// Unsubscribe handles DELETE /api/v1/channels/{id}
func (h *Handler) Unsubscribe(ctx *fasthttp.RequestCtx) {
	channelID, ok := h.channelID(ctx)
	if !ok {
		return
	}

	if err := h.useCase.Unsubscribe(ctx, server.UserID(ctx), channelID); err != nil {
		h.handleError(ctx, err)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (h *Handler) channelID(ctx *fasthttp.RequestCtx) (uuid.UUID, bool) {
	id, err := uuid.Parse(server.PathParam(ctx, "id"))
	if err != nil {
		h.handleError(ctx, suberrors.ErrInvalidChannelID)
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
