package http

import (
	"encoding/json"

	"github.com/Conte777/tubedigest/internal/domain/preference/deps"
	"github.com/Conte777/tubedigest/internal/domain/preference/dto"
	"github.com/Conte777/tubedigest/internal/infrastructure/http/server"
	pkgerrors "github.com/Conte777/tubedigest/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

type Handler struct {
	useCase deps.PreferenceUseCase
	mapper  *pkgerrors.Mapper
	logger  zerolog.Logger
}

func NewHandler(useCase deps.PreferenceUseCase, logger zerolog.Logger) *Handler {
	return &Handler{
		useCase: useCase,
		mapper:  pkgerrors.NewMapper(),
		logger:  logger,
	}
}

// Onboard handles POST /api/v1/onboarding
func (h *Handler) Onboard(ctx *fasthttp.RequestCtx) {
	var req dto.OnboardRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		server.WriteError(ctx, fasthttp.StatusBadRequest, "invalid request body")
		return
	}

	pref, step, err := h.useCase.Onboard(ctx, server.UserID(ctx), req)
	if err != nil {
		status, msg := h.mapper.MapErrorToHttp(err)
		if status >= fasthttp.StatusInternalServerError {
			h.logger.Error().Err(err).Str("user_id", server.UserID(ctx)).Msg("onboarding failed")
		}
		server.WriteJSON(ctx, status, server.ErrorResponse{Error: msg, Step: step.String()})
		return
	}

	server.WriteJSON(ctx, fasthttp.StatusOK, dto.NewPreferenceResponse(pref))
}

// Get handles GET /api/v1/preferences
func (h *Handler) Get(ctx *fasthttp.RequestCtx) {
	pref, err := h.useCase.GetPreference(ctx, server.UserID(ctx))
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	server.WriteJSON(ctx, fasthttp.StatusOK, dto.NewPreferenceResponse(pref))
}

// SetEnabled handles PATCH /api/v1/preferences
func (h *Handler) SetEnabled(ctx *fasthttp.RequestCtx) {
	var req dto.SetEnabledRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Enabled == nil {
		server.WriteError(ctx, fasthttp.StatusBadRequest, "enabled flag is required")
		return
	}

	if err := h.useCase.SetEnabled(ctx, server.UserID(ctx), *req.Enabled); err != nil {
		h.handleError(ctx, err)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

// Categories handles GET /api/v1/categories
func (h *Handler) Categories(ctx *fasthttp.RequestCtx) {
	server.WriteJSON(ctx, fasthttp.StatusOK, h.useCase.Categories())
}

func (h *Handler) handleError(ctx *fasthttp.RequestCtx, err error) {
	status, msg := h.mapper.MapErrorToHttp(err)
	if status >= fasthttp.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", string(ctx.Path())).Msg("request failed")
	}
	server.WriteError(ctx, status, msg)
}
