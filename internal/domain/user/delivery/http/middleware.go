package http

import (
	"github.com/Conte777/tubedigest/internal/domain/user/deps"
	"github.com/Conte777/tubedigest/internal/domain/user/entities"
	usererrors "github.com/Conte777/tubedigest/internal/domain/user/errors"
	"github.com/Conte777/tubedigest/internal/infrastructure/http/server"
	pkgerrors "github.com/Conte777/tubedigest/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// Headers set by the upstream auth proxy
const (
	HeaderUserID     = "X-User-ID"
	HeaderUserName   = "X-User-Name"
	HeaderUserEmail  = "X-User-Email"
	HeaderUserAvatar = "X-User-Avatar"
)

// NewAuthMiddleware trusts the identity headers of the auth proxy, records
// the profile and exposes the user id through server.UserID.
func NewAuthMiddleware(useCase deps.UserUseCase, logger zerolog.Logger) server.AuthMiddleware {
	mapper := pkgerrors.NewMapper()

	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			user := entities.User{
				ID:    string(ctx.Request.Header.Peek(HeaderUserID)),
				Name:  string(ctx.Request.Header.Peek(HeaderUserName)),
				Email: string(ctx.Request.Header.Peek(HeaderUserEmail)),
				Image: string(ctx.Request.Header.Peek(HeaderUserAvatar)),
			}
			if user.ID == "" {
				server.WriteError(ctx, fasthttp.StatusUnauthorized, usererrors.ErrMissingIdentity.Error())
				return
			}

			if err := useCase.EnsureUser(ctx, user); err != nil {
				status, msg := mapper.MapErrorToHttp(err)
				if status >= fasthttp.StatusInternalServerError {
					logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to record user")
				}
				server.WriteError(ctx, status, msg)
				return
			}

			server.SetUserID(ctx, user.ID)
			next(ctx)
		}
	}
}
