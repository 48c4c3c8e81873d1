package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Conte777/tubedigest/internal/domain/subscription/dto"
	"github.com/Conte777/tubedigest/internal/domain/subscription/repository/memory"
	"github.com/Conte777/tubedigest/internal/domain/subscription/usecase/buissines"
	"github.com/Conte777/tubedigest/internal/infrastructure/http/server"
	"github.com/Conte777/tubedigest/internal/infrastructure/youtube"
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

type nopPublisher struct{}

func (nopPublisher) SendToTopic(context.Context, string, string, any) error { return nil }

type stubFetcher struct{}

func (stubFetcher) FetchChannel(context.Context, string) (youtube.ChannelMetadata, error) {
	return youtube.ChannelMetadata{Name: "Tech Talks"}, nil
}

func fakeAuth(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		id := string(ctx.Request.Header.Peek("X-User-ID"))
		if id == "" {
			server.WriteError(ctx, fasthttp.StatusUnauthorized, "missing user identity")
			return
		}
		server.SetUserID(ctx, id)
		next(ctx)
	}
}

func newTestRouter(t *testing.T) *router.Router {
	t.Helper()
	uc := buissines.NewUseCase(memory.NewRepository(), stubFetcher{}, nopPublisher{}, nil, zerolog.Nop())
	rt := router.New()
	NewRouter(NewHandler(uc, zerolog.Nop()), fakeAuth).RegisterRoutes(rt)
	return rt
}

func do(rt *router.Router, method, uri, userID, body string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if userID != "" {
		ctx.Request.Header.Set("X-User-ID", userID)
	}
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	rt.Handler(&ctx)
	return &ctx
}

func subscribe(t *testing.T, rt *router.Router, userID, body string) (int, dto.SubscribeResponse) {
	t.Helper()
	ctx := do(rt, fasthttp.MethodPost, "/api/v1/channels", userID, body)
	var resp dto.SubscribeResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	return ctx.Response.StatusCode(), resp
}

func TestSubscribe_CreatedThenOK(t *testing.T) {
	rt := newTestRouter(t)

	status, first := subscribe(t, rt, "user-1", `{"url":"https://www.youtube.com/@techtalks"}`)
	assert.Equal(t, fasthttp.StatusCreated, status)
	assert.False(t, first.AlreadySubscribed)
	assert.Equal(t, "Tech Talks", first.Channel.Name)

	status, second := subscribe(t, rt, "user-1", `{"url":"https://youtube.com/@techtalks/videos"}`)
	assert.Equal(t, fasthttp.StatusOK, status)
	assert.True(t, second.AlreadySubscribed)
	assert.Equal(t, first.Channel.ID, second.Channel.ID)
}

func TestSubscribe_ByDescriptor(t *testing.T) {
	rt := newTestRouter(t)

	status, resp := subscribe(t, rt, "user-1", `{"channelId":"UC123","name":"Science Daily","thumbnailUrl":"https://img.example.com/t.jpg"}`)
	assert.Equal(t, fasthttp.StatusCreated, status)
	assert.Equal(t, "UC123", resp.Channel.ChannelID)
	assert.Equal(t, "https://www.youtube.com/channel/UC123", resp.Channel.URL)
	require.NotNil(t, resp.Channel.ThumbnailURL)
}

func TestSubscribe_InvalidURL(t *testing.T) {
	rt := newTestRouter(t)

	ctx := do(rt, fasthttp.MethodPost, "/api/v1/channels", "user-1", `{"url":"https://example.com/nope"}`)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, "invalid YouTube channel URL", resp.Error)
}

func TestListGetAndUnsubscribe(t *testing.T) {
	rt := newTestRouter(t)
	_, sub := subscribe(t, rt, "user-1", `{"channelId":"UC123","name":"Science Daily"}`)
	path := "/api/v1/channels/" + sub.Channel.ID.String()

	ctx := do(rt, fasthttp.MethodGet, "/api/v1/channels", "user-1", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var list []dto.ChannelResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &list))
	require.Len(t, list, 1)
	assert.NotNil(t, list[0].SubscribedAt)

	ctx = do(rt, fasthttp.MethodGet, path, "user-1", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	ctx = do(rt, fasthttp.MethodGet, path, "user-2", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())

	ctx = do(rt, fasthttp.MethodDelete, path, "user-1", "")
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())

	ctx = do(rt, fasthttp.MethodDelete, path, "user-1", "")
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())

	ctx = do(rt, fasthttp.MethodGet, path, "user-1", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestUnsubscribe_BadID(t *testing.T) {
	rt := newTestRouter(t)

	ctx := do(rt, fasthttp.MethodDelete, "/api/v1/channels/not-a-uuid", "user-1", "")
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestChannels_RequireUser(t *testing.T) {
	rt := newTestRouter(t)

	ctx := do(rt, fasthttp.MethodGet, "/api/v1/channels", "", "")
	assert.Equal(t, fasthttp.StatusUnauthorized, ctx.Response.StatusCode())
}
