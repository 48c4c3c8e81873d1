package http

import (
	"github.com/Conte777/tubedigest/internal/infrastructure/http/server"
	"github.com/fasthttp/router"
)

type Router struct {
	handler *Handler
	auth    server.AuthMiddleware
}

func NewRouter(handler *Handler, auth server.AuthMiddleware) *Router {
	return &Router{handler: handler, auth: auth}
}

func (r *Router) RegisterRoutes(rt *router.Router) {
	api := rt.Group("/api/v1")
	api.GET("/channels/{id}/summaries", r.auth(r.handler.ListForChannel))
	api.POST("/channels/{id}/videos", r.auth(r.handler.RequestVideo))
	api.GET("/summaries/{id}", r.auth(r.handler.Get))
	api.POST("/summaries/{id}/read", r.auth(r.handler.MarkRead))
	api.DELETE("/summaries/{id}/read", r.auth(r.handler.MarkUnread))
}
