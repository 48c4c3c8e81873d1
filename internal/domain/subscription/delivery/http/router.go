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

// RegisterRoutes registers channel subscription routes
func (r *Router) RegisterRoutes(rt *router.Router) {
	api := rt.Group("/api/v1")
	api.GET("/channels", r.auth(r.handler.List))
	api.POST("/channels", r.auth(r.handler.Subscribe))
	api.GET("/channels/{id}", r.auth(r.handler.Get))
	api.DELETE("/channels/{id}", r.auth(r.handler.Unsubscribe))
}
