package http

import (
	"github.com/Conte777/tubedigest/internal/infrastructure/http/server"
	"github.com/fasthttp/router"
)

// Router registers preference HTTP routes
type Router struct {
	handler *Handler
	auth    server.AuthMiddleware
}

func NewRouter(handler *Handler, auth server.AuthMiddleware) *Router {
	return &Router{handler: handler, auth: auth}
}

// RegisterRoutes registers preference routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	api := rt.Group("/api/v1")
	api.GET("/categories", r.handler.Categories)
	api.POST("/onboarding", r.auth(r.handler.Onboard))
	api.GET("/preferences", r.auth(r.handler.Get))
	api.PATCH("/preferences", r.auth(r.handler.SetEnabled))
}
