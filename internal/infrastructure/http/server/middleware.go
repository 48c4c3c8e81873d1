package server

import "github.com/valyala/fasthttp"

// Middleware wraps a request handler
type Middleware func(next fasthttp.RequestHandler) fasthttp.RequestHandler

// AuthMiddleware rejects requests without an authenticated user and
// stores the user id on the request for UserID.
type AuthMiddleware Middleware
