package server

import (
	"encoding/json"

	"github.com/valyala/fasthttp"
)

const userIDKey = "user_id"

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Error string `json:"error"`
	Step  string `json:"step,omitempty"`
}

// WriteJSON writes v as a JSON body with the given status
func WriteJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

// WriteError writes an ErrorResponse
func WriteError(ctx *fasthttp.RequestCtx, status int, message string) {
	WriteJSON(ctx, status, ErrorResponse{Error: message})
}

// SetUserID stores the authenticated user id on the request
func SetUserID(ctx *fasthttp.RequestCtx, userID string) {
	ctx.SetUserValue(userIDKey, userID)
}

// UserID returns the authenticated user id, or "" when the request is anonymous
func UserID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue(userIDKey).(string)
	return id
}

// PathParam returns a router path parameter as a string
func PathParam(ctx *fasthttp.RequestCtx, name string) string {
	v, _ := ctx.UserValue(name).(string)
	return v
}
