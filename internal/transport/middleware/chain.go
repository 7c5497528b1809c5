package middleware

import (
	"log/slog"
	"net/http"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one is outermost.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Ops is the stack every ops-listener route runs under. Recovery sits inside
// Logger so a recovered panic is still logged as a 500, and Metrics sits
// innermost so it observes the handler's own status.
func Ops(log *slog.Logger, route string) Middleware {
	return Chain(RequestID(), Logger(log), Recovery(log), Metrics(route))
}
