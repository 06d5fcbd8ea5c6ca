package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"beauteefool/shared/constant"
	"beauteefool/shared/failure"
	"beauteefool/transport/http/response"
)

// APIKey guards the admin routes. A request passes only with the configured key, and
// carries the admin actor from then on.
func (a *appMiddleware) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := a.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		expected := a.config.App.APIKey

		if apiKey == constant.Empty || expected == constant.Empty ||
			subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			response.WithError(writer, failure.InvalidAPIKey)

			scope.TraceError(failure.InvalidAPIKey)
			scope.End()

			return
		}

		scope.SetAttribute("http.source", "admin")
		scope.End()

		ctx = context.WithValue(ctx, constant.ContextKeyActor, constant.ActorAdmin)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
