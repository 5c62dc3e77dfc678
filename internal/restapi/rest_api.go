package restapi

import (
	"net/http"
	"time"

	"wayfare.openjourney.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// WithRateLimit wraps the given handler with the per-API-key rate limiter.
func (api *RestAPI) WithRateLimit(handler http.Handler) http.Handler {
	if api.rateLimiter == nil {
		return handler
	}
	return api.rateLimiter.Middleware(handler)
}

// Stop releases the rate limiter's background cleanup goroutine.
func (api *RestAPI) Stop() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
