package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"wayfare.openjourney.org/internal/models"
)

type rateLimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
}

// NewRateLimitedProvider caps how often the wrapped provider is queried.
// Calls block until the limiter grants a slot or the context is cancelled.
func NewRateLimitedProvider(p Provider, rps rate.Limit, burst int) Provider {
	return &rateLimitedProvider{
		provider: p,
		limiter:  rate.NewLimiter(rps, burst),
	}
}

func (r *rateLimitedProvider) Name() string {
	return r.provider.Name()
}

func (r *rateLimitedProvider) Mode() models.TransportMode {
	return r.provider.Mode()
}

func (r *rateLimitedProvider) Stations(ctx context.Context, city models.City) ([]models.Station, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.Stations(ctx, city)
}

func (r *rateLimitedProvider) Legs(ctx context.Context, from, to models.City, date time.Time) ([]models.Leg, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.Legs(ctx, from, to, date)
}

// wait blocks for a limiter slot. A deadline that expires while queued is a
// load condition rather than a provider fault, so it is reported as
// ErrTemporary and a later retry may succeed. A cancelled context means the
// caller gave up and is passed through as-is.
func (r *rateLimitedProvider) wait(ctx context.Context) error {
	err := r.limiter.Wait(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %s rate limit: %v", ErrTemporary, r.provider.Name(), err)
}
