package provider

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"wayfare.openjourney.org/internal/models"
)

const DefaultProviderTimeout = 10 * time.Second

// Pool fans a query out to every registered provider and merges the results.
// A failing provider only shrinks the result set; its error is logged and the
// remaining providers still contribute.
type Pool struct {
	providers []Provider
	timeout   time.Duration
}

func NewPool(providers []Provider, timeout time.Duration) *Pool {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &Pool{providers: providers, timeout: timeout}
}

func (p *Pool) Providers() []Provider {
	return p.providers
}

type legResult struct {
	name string
	legs []models.Leg
	err  error
}

// FetchLegs queries all providers concurrently and returns the union of their
// legs. Order follows provider registration order.
func (p *Pool) FetchLegs(ctx context.Context, from, to models.City, date time.Time) []models.Leg {
	results := make([]chan legResult, len(p.providers))
	for i, prov := range p.providers {
		results[i] = make(chan legResult, 1)
		ch := results[i]
		providerItem := prov
		go func() {
			providerCtx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()
			legs, err := providerItem.Legs(providerCtx, from, to, date)
			ch <- legResult{name: providerItem.Name(), legs: legs, err: err}
		}()
	}

	var merged []models.Leg
	for _, ch := range results {
		res := <-ch
		if res.err != nil {
			slog.Warn("provider leg query failed",
				"provider", res.name, "from", from.Name, "to", to.Name,
				"retryable", errors.Is(res.err, ErrTemporary), "error", res.err)
			continue
		}
		merged = append(merged, res.legs...)
	}
	return merged
}

// FetchStations queries all providers for a city's boarding points,
// deduplicated by station ID.
func (p *Pool) FetchStations(ctx context.Context, city models.City) []models.Station {
	type stationResult struct {
		name     string
		stations []models.Station
		err      error
	}

	results := make([]chan stationResult, len(p.providers))
	for i, prov := range p.providers {
		results[i] = make(chan stationResult, 1)
		ch := results[i]
		providerItem := prov
		go func() {
			providerCtx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()
			stations, err := providerItem.Stations(providerCtx, city)
			ch <- stationResult{name: providerItem.Name(), stations: stations, err: err}
		}()
	}

	seen := make(map[string]bool)
	var merged []models.Station
	for _, ch := range results {
		res := <-ch
		if res.err != nil {
			slog.Warn("provider station query failed",
				"provider", res.name, "city", city.Name,
				"retryable", errors.Is(res.err, ErrTemporary), "error", res.err)
			continue
		}
		for _, s := range res.stations {
			if seen[s.ID] {
				continue
			}
			seen[s.ID] = true
			merged = append(merged, s)
		}
	}
	return merged
}
