package planner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"wayfare.openjourney.org/internal/models"
)

// ErrNoRoute reports that the origin or destination coordinates did not
// resolve to any city, so no graph was built. It is an expected outcome, not
// a failure of the engine.
var ErrNoRoute = errors.New("origin or destination could not be resolved")

// DefaultTopN is the number of ranked itineraries rendered when the caller
// does not ask for a specific count.
const DefaultTopN = 5

// CityResolver turns coordinates into an ordered city list: the first entry
// anchors the query, the remainder are transit candidates. An empty result is
// valid and means the coordinates resolve to nothing.
type CityResolver interface {
	ResolveCities(ctx context.Context, point models.CoordinatePoint) []models.City
}

// Options tune a Planner. Zero values select the defaults.
type Options struct {
	MaxHops  int
	TopN     int
	Currency string
}

// Planner runs the full engine pipeline for one query: resolve cities, build
// the graph, prune it, search it, rank and render the result. A Planner holds
// no per-query state and is safe to share across concurrent queries.
type Planner struct {
	resolver CityResolver
	builder  *GraphBuilder
	logger   *slog.Logger
	maxHops  int
	topN     int
	currency string
}

// New assembles a Planner from its collaborators.
func New(resolver CityResolver, legs LegSource, logger *slog.Logger, opts Options) *Planner {
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	currency := opts.Currency
	if currency == "" {
		currency = "EUR"
	}
	return &Planner{
		resolver: resolver,
		builder:  NewGraphBuilder(legs),
		logger:   logger,
		maxHops:  opts.MaxHops,
		topN:     topN,
		currency: currency,
	}
}

// Result carries everything a caller needs to answer a query.
type Result struct {
	Origin      models.City
	Destination models.City
	Transit     []models.City
	Itineraries []models.Itinerary
	Truncated   bool
	Rendered    string
}

// Plan answers one query. It returns ErrNoRoute when either endpoint fails to
// resolve; every other outcome, including an empty itinerary set, is a valid
// Result.
func (p *Planner) Plan(ctx context.Context, q models.Query) (*Result, error) {
	originCities := p.resolver.ResolveCities(ctx, q.From)
	destinationCities := p.resolver.ResolveCities(ctx, q.To)
	if len(originCities) == 0 || len(destinationCities) == 0 {
		return nil, ErrNoRoute
	}

	origin := originCities[0]
	destination := destinationCities[0]
	transit := mergeTransitCandidates(origin, destination, originCities[1:], destinationCities[1:])

	start := time.Now()
	graph := p.builder.Build(ctx, origin, destination, transit, q.DepartureDate)
	built := len(graph.Legs)
	graph.Prune(destination.Name)

	search := NewRouteSearch(graph, p.maxHops)
	routes, truncated := search.Run(q, origin.Name, destination.Name)
	Rank(routes)
	top := TopN(routes, p.topN)

	if p.logger != nil {
		p.logger.Info("query planned",
			slog.String("origin", origin.Name),
			slog.String("destination", destination.Name),
			slog.Int("transit_candidates", len(transit)),
			slog.Int("legs_fetched", built),
			slog.Int("legs_retained", len(graph.Legs)),
			slog.Int("itineraries", len(routes)),
			slog.Bool("truncated", truncated),
			slog.Duration("elapsed", time.Since(start)))
	}

	return &Result{
		Origin:      origin,
		Destination: destination,
		Transit:     transit,
		Itineraries: top,
		Truncated:   truncated,
		Rendered:    Render(top, p.currency, truncated),
	}, nil
}

// mergeTransitCandidates unions the transit candidates resolved around both
// endpoints, deduplicating by city name and dropping any candidate that names
// the origin or destination itself.
func mergeTransitCandidates(origin, destination models.City, fromOrigin, fromDestination []models.City) []models.City {
	seen := map[string]bool{origin.Name: true, destination.Name: true}
	var merged []models.City
	for _, candidates := range [][]models.City{fromOrigin, fromDestination} {
		for _, c := range candidates {
			if seen[c.Name] {
				continue
			}
			seen[c.Name] = true
			c.Transit = true
			merged = append(merged, c)
		}
	}
	return merged
}
