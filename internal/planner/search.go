package planner

import (
	"sort"

	"wayfare.openjourney.org/internal/models"
)

// DefaultMaxHops bounds the number of legs per itinerary. The pruned graph is
// not guaranteed acyclic, so the depth-first search needs an explicit cap to
// terminate; paths abandoned at the cap surface as a truncation flag rather
// than an error.
const DefaultMaxHops = 6

// RouteSearch enumerates every itinerary through the pruned graph from any
// origin-city station to any destination-city station.
type RouteSearch struct {
	graph   *Graph
	maxHops int
}

// NewRouteSearch creates a search over the given (already pruned) graph.
// A maxHops value of zero or less selects DefaultMaxHops.
func NewRouteSearch(g *Graph, maxHops int) *RouteSearch {
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
	}
	return &RouteSearch{graph: g, maxHops: maxHops}
}

// Run performs the exhaustive depth-first enumeration from every station of
// the origin city and filters the complete candidates by the query's price and
// time bounds (inclusive, each applied only when present). The returned flag
// reports whether any path was abandoned at the hop cap, distinct from an
// empty result.
func (rs *RouteSearch) Run(q models.Query, originName, destinationName string) ([]models.Itinerary, bool) {
	origin, ok := rs.graph.Cities[originName]
	if !ok {
		return nil, false
	}
	destination, ok := rs.graph.Cities[destinationName]
	if !ok {
		return nil, false
	}

	var routes []models.Itinerary
	truncated := false
	for _, start := range sortedStations(origin.Stations) {
		found, cut := rs.explore(start, destination, models.Itinerary{})
		routes = append(routes, found...)
		truncated = truncated || cut
	}

	return filterBounds(routes, q), truncated
}

// explore extends the partial itinerary along every outgoing leg of the
// current station. A leg landing on a destination-city station completes a
// candidate; any other leg recurses from its endpoint. Only complete
// candidates are ever returned, so the bounds filter in Run sees each
// candidate exactly once regardless of recursion depth.
func (rs *RouteSearch) explore(current models.Station, destination *models.City, prefix models.Itinerary) ([]models.Itinerary, bool) {
	var complete []models.Itinerary
	truncated := false

	for _, leg := range rs.graph.Legs {
		if leg.From.ID != current.ID {
			continue
		}
		extended := prefix.Extend(leg)
		if destination.HasStation(leg.To.ID) {
			complete = append(complete, extended)
			continue
		}
		if len(extended.Legs) >= rs.maxHops {
			truncated = true
			continue
		}
		deeper, cut := rs.explore(leg.To, destination, extended)
		complete = append(complete, deeper...)
		truncated = truncated || cut
	}

	return complete, truncated
}

func filterBounds(routes []models.Itinerary, q models.Query) []models.Itinerary {
	minPrice, maxPrice, hasPrice := q.PriceBound()
	minTime, maxTime, hasTime := q.TimeBound()
	if !hasPrice && !hasTime {
		return routes
	}

	kept := make([]models.Itinerary, 0, len(routes))
	for _, route := range routes {
		if hasPrice && (route.TotalPrice < minPrice || route.TotalPrice > maxPrice) {
			continue
		}
		if hasTime && (route.TotalTime < minTime || route.TotalTime > maxTime) {
			continue
		}
		kept = append(kept, route)
	}
	return kept
}

// sortedStations returns the station set ordered by ID so enumeration order,
// and with it the rendered output, never depends on map iteration order.
func sortedStations(stations map[string]models.Station) []models.Station {
	out := make([]models.Station, 0, len(stations))
	for _, s := range stations {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
