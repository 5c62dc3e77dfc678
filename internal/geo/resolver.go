package geo

import (
	"context"
	"log/slog"
	"sort"

	"wayfare.openjourney.org/internal/models"
)

// DefaultAnchorRadiusKm is how far from the query coordinates the nearest
// gazetteer city may lie and still anchor the query.
const DefaultAnchorRadiusKm = 150.0

// DefaultTransitRadiusKm bounds the search for transit candidate cities
// around the query coordinates.
const DefaultTransitRadiusKm = 800.0

// Resolver maps coordinates onto the gazetteer: the nearest city within the
// anchor radius becomes the anchor, every other city within the transit
// radius becomes a transit candidate, ordered nearest first.
type Resolver struct {
	entries         []GazetteerEntry
	anchorRadiusKm  float64
	transitRadiusKm float64
	logger          *slog.Logger
}

// ResolverOptions tune a Resolver. Zero values select the defaults.
type ResolverOptions struct {
	AnchorRadiusKm  float64
	TransitRadiusKm float64
}

// NewResolver creates a Resolver over the given gazetteer entries.
func NewResolver(entries []GazetteerEntry, logger *slog.Logger, opts ResolverOptions) *Resolver {
	anchor := opts.AnchorRadiusKm
	if anchor <= 0 {
		anchor = DefaultAnchorRadiusKm
	}
	transit := opts.TransitRadiusKm
	if transit <= 0 {
		transit = DefaultTransitRadiusKm
	}
	return &Resolver{
		entries:         entries,
		anchorRadiusKm:  anchor,
		transitRadiusKm: transit,
		logger:          logger,
	}
}

// ResolveCities returns the ordered city list for the coordinates: the anchor
// first (Transit false), then the transit candidates nearest first (Transit
// true). An empty slice means nothing in the gazetteer is close enough, which
// is a valid outcome surfaced downstream as "no route".
func (r *Resolver) ResolveCities(_ context.Context, point models.CoordinatePoint) []models.City {
	type scored struct {
		entry      GazetteerEntry
		distanceKm float64
	}

	var inRange []scored
	for _, entry := range r.entries {
		d := point.DistanceKm(models.CoordinatePoint{Lat: entry.Lat, Lon: entry.Lon})
		if d <= r.transitRadiusKm {
			inRange = append(inRange, scored{entry: entry, distanceKm: d})
		}
	}
	if len(inRange) == 0 {
		return nil
	}

	sort.SliceStable(inRange, func(i, j int) bool {
		if inRange[i].distanceKm != inRange[j].distanceKm {
			return inRange[i].distanceKm < inRange[j].distanceKm
		}
		return inRange[i].entry.Name < inRange[j].entry.Name
	})

	if inRange[0].distanceKm > r.anchorRadiusKm {
		if r.logger != nil {
			r.logger.Debug("no anchor city in range",
				slog.Float64("lat", point.Lat),
				slog.Float64("lon", point.Lon),
				slog.Float64("nearest_km", inRange[0].distanceKm))
		}
		return nil
	}

	cities := make([]models.City, 0, len(inRange))
	for i, s := range inRange {
		c := models.NewCity(s.entry.Name, s.entry.Country, i > 0)
		c.Lat = s.entry.Lat
		c.Lon = s.entry.Lon
		cities = append(cities, *c)
	}
	return cities
}

// NearestCityName returns the name of the gazetteer city closest to the
// coordinates, or the empty string when none lies within the anchor radius.
// It is the city assignment rule for imported schedule stops.
func (r *Resolver) NearestCityName(lat, lon float64) string {
	point := models.CoordinatePoint{Lat: lat, Lon: lon}
	best := ""
	bestKm := r.anchorRadiusKm
	for _, entry := range r.entries {
		d := point.DistanceKm(models.CoordinatePoint{Lat: entry.Lat, Lon: entry.Lon})
		if d < bestKm || (d == bestKm && best == "") {
			best = entry.Name
			bestKm = d
		}
	}
	return best
}
