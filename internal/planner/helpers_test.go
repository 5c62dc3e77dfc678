package planner

import (
	"context"
	"fmt"
	"time"

	"wayfare.openjourney.org/internal/models"
)

// stubLegSource serves canned legs keyed by "fromCity->toCity".
type stubLegSource struct {
	legs map[string][]models.Leg
	// calls records every fetched pair, in order.
	calls []string
}

func (s *stubLegSource) FetchLegs(_ context.Context, from, to models.City, _ time.Time) []models.Leg {
	key := fmt.Sprintf("%s->%s", from.Name, to.Name)
	s.calls = append(s.calls, key)
	return s.legs[key]
}

// stubResolver maps rounded coordinates to a fixed city list.
type stubResolver struct {
	cities map[models.CoordinatePoint][]models.City
}

func (s *stubResolver) ResolveCities(_ context.Context, point models.CoordinatePoint) []models.City {
	return s.cities[point]
}

func station(id, city string, mode models.TransportMode) models.Station {
	return models.Station{ID: id, Name: id, Mode: mode, CityName: city}
}

func leg(from, to models.Station, price, hours float64) models.Leg {
	return models.Leg{
		From:          from,
		To:            to,
		Direct:        true,
		Mode:          from.Mode,
		Price:         price,
		DurationHours: hours,
	}
}

func city(name string, transit bool) models.City {
	return models.City{Name: name, Transit: transit, Stations: map[string]models.Station{}}
}

// scenarioA builds the reference fixture: origin A (a1), destination B (b1),
// transit C (c1); a1->b1 price=100 time=5, a1->c1 price=40 time=2,
// c1->b1 price=50 time=2.
func scenarioA() (*stubLegSource, models.City, models.City, []models.City) {
	a1 := station("a1", "A", models.ModeFlight)
	b1 := station("b1", "B", models.ModeFlight)
	c1 := station("c1", "C", models.ModeBus)

	src := &stubLegSource{legs: map[string][]models.Leg{
		"A->B": {leg(a1, b1, 100, 5)},
		"A->C": {leg(a1, c1, 40, 2)},
		"C->B": {leg(c1, b1, 50, 2)},
	}}
	return src, city("A", false), city("B", false), []models.City{city("C", true)}
}

func buildScenarioA() *Graph {
	src, origin, destination, transit := scenarioA()
	return NewGraphBuilder(src).Build(context.Background(), origin, destination, transit, time.Time{})
}

func routeKey(it models.Itinerary) string {
	key := ""
	for _, l := range it.Legs {
		key += l.From.ID + ">" + l.To.ID + ";"
	}
	return key
}
