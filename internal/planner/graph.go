package planner

import (
	"wayfare.openjourney.org/internal/models"
)

// Graph is the per-query working set the engine operates on: city nodes keyed
// by name, the leg edge set, and the union of every station seen keyed by ID.
// A Graph is built once per query, pruned in place, searched, and dropped.
// It is not safe for concurrent use; each query constructs its own instance.
type Graph struct {
	Cities      map[string]*models.City
	Legs        []models.Leg
	AllStations map[string]models.Station
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Cities:      map[string]*models.City{},
		AllStations: map[string]models.Station{},
	}
}

// addLeg appends the leg to the edge set and ensures city nodes and station
// records exist for both endpoints. A city is flagged as transit exactly when
// its name differs from both the origin and the destination city name.
func (g *Graph) addLeg(leg models.Leg, originName, destinationName string) {
	g.Legs = append(g.Legs, leg)
	g.ensureEndpoint(leg.From, originName, destinationName)
	g.ensureEndpoint(leg.To, originName, destinationName)
}

func (g *Graph) ensureEndpoint(s models.Station, originName, destinationName string) {
	city, ok := g.Cities[s.CityName]
	if !ok {
		transit := s.CityName != originName && s.CityName != destinationName
		city = models.NewCity(s.CityName, "", transit)
		g.Cities[s.CityName] = city
	}
	city.AddStation(s)
	if _, seen := g.AllStations[s.ID]; !seen {
		g.AllStations[s.ID] = s
	}
}

// OutgoingLegs returns the legs departing from the given station, in edge-set
// order.
func (g *Graph) OutgoingLegs(stationID string) []models.Leg {
	var out []models.Leg
	for _, leg := range g.Legs {
		if leg.From.ID == stationID {
			out = append(out, leg)
		}
	}
	return out
}
