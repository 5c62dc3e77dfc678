package planner

import (
	"wayfare.openjourney.org/internal/models"
)

// Prune discards, in place, every leg and station that cannot reach the named
// destination city by following legs forward. It walks the graph backward from
// every destination-city station: popping a station marks each of its incoming
// legs retained and enqueues that leg's origin. Origins are enqueued even when
// already visited; termination is guaranteed because a leg is marked at most
// once, which bounds the total number of enqueues by the edge count.
func (g *Graph) Prune(destinationName string) {
	destination, ok := g.Cities[destinationName]
	if !ok {
		// The destination never appeared in any leg; nothing can reach it.
		g.Cities = map[string]*models.City{}
		g.Legs = nil
		g.AllStations = map[string]models.Station{}
		return
	}

	visited := map[string]bool{}
	var queue []models.Station
	for _, s := range destination.Stations {
		visited[s.ID] = true
		queue = append(queue, s)
	}

	retained := make([]bool, len(g.Legs))
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for i := range g.Legs {
			if g.Legs[i].To.ID != current.ID || retained[i] {
				continue
			}
			retained[i] = true
			origin := g.Legs[i].From
			visited[origin.ID] = true
			queue = append(queue, origin)
		}
	}

	kept := make([]models.Leg, 0, len(g.Legs))
	for i, leg := range g.Legs {
		if retained[i] {
			kept = append(kept, leg)
		}
	}
	g.Legs = kept

	stations := make(map[string]models.Station, len(visited))
	for id, s := range g.AllStations {
		if visited[id] {
			stations[id] = s
		}
	}
	g.AllStations = stations

	for name, city := range g.Cities {
		surviving := map[string]models.Station{}
		for id, s := range city.Stations {
			if visited[id] {
				surviving[id] = s
			}
		}
		if len(surviving) == 0 {
			delete(g.Cities, name)
			continue
		}
		city.Stations = surviving
	}
}
