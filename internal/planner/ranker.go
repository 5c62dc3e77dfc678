package planner

import (
	"fmt"
	"sort"
	"strings"

	"wayfare.openjourney.org/internal/models"
)

// NoItinerariesMessage is the fixed reply rendered when the search produced
// nothing.
const NoItinerariesMessage = "no itineraries found"

// TruncationNote is appended to a rendering when the search was cut off at the
// hop cap, so a partial result is never mistaken for an exhaustive one.
const TruncationNote = "(search truncated before exploring all connections)"

// Rank orders itineraries by ascending total price; among equal-price
// itineraries the longer one sorts first. The descending-time tie break is a
// legacy rule kept on purpose. The sort is stable, so itineraries equal on
// both keys keep their enumeration order and the ranking stays deterministic.
func Rank(routes []models.Itinerary) {
	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].TotalPrice != routes[j].TotalPrice {
			return routes[i].TotalPrice < routes[j].TotalPrice
		}
		return routes[i].TotalTime > routes[j].TotalTime
	})
}

// TopN returns the first n itineraries of an already ranked slice, or all of
// them when fewer exist.
func TopN(routes []models.Itinerary, n int) []models.Itinerary {
	if n <= 0 || n >= len(routes) {
		return routes
	}
	return routes[:n]
}

// Render produces the reply text for a ranked itinerary list: one line per
// itinerary with the traversed city chain and the totals, or the fixed
// no-itineraries message. The truncation note is appended on its own line
// when the search was cut short.
func Render(routes []models.Itinerary, currency string, truncated bool) string {
	if len(routes) == 0 {
		if truncated {
			return NoItinerariesMessage + "\n" + TruncationNote
		}
		return NoItinerariesMessage
	}

	lines := make([]string, 0, len(routes)+1)
	for _, route := range routes {
		lines = append(lines, fmt.Sprintf("%s | price: %.2f %s | time: %.1f h",
			strings.Join(route.CityChain(), " => "), route.TotalPrice, currency, route.TotalTime))
	}
	if truncated {
		lines = append(lines, TruncationNote)
	}
	return strings.Join(lines, "\n")
}
