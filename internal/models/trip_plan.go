package models

// ItinerarySummary is the wire representation of one ranked itinerary.
type ItinerarySummary struct {
	Cities []string `json:"cities"`
	// Points is the itinerary's city chain encoded as a Google polyline,
	// empty when city coordinates are unknown.
	Points     string  `json:"points,omitempty"`
	LegCount   int     `json:"legCount"`
	TotalPrice float64 `json:"totalPrice"`
	TotalTime  float64 `json:"totalTime"`
}

// TripPlanEntry is the entry payload of the plan endpoint.
type TripPlanEntry struct {
	Itineraries []ItinerarySummary `json:"itineraries"`
	Truncated   bool               `json:"truncated"`
	Summary     string             `json:"summary"`
}

// NewItinerarySummary builds the wire representation of an itinerary.
func NewItinerarySummary(it Itinerary) ItinerarySummary {
	return ItinerarySummary{
		Cities:     it.CityChain(),
		LegCount:   len(it.Legs),
		TotalPrice: it.TotalPrice,
		TotalTime:  it.TotalTime,
	}
}
