package models

// Itinerary is a chain of legs from an origin-city station to a
// destination-city station, with aggregate price and travel time.
// TotalPrice and TotalTime always equal the sums over Legs.
type Itinerary struct {
	Legs       []Leg
	TotalPrice float64
	TotalTime  float64
}

// Extend returns a new itinerary with the leg appended and the totals updated.
// The receiver is left untouched; the legs slice is copied so sibling branches
// of a search never alias each other's storage.
func (it Itinerary) Extend(leg Leg) Itinerary {
	legs := make([]Leg, len(it.Legs), len(it.Legs)+1)
	copy(legs, it.Legs)
	return Itinerary{
		Legs:       append(legs, leg),
		TotalPrice: it.TotalPrice + leg.Price,
		TotalTime:  it.TotalTime + leg.DurationHours,
	}
}

// CityChain returns the ordered city names traversed by the itinerary,
// starting at the first leg's origin city.
func (it Itinerary) CityChain() []string {
	if len(it.Legs) == 0 {
		return nil
	}
	chain := make([]string, 0, len(it.Legs)+1)
	chain = append(chain, it.Legs[0].From.CityName)
	for _, leg := range it.Legs {
		chain = append(chain, leg.To.CityName)
	}
	return chain
}

// LastStation returns the station the itinerary currently ends at.
// Calling it on an empty itinerary returns the zero Station.
func (it Itinerary) LastStation() Station {
	if len(it.Legs) == 0 {
		return Station{}
	}
	return it.Legs[len(it.Legs)-1].To
}
