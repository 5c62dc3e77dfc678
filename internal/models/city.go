package models

// City is a named place hosting zero or more Stations. Identity is the Name
// alone: partial City records discovered through different leg fetches merge
// under the same name key, so containers holding cities must be keyed by Name.
type City struct {
	Name        string
	CountryCode string
	// Transit marks the city as an intermediate hop candidate rather than a
	// query endpoint.
	Transit  bool
	Stations map[string]Station
	Lat      float64
	Lon      float64
}

// NewCity creates a City with an initialized (empty) station set.
func NewCity(name, countryCode string, transit bool) *City {
	return &City{
		Name:        name,
		CountryCode: countryCode,
		Transit:     transit,
		Stations:    map[string]Station{},
	}
}

// AddStation inserts a station into the city's station set, deduplicating by
// station ID. The first record seen for an ID wins.
func (c *City) AddStation(s Station) {
	if c.Stations == nil {
		c.Stations = map[string]Station{}
	}
	if _, ok := c.Stations[s.ID]; !ok {
		c.Stations[s.ID] = s
	}
}

// HasStation reports whether the city hosts the station with the given ID.
func (c *City) HasStation(id string) bool {
	_, ok := c.Stations[id]
	return ok
}
