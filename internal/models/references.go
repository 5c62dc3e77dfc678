package models

// CityReference is the wire representation of a city referenced by a
// response entry.
type CityReference struct {
	Name        string  `json:"name"`
	CountryCode string  `json:"countryCode"`
	Transit     bool    `json:"transit"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// NewCityReference builds the wire representation of a city.
func NewCityReference(c City) CityReference {
	return CityReference{
		Name:        c.Name,
		CountryCode: c.CountryCode,
		Transit:     c.Transit,
		Lat:         c.Lat,
		Lon:         c.Lon,
	}
}

// StationReference is the wire representation of a station referenced by a
// response entry.
type StationReference struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Mode     string `json:"mode"`
	CityName string `json:"cityName"`
}

// NewStationReference builds the wire representation of a station.
func NewStationReference(s Station) StationReference {
	return StationReference{
		ID:       s.ID,
		Name:     s.Name,
		Mode:     string(s.Mode),
		CityName: s.CityName,
	}
}

// ReferencesModel References model for related data
type ReferencesModel struct {
	Cities   []CityReference    `json:"cities"`
	Stations []StationReference `json:"stations"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Cities:   []CityReference{},
		Stations: []StationReference{},
	}
}
