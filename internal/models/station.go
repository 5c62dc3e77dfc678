package models

// TransportMode identifies the upstream transport network a station or leg
// belongs to.
type TransportMode string

const (
	ModeFlight TransportMode = "flight"
	ModeBus    TransportMode = "bus"
)

// Modes lists every registered transport mode.
func Modes() []TransportMode {
	return []TransportMode{ModeFlight, ModeBus}
}

// Station is a provider-assigned boarding point within a City. Identity is the
// ID alone: the same station discovered via different queries deduplicates by
// ID even when the name or city fields differ, so containers holding stations
// must be keyed by ID.
type Station struct {
	ID       string
	Name     string
	Mode     TransportMode
	CityName string
}
