package gtfsdb

// Stop is a boarding point from the GTFS feed, tagged with the gazetteer city
// it was assigned to on import.
type Stop struct {
	ID       string  // stop_id
	Name     string  // stop_name
	Lat      float64 // stop_lat
	Lon      float64 // stop_lon
	CityName string  // assigned on import, empty when no city was in range
}

// Route is a transit route from the GTFS feed.
type Route struct {
	ID   string // route_id
	Type int    // route_type
}

// Trip is a scheduled run of a route under a service calendar.
type Trip struct {
	ID        string // trip_id
	RouteID   string // route_id
	ServiceID string // service_id
}

// StopTime is one scheduled call of a trip at a stop. Times are seconds after
// local midnight.
type StopTime struct {
	TripID        string
	StopID        string
	ArrivalSecs   int64
	DepartureSecs int64
	Sequence      int
}

// Calendar is the weekday service pattern of a service id. Dates are YYYYMMDD
// strings, matching the GTFS wire format.
type Calendar struct {
	ServiceID string
	Monday    int
	Tuesday   int
	Wednesday int
	Thursday  int
	Friday    int
	Saturday  int
	Sunday    int
	StartDate string
	EndDate   string
}

// Connection is a direct (single-trip) link between a stop in one city and a
// later stop of the same trip in another city on a given service day.
type Connection struct {
	TripID        string
	FromStopID    string
	FromStopName  string
	FromLat       float64
	FromLon       float64
	ToStopID      string
	ToStopName    string
	ToLat         float64
	ToLon         float64
	DepartureSecs int64
	ArrivalSecs   int64
}
