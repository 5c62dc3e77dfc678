package gtfsdb

import (
	"database/sql"
	"time"

	"github.com/jamespfennell/gtfs"
)

// Client is the entry point for the schedule store.
type Client struct {
	config        Config
	DB            *sql.DB
	importRuntime time.Duration
}

// NewClient creates a Client with the provided configuration, creating the
// schema when it does not exist yet.
func NewClient(config Config) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, err
	}
	return &Client{config: config, DB: db}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// ImportRuntime reports how long the last ImportStatic call took.
func (c *Client) ImportRuntime() time.Duration {
	return c.importRuntime
}

// ImportStatic stores the parsed GTFS static feed. assignCity maps a stop's
// coordinates to a gazetteer city name; stops it maps to the empty string are
// stored but never matched by city queries.
func (c *Client) ImportStatic(data *gtfs.Static, assignCity func(lat, lon float64) string) error {
	startTime := time.Now()
	defer func() {
		c.importRuntime = time.Since(startTime)
	}()

	var stops []Stop
	for _, s := range data.Stops {
		if s.Latitude == nil || s.Longitude == nil {
			continue
		}
		stops = append(stops, Stop{
			ID:       s.Id,
			Name:     s.Name,
			Lat:      *s.Latitude,
			Lon:      *s.Longitude,
			CityName: assignCity(*s.Latitude, *s.Longitude),
		})
	}
	if err := InsertStops(c.DB, stops); err != nil {
		return err
	}

	var routes []Route
	for _, r := range data.Routes {
		routes = append(routes, Route{ID: r.Id, Type: int(r.Type)})
	}
	if err := InsertRoutes(c.DB, routes); err != nil {
		return err
	}

	var calendars []Calendar
	for _, s := range data.Services {
		calendars = append(calendars, Calendar{
			ServiceID: s.Id,
			Monday:    boolToInt(s.Monday),
			Tuesday:   boolToInt(s.Tuesday),
			Wednesday: boolToInt(s.Wednesday),
			Thursday:  boolToInt(s.Thursday),
			Friday:    boolToInt(s.Friday),
			Saturday:  boolToInt(s.Saturday),
			Sunday:    boolToInt(s.Sunday),
			StartDate: s.StartDate.Format("20060102"),
			EndDate:   s.EndDate.Format("20060102"),
		})
	}
	if err := InsertCalendars(c.DB, calendars); err != nil {
		return err
	}

	var trips []Trip
	var stopTimes []StopTime
	for _, t := range data.Trips {
		trips = append(trips, Trip{
			ID:        t.ID,
			RouteID:   t.Route.Id,
			ServiceID: t.Service.Id,
		})
		for _, st := range t.StopTimes {
			stopTimes = append(stopTimes, StopTime{
				TripID:        t.ID,
				StopID:        st.Stop.Id,
				ArrivalSecs:   int64(st.ArrivalTime / time.Second),
				DepartureSecs: int64(st.DepartureTime / time.Second),
				Sequence:      int(st.StopSequence),
			})
		}
	}
	if err := InsertTrips(c.DB, trips); err != nil {
		return err
	}
	return InsertStopTimes(c.DB, stopTimes)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
