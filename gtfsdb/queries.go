package gtfsdb

import (
	"fmt"
	"strings"
	"time"
)

// StopsForCity returns every stop assigned to the given gazetteer city.
func (c *Client) StopsForCity(cityName string) ([]Stop, error) {
	rows, err := c.DB.Query(
		`SELECT stop_id, stop_name, stop_lat, stop_lon, city_name
		 FROM stops WHERE city_name = ? ORDER BY stop_id`, cityName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stops []Stop
	for rows.Next() {
		var s Stop
		if err := rows.Scan(&s.ID, &s.Name, &s.Lat, &s.Lon, &s.CityName); err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}
	return stops, rows.Err()
}

var weekdayColumns = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

// DirectConnections returns the earliest single-trip connection per stop pair
// between two cities on the given service date. A connection exists when one
// trip visits a stop in fromCity and later a stop in toCity.
func (c *Client) DirectConnections(fromCity, toCity string, date time.Time) ([]Connection, error) {
	weekday, ok := weekdayColumns[date.Weekday()]
	if !ok {
		return nil, fmt.Errorf("no calendar column for weekday %v", date.Weekday())
	}
	serviceDate := date.Format("20060102")

	query := strings.ReplaceAll(`
		SELECT t.trip_id,
		       s1.stop_id, s1.stop_name, s1.stop_lat, s1.stop_lon,
		       s2.stop_id, s2.stop_name, s2.stop_lat, s2.stop_lon,
		       MIN(st1.departure_secs), st2.arrival_secs
		FROM stop_times st1
		JOIN stop_times st2 ON st2.trip_id = st1.trip_id
		                   AND st2.stop_sequence > st1.stop_sequence
		JOIN stops s1 ON s1.stop_id = st1.stop_id
		JOIN stops s2 ON s2.stop_id = st2.stop_id
		JOIN trips t ON t.trip_id = st1.trip_id
		JOIN calendar c ON c.service_id = t.service_id
		WHERE s1.city_name = ?
		  AND s2.city_name = ?
		  AND c.WEEKDAY = 1
		  AND c.start_date <= ?
		  AND c.end_date >= ?
		GROUP BY s1.stop_id, s2.stop_id
		ORDER BY s1.stop_id, s2.stop_id`, "WEEKDAY", weekday)

	rows, err := c.DB.Query(query, fromCity, toCity, serviceDate, serviceDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var connections []Connection
	for rows.Next() {
		var conn Connection
		err := rows.Scan(
			&conn.TripID,
			&conn.FromStopID, &conn.FromStopName, &conn.FromLat, &conn.FromLon,
			&conn.ToStopID, &conn.ToStopName, &conn.ToLat, &conn.ToLon,
			&conn.DepartureSecs, &conn.ArrivalSecs,
		)
		if err != nil {
			return nil, err
		}
		connections = append(connections, conn)
	}
	return connections, rows.Err()
}
