package gtfsdb

import (
	"database/sql"
	"fmt"
	"log/slog"

	"wayfare.openjourney.org/internal/logging"
)

// InsertStops adds stops to the database
func InsertStops(db *sql.DB, stops []Stop) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, slog.Default(), "insert_stops")

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO stops (
			stop_id, stop_name, stop_lat, stop_lon, city_name
		) VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, stop := range stops {
		if _, err := stmt.Exec(stop.ID, stop.Name, stop.Lat, stop.Lon, stop.CityName); err != nil {
			return fmt.Errorf("error inserting stop: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertRoutes adds routes to the database
func InsertRoutes(db *sql.DB, routes []Route) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, slog.Default(), "insert_routes")

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO routes (route_id, route_type) VALUES (?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, route := range routes {
		if _, err := stmt.Exec(route.ID, route.Type); err != nil {
			return fmt.Errorf("error inserting route: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertTrips adds trips to the database
func InsertTrips(db *sql.DB, trips []Trip) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, slog.Default(), "insert_trips")

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO trips (trip_id, route_id, service_id) VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, trip := range trips {
		if _, err := stmt.Exec(trip.ID, trip.RouteID, trip.ServiceID); err != nil {
			return fmt.Errorf("error inserting trip: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertStopTimes adds stop times to the database
func InsertStopTimes(db *sql.DB, stopTimes []StopTime) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, slog.Default(), "insert_stop_times")

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO stop_times (
			trip_id, stop_id, arrival_secs, departure_secs, stop_sequence
		) VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, st := range stopTimes {
		if _, err := stmt.Exec(st.TripID, st.StopID, st.ArrivalSecs, st.DepartureSecs, st.Sequence); err != nil {
			return fmt.Errorf("error inserting stop time: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// InsertCalendars adds service calendars to the database
func InsertCalendars(db *sql.DB, calendars []Calendar) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, slog.Default(), "insert_calendars")

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO calendar (
			service_id, monday, tuesday, wednesday, thursday, friday,
			saturday, sunday, start_date, end_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, cal := range calendars {
		if _, err := stmt.Exec(
			cal.ServiceID, cal.Monday, cal.Tuesday, cal.Wednesday, cal.Thursday,
			cal.Friday, cal.Saturday, cal.Sunday, cal.StartDate, cal.EndDate,
		); err != nil {
			return fmt.Errorf("error inserting calendar: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
