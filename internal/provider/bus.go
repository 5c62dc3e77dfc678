package provider

import (
	"context"
	"time"

	"wayfare.openjourney.org/gtfsdb"
	"wayfare.openjourney.org/internal/models"
)

// ScheduleStore answers city-level queries against an imported GTFS feed.
type ScheduleStore interface {
	StopsForCity(cityName string) ([]gtfsdb.Stop, error)
	ConnectionsForDate(fromCity, toCity string, date time.Time) ([]gtfsdb.Connection, error)
}

// Tariff prices a bus leg from the crow-flies distance between its stops.
type Tariff struct {
	BaseFare float64
	PerKm    float64
}

// BusScheduleProvider serves bus legs from a GTFS schedule store. Fares are
// derived from the tariff since GTFS static feeds carry no pricing.
type BusScheduleProvider struct {
	name     string
	schedule ScheduleStore
	tariff   Tariff
}

func NewBusScheduleProvider(name string, schedule ScheduleStore, tariff Tariff) *BusScheduleProvider {
	return &BusScheduleProvider{name: name, schedule: schedule, tariff: tariff}
}

func (p *BusScheduleProvider) Name() string {
	return p.name
}

func (p *BusScheduleProvider) Mode() models.TransportMode {
	return models.ModeBus
}

func (p *BusScheduleProvider) Stations(ctx context.Context, city models.City) ([]models.Station, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stops, err := p.schedule.StopsForCity(city.Name)
	if err != nil {
		return nil, err
	}

	var stations []models.Station
	for _, s := range stops {
		stations = append(stations, models.Station{
			ID:       s.ID,
			Name:     s.Name,
			Mode:     models.ModeBus,
			CityName: s.CityName,
		})
	}
	return stations, nil
}

func (p *BusScheduleProvider) Legs(ctx context.Context, from, to models.City, date time.Time) ([]models.Leg, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	connections, err := p.schedule.ConnectionsForDate(from.Name, to.Name, date)
	if err != nil {
		return nil, err
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var legs []models.Leg
	for _, conn := range connections {
		departure := midnight.Add(time.Duration(conn.DepartureSecs) * time.Second)
		arrival := midnight.Add(time.Duration(conn.ArrivalSecs) * time.Second)
		fromPoint := models.CoordinatePoint{Lat: conn.FromLat, Lon: conn.FromLon}
		toPoint := models.CoordinatePoint{Lat: conn.ToLat, Lon: conn.ToLon}
		distance := fromPoint.DistanceKm(toPoint)

		legs = append(legs, models.Leg{
			From: models.Station{
				ID:       conn.FromStopID,
				Name:     conn.FromStopName,
				Mode:     models.ModeBus,
				CityName: from.Name,
			},
			To: models.Station{
				ID:       conn.ToStopID,
				Name:     conn.ToStopName,
				Mode:     models.ModeBus,
				CityName: to.Name,
			},
			Direct:        true,
			Mode:          models.ModeBus,
			Price:         p.tariff.BaseFare + p.tariff.PerKm*distance,
			DurationHours: arrival.Sub(departure).Hours(),
			Departure:     departure,
			Arrival:       arrival,
		})
	}
	return legs, nil
}
