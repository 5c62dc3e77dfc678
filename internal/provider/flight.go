package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wayfare.openjourney.org/internal/models"
)

// FlightCatalogProvider serves flights from a JSON catalog file. The catalog
// lists airports keyed to gazetteer city names and scheduled flights between
// them with a departure time of day and the weekdays they operate.
type FlightCatalogProvider struct {
	name        string
	path        string
	credentials *CredentialPool
}

func NewFlightCatalogProvider(name, path string, credentials *CredentialPool) *FlightCatalogProvider {
	if credentials == nil {
		credentials = NewCredentialPool(nil)
	}
	return &FlightCatalogProvider{name: name, path: path, credentials: credentials}
}

func (p *FlightCatalogProvider) Name() string {
	return p.name
}

func (p *FlightCatalogProvider) Mode() models.TransportMode {
	return models.ModeFlight
}

type catalogAirport struct {
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

type catalogFlight struct {
	FlightID        string   `json:"flight_id"`
	From            string   `json:"from"`
	To              string   `json:"to"`
	DepartureTime   string   `json:"departure_time"`
	DurationMinutes int      `json:"duration_minutes"`
	Days            []string `json:"days"`
	Price           struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"price"`
}

type catalog struct {
	Airports []catalogAirport `json:"airports"`
	Flights  []catalogFlight  `json:"flights"`
}

func (p *FlightCatalogProvider) loadCatalog() (*catalog, error) {
	// Each call rotates to the next upstream key, mirroring how a live
	// aggregator spreads quota across credentials.
	_ = p.credentials.Next()

	data, err := os.ReadFile(filepath.Clean(p.path))
	if err != nil {
		return nil, fmt.Errorf("%s read catalog: %w", p.name, err)
	}
	var c catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%s decode catalog: %w", p.name, err)
	}
	return &c, nil
}

func (p *FlightCatalogProvider) Stations(ctx context.Context, city models.City) ([]models.Station, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, err := p.loadCatalog()
	if err != nil {
		return nil, err
	}

	var stations []models.Station
	for _, a := range c.Airports {
		if a.City == city.Name {
			stations = append(stations, models.Station{
				ID:       a.Code,
				Name:     a.Name,
				Mode:     models.ModeFlight,
				CityName: a.City,
			})
		}
	}
	return stations, nil
}

func (p *FlightCatalogProvider) Legs(ctx context.Context, from, to models.City, date time.Time) ([]models.Leg, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, err := p.loadCatalog()
	if err != nil {
		return nil, err
	}

	airports := make(map[string]catalogAirport, len(c.Airports))
	for _, a := range c.Airports {
		airports[a.Code] = a
	}

	var legs []models.Leg
	for _, f := range c.Flights {
		origin, ok := airports[f.From]
		if !ok || origin.City != from.Name {
			continue
		}
		dest, ok := airports[f.To]
		if !ok || dest.City != to.Name {
			continue
		}
		if !flightRunsOn(f.Days, date.Weekday()) {
			continue
		}

		departure, err := departureOnDate(f.DepartureTime, date)
		if err != nil {
			return nil, fmt.Errorf("%s flight %s: %w", p.name, f.FlightID, err)
		}
		duration := time.Duration(f.DurationMinutes) * time.Minute

		legs = append(legs, models.Leg{
			From:          airportStation(origin),
			To:            airportStation(dest),
			Direct:        true,
			Mode:          models.ModeFlight,
			Price:         f.Price.Amount,
			DurationHours: duration.Hours(),
			Departure:     departure,
			Arrival:       departure.Add(duration),
		})
	}
	return legs, nil
}

func airportStation(a catalogAirport) models.Station {
	return models.Station{
		ID:       a.Code,
		Name:     a.Name,
		Mode:     models.ModeFlight,
		CityName: a.City,
	}
}

func flightRunsOn(days []string, weekday time.Weekday) bool {
	if len(days) == 0 {
		return true
	}
	for _, d := range days {
		if strings.EqualFold(d, weekday.String()) {
			return true
		}
	}
	return false
}

func departureOnDate(timeOfDay string, date time.Time) (time.Time, error) {
	parsed, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("departure time %q: %w", timeOfDay, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}
