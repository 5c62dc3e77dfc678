package restapi

import (
	"errors"
	"net/http"
	"sort"

	"github.com/twpayne/go-polyline"

	"wayfare.openjourney.org/internal/models"
	"wayfare.openjourney.org/internal/planner"
	"wayfare.openjourney.org/internal/utils"
)

func (api *RestAPI) planHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	fieldErrors := utils.RequireParam(queryParams, "fromLat", nil)
	fieldErrors = utils.RequireParam(queryParams, "fromLon", fieldErrors)
	fieldErrors = utils.RequireParam(queryParams, "toLat", fieldErrors)
	fieldErrors = utils.RequireParam(queryParams, "toLon", fieldErrors)

	fromLat, fieldErrors := utils.ParseFloatParam(queryParams, "fromLat", fieldErrors)
	fromLon, _ := utils.ParseFloatParam(queryParams, "fromLon", fieldErrors)
	toLat, _ := utils.ParseFloatParam(queryParams, "toLat", fieldErrors)
	toLon, _ := utils.ParseFloatParam(queryParams, "toLon", fieldErrors)
	minPrice, _ := utils.ParseFloatParam(queryParams, "minPrice", fieldErrors)
	maxPrice, _ := utils.ParseFloatParam(queryParams, "maxPrice", fieldErrors)
	minTime, _ := utils.ParseFloatParam(queryParams, "minTime", fieldErrors)
	maxTime, _ := utils.ParseFloatParam(queryParams, "maxTime", fieldErrors)
	maxResults, _ := utils.ParseIntParam(queryParams, "maxResults", fieldErrors)
	date, fieldErrors, _ := utils.ParseDateParam(queryParams, "date", fieldErrors)

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	fieldErrors = utils.ValidateCoordinateParams("fromLat", "fromLon", fromLat, fromLon, fieldErrors)
	fieldErrors = utils.ValidateCoordinateParams("toLat", "toLon", toLat, toLon, fieldErrors)
	fieldErrors = utils.ValidateRangeParams("minPrice", "maxPrice", minPrice, maxPrice, fieldErrors)
	fieldErrors = utils.ValidateRangeParams("minTime", "maxTime", minTime, maxTime, fieldErrors)

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	query := models.Query{
		From:          models.CoordinatePoint{Lat: fromLat, Lon: fromLon},
		To:            models.CoordinatePoint{Lat: toLat, Lon: toLon},
		DepartureDate: date,
	}
	if queryParams.Get("minPrice") != "" && queryParams.Get("maxPrice") != "" {
		query.PriceRange = []float64{minPrice, maxPrice}
	}
	if queryParams.Get("minTime") != "" && queryParams.Get("maxTime") != "" {
		query.TimeRange = []float64{minTime, maxTime}
	}

	result, err := api.Planner.Plan(r.Context(), query)
	if err != nil {
		if errors.Is(err, planner.ErrNoRoute) {
			api.sendNotFound(w, r)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	itineraries := result.Itineraries
	if maxResults > 0 && maxResults < len(itineraries) {
		itineraries = itineraries[:maxResults]
	}

	cityIndex := map[string]models.City{
		result.Origin.Name:      result.Origin,
		result.Destination.Name: result.Destination,
	}
	for _, c := range result.Transit {
		cityIndex[c.Name] = c
	}

	summaries := make([]models.ItinerarySummary, 0, len(itineraries))
	for _, it := range itineraries {
		summary := models.NewItinerarySummary(it)
		summary.Points = encodeCityChain(summary.Cities, cityIndex)
		summaries = append(summaries, summary)
	}

	entry := models.TripPlanEntry{
		Itineraries: summaries,
		Truncated:   result.Truncated,
		Summary:     result.Rendered,
	}

	references := models.NewEmptyReferences()
	references.Cities = append(references.Cities, models.NewCityReference(result.Origin))
	for _, c := range result.Transit {
		references.Cities = append(references.Cities, models.NewCityReference(c))
	}
	references.Cities = append(references.Cities, models.NewCityReference(result.Destination))
	for _, c := range []models.City{result.Origin, result.Destination} {
		for _, id := range sortedStationIDs(c.Stations) {
			references.Stations = append(references.Stations, models.NewStationReference(c.Stations[id]))
		}
	}

	api.sendResponse(w, r, models.NewEntryResponse(entry, references))
}

func sortedStationIDs(stations map[string]models.Station) []string {
	ids := make([]string, 0, len(stations))
	for id := range stations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// encodeCityChain encodes the city chain's coordinates as a Google polyline.
// It returns "" when any city on the chain has no known coordinates.
func encodeCityChain(chain []string, cities map[string]models.City) string {
	coords := make([][]float64, 0, len(chain))
	for _, name := range chain {
		city, ok := cities[name]
		if !ok || (city.Lat == 0 && city.Lon == 0) {
			return ""
		}
		coords = append(coords, []float64{city.Lat, city.Lon})
	}
	if len(coords) == 0 {
		return ""
	}
	return string(polyline.EncodeCoords(coords))
}
