package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-polyline"
)

func TestPlanHandlerRequiresValidApiKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/plan.json?key=invalid")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, model.Code)
	assert.Equal(t, "permission denied", model.Text)
}

func TestPlanHandlerRequiresCoordinates(t *testing.T) {
	api := createTestApi(t)

	mux := http.NewServeMux()
	api.SetRoutes(mux)

	resp := getRaw(t, mux, "/api/where/plan.json?key=TEST&fromLat=52.5&fromLon=13.4")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "toLat")
	assert.Contains(t, resp.Body.String(), "toLon")
}

func TestPlanHandlerRejectsOutOfRangeCoordinates(t *testing.T) {
	api := createTestApi(t)

	mux := http.NewServeMux()
	api.SetRoutes(mux)

	resp := getRaw(t, mux, "/api/where/plan.json?key=TEST&fromLat=91.0&fromLon=13.4&toLat=51.3&toLon=12.4")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "latitude must be between -90 and 90")
}

func TestPlanHandlerRejectsInvertedPriceRange(t *testing.T) {
	api := createTestApi(t)

	mux := http.NewServeMux()
	api.SetRoutes(mux)

	resp := getRaw(t, mux, "/api/where/plan.json?key=TEST&fromLat=52.5&fromLon=13.4&toLat=51.3&toLon=12.4&minPrice=50&maxPrice=10")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "maxPrice")
}

func TestPlanHandlerRejectsInvalidDate(t *testing.T) {
	api := createTestApi(t)

	mux := http.NewServeMux()
	api.SetRoutes(mux)

	resp := getRaw(t, mux, "/api/where/plan.json?key=TEST&fromLat=52.5&fromLon=13.4&toLat=51.3&toLon=12.4&date=tomorrow")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "date")
}

func TestPlanHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t,
		"/api/where/plan.json?key=TEST&fromLat=52.5&fromLon=13.4&toLat=51.3&toLon=12.4&date=2026-08-31")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, "OK", model.Text)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)

	itineraries, ok := entry["itineraries"].([]interface{})
	require.True(t, ok)
	require.Len(t, itineraries, 2)

	// Cheapest first
	first, ok := itineraries[0].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 25.0, first["totalPrice"], 1e-9)
	assert.InDelta(t, 2.0, first["totalTime"], 1e-9)
	assert.EqualValues(t, 1, first["legCount"])

	cities, ok := first["cities"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"Berlin", "Leipzig"}, cities)

	points, ok := first["points"].(string)
	require.True(t, ok)
	coords, _, err := polyline.DecodeCoords([]byte(points))
	require.NoError(t, err)
	require.Len(t, coords, 2)
	assert.InDelta(t, 52.52, coords[0][0], 1e-4)
	assert.InDelta(t, 13.405, coords[0][1], 1e-4)
	assert.InDelta(t, 51.34, coords[1][0], 1e-4)
	assert.InDelta(t, 12.38, coords[1][1], 1e-4)

	assert.Equal(t, false, entry["truncated"])

	summary, ok := entry["summary"].(string)
	require.True(t, ok)
	assert.Contains(t, summary, "Berlin => Leipzig")
	assert.Contains(t, summary, "price: 25.00 EUR")

	refs, ok := data["references"].(map[string]interface{})
	require.True(t, ok)

	refCities, ok := refs["cities"].([]interface{})
	require.True(t, ok)
	require.Len(t, refCities, 2)
	origin, ok := refCities[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Berlin", origin["name"])
	assert.Equal(t, "DE", origin["countryCode"])

	refStations, ok := refs["stations"].([]interface{})
	require.True(t, ok)
	assert.Len(t, refStations, 2)
}

func TestPlanHandlerMaxResults(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t,
		"/api/where/plan.json?key=TEST&fromLat=52.5&fromLon=13.4&toLat=51.3&toLon=12.4&maxResults=1")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := model.Data.(map[string]interface{})
	entry := data["entry"].(map[string]interface{})
	itineraries := entry["itineraries"].([]interface{})
	assert.Len(t, itineraries, 1)
}

func TestPlanHandlerPriceRangeFiltersItineraries(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t,
		"/api/where/plan.json?key=TEST&fromLat=52.5&fromLon=13.4&toLat=51.3&toLon=12.4&minPrice=1&maxPrice=10")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data := model.Data.(map[string]interface{})
	entry := data["entry"].(map[string]interface{})
	itineraries := entry["itineraries"].([]interface{})
	assert.Empty(t, itineraries)
	assert.Contains(t, entry["summary"], "no itineraries found")
}

func TestPlanHandlerUnresolvedEndpointIsNotFound(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t,
		"/api/where/plan.json?key=TEST&fromLat=10.0&fromLon=10.0&toLat=51.3&toLon=12.4")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
	assert.Equal(t, "resource not found", model.Text)
}
