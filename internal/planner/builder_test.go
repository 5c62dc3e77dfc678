package planner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare.openjourney.org/internal/models"
)

func TestBuildFetchesDirectAndTransitPairsOnly(t *testing.T) {
	src, origin, destination, transit := scenarioA()

	NewGraphBuilder(src).Build(context.Background(), origin, destination, transit, time.Time{})

	assert.Equal(t, []string{"A->B", "A->C", "C->B"}, src.calls,
		"one direct fetch plus origin->transit and transit->destination; never transit->transit")
}

func TestBuildDerivesNodesFromLegs(t *testing.T) {
	g := buildScenarioA()

	require.Equal(t, 3, len(g.Cities))
	assert.False(t, g.Cities["A"].Transit, "origin city is not a transit city")
	assert.False(t, g.Cities["B"].Transit, "destination city is not a transit city")
	assert.True(t, g.Cities["C"].Transit)

	assert.True(t, g.Cities["A"].HasStation("a1"))
	assert.True(t, g.Cities["B"].HasStation("b1"))
	assert.True(t, g.Cities["C"].HasStation("c1"))

	assert.Equal(t, 3, len(g.Legs))
	assert.Equal(t, 3, len(g.AllStations))
}

func TestBuildMergesCityRecordsByName(t *testing.T) {
	// The same city reached through different leg sets must collapse to one
	// node accumulating all of its stations.
	a1 := station("a1", "A", models.ModeFlight)
	a2 := station("a2", "A", models.ModeBus)
	b1 := station("b1", "B", models.ModeFlight)

	src := &stubLegSource{legs: map[string][]models.Leg{
		"A->B": {leg(a1, b1, 100, 5), leg(a2, b1, 60, 9)},
	}}

	g := NewGraphBuilder(src).Build(context.Background(), city("A", false), city("B", false), nil, time.Time{})

	require.Contains(t, g.Cities, "A")
	assert.Equal(t, 2, len(g.Cities["A"].Stations))
}

func TestBuildDeduplicatesStationsByID(t *testing.T) {
	a1 := station("a1", "A", models.ModeFlight)
	a1Renamed := models.Station{ID: "a1", Name: "A Central (alt)", Mode: models.ModeFlight, CityName: "A"}
	b1 := station("b1", "B", models.ModeFlight)
	c1 := station("c1", "C", models.ModeBus)

	src := &stubLegSource{legs: map[string][]models.Leg{
		"A->B": {leg(a1, b1, 100, 5)},
		"A->C": {leg(a1Renamed, c1, 40, 2)},
		"C->B": {leg(c1, b1, 50, 2)},
	}}

	g := NewGraphBuilder(src).Build(context.Background(), city("A", false), city("B", false),
		[]models.City{city("C", true)}, time.Time{})

	assert.Equal(t, 4, len(g.AllStations), "a1 discovered twice must count once")
	assert.Equal(t, "a1", g.AllStations["a1"].ID)
}

func TestBuildWithNoLegsYieldsEmptyGraph(t *testing.T) {
	src := &stubLegSource{legs: map[string][]models.Leg{}}

	g := NewGraphBuilder(src).Build(context.Background(), city("A", false), city("B", false),
		[]models.City{city("C", true)}, time.Time{})

	assert.Empty(t, g.Legs)
	assert.Empty(t, g.Cities)
	assert.Empty(t, g.AllStations)
}
