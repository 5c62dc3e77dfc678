package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"wayfare.openjourney.org/internal/models"
)

type stubProvider struct {
	name     string
	mode     models.TransportMode
	stations []models.Station
	legs     []models.Leg
	err      error
	delay    time.Duration
}

func (s *stubProvider) Name() string               { return s.name }
func (s *stubProvider) Mode() models.TransportMode { return s.mode }

func (s *stubProvider) Stations(ctx context.Context, city models.City) ([]models.Station, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.stations, nil
}

func (s *stubProvider) Legs(ctx context.Context, from, to models.City, date time.Time) ([]models.Leg, error) {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.legs, nil
}

func namedCity(name, country string) models.City {
	return *models.NewCity(name, country, false)
}

func stubLeg(fromID, toID string, price float64) models.Leg {
	return models.Leg{
		From:   models.Station{ID: fromID, Mode: models.ModeBus},
		To:     models.Station{ID: toID, Mode: models.ModeBus},
		Direct: true,
		Mode:   models.ModeBus,
		Price:  price,
	}
}

func TestPoolMergesAllProviders(t *testing.T) {
	p1 := &stubProvider{name: "air", mode: models.ModeFlight, legs: []models.Leg{stubLeg("a1", "b1", 100)}}
	p2 := &stubProvider{name: "bus", mode: models.ModeBus, legs: []models.Leg{stubLeg("a2", "b2", 40)}}
	pool := NewPool([]Provider{p1, p2}, time.Second)

	legs := pool.FetchLegs(context.Background(), namedCity("A", ""), namedCity("B", ""), time.Now())
	require.Len(t, legs, 2)
	assert.Equal(t, "a1", legs[0].From.ID)
	assert.Equal(t, "a2", legs[1].From.ID)
}

func TestPoolSwallowsProviderErrors(t *testing.T) {
	healthy := &stubProvider{name: "bus", mode: models.ModeBus, legs: []models.Leg{stubLeg("a2", "b2", 40)}}
	broken := &stubProvider{name: "air", mode: models.ModeFlight, err: errors.New("upstream down")}
	pool := NewPool([]Provider{broken, healthy}, time.Second)

	legs := pool.FetchLegs(context.Background(), namedCity("A", ""), namedCity("B", ""), time.Now())
	require.Len(t, legs, 1)
	assert.Equal(t, "a2", legs[0].From.ID)
}

func TestPoolTimesOutSlowProvider(t *testing.T) {
	slow := &stubProvider{name: "slow", mode: models.ModeBus, delay: 500 * time.Millisecond, legs: []models.Leg{stubLeg("x", "y", 1)}}
	fast := &stubProvider{name: "fast", mode: models.ModeBus, legs: []models.Leg{stubLeg("a", "b", 2)}}
	pool := NewPool([]Provider{slow, fast}, 20*time.Millisecond)

	legs := pool.FetchLegs(context.Background(), namedCity("A", ""), namedCity("B", ""), time.Now())
	require.Len(t, legs, 1)
	assert.Equal(t, "a", legs[0].From.ID)
}

func TestPoolFetchStationsDeduplicates(t *testing.T) {
	shared := models.Station{ID: "hub", Name: "Hub", Mode: models.ModeBus}
	p1 := &stubProvider{name: "one", mode: models.ModeBus, stations: []models.Station{shared}}
	p2 := &stubProvider{name: "two", mode: models.ModeBus, stations: []models.Station{shared, {ID: "other", Mode: models.ModeBus}}}
	pool := NewPool([]Provider{p1, p2}, time.Second)

	stations := pool.FetchStations(context.Background(), namedCity("A", ""))
	require.Len(t, stations, 2)
	assert.Equal(t, "hub", stations[0].ID)
	assert.Equal(t, "other", stations[1].ID)
}

func TestRateLimitedProviderDelegates(t *testing.T) {
	inner := &stubProvider{name: "air", mode: models.ModeFlight, legs: []models.Leg{stubLeg("a", "b", 10)}}
	limited := NewRateLimitedProvider(inner, rate.Inf, 1)

	assert.Equal(t, "air", limited.Name())
	assert.Equal(t, models.ModeFlight, limited.Mode())

	legs, err := limited.Legs(context.Background(), namedCity("A", ""), namedCity("B", ""), time.Now())
	require.NoError(t, err)
	assert.Len(t, legs, 1)
}

func TestRateLimitedProviderHonorsCancelledContext(t *testing.T) {
	inner := &stubProvider{name: "air", mode: models.ModeFlight}
	limited := NewRateLimitedProvider(inner, rate.Every(time.Hour), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Burst of one is spent first, the second call must wait and sees the
	// cancelled context.
	_, _ = limited.Legs(context.Background(), namedCity("A", ""), namedCity("B", ""), time.Now())
	_, err := limited.Legs(ctx, namedCity("A", ""), namedCity("B", ""), time.Now())
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrTemporary),
		"a caller that gave up is not a retryable condition")
}

func TestRateLimitedProviderReportsTemporaryOnDeadline(t *testing.T) {
	inner := &stubProvider{name: "air", mode: models.ModeFlight}
	limited := NewRateLimitedProvider(inner, rate.Every(time.Hour), 1)

	// Spend the burst so the next wait cannot finish before the deadline.
	_, err := limited.Stations(context.Background(), namedCity("A", ""))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = limited.Stations(ctx, namedCity("A", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemporary)
	assert.Contains(t, err.Error(), "air")
}

func TestPoolProvidersAccessor(t *testing.T) {
	p1 := &stubProvider{name: "air", mode: models.ModeFlight}
	pool := NewPool([]Provider{p1}, 0)
	require.Len(t, pool.Providers(), 1)
	assert.Equal(t, "air", pool.Providers()[0].Name())
}
