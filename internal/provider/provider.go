package provider

import (
	"context"
	"errors"
	"time"

	"wayfare.openjourney.org/internal/models"
)

// ErrTemporary marks a failure worth retrying, such as a rate-limit wait
// that ran out of time. Pool logs these as retryable so operators can tell
// load shedding apart from a broken provider.
var ErrTemporary = errors.New("temporary provider error")

// Provider is a single upstream transport network. Stations lists the
// boarding points a provider operates in a city; Legs lists the direct
// connections it runs between two cities on a date.
type Provider interface {
	Name() string
	Mode() models.TransportMode
	Stations(ctx context.Context, city models.City) ([]models.Station, error)
	Legs(ctx context.Context, from, to models.City, date time.Time) ([]models.Leg, error)
}
