package models

import "time"

// Leg is an immutable directed transport segment between two stations from a
// single provider. Legs are never mutated once created; the graph only
// accumulates and discards them.
type Leg struct {
	From   Station
	To     Station
	Direct bool
	Mode   TransportMode
	Price  float64
	// DurationHours is the travel time in hours.
	DurationHours float64
	Departure     time.Time
	Arrival       time.Time
}
