package models

import "time"

// Query is a fully parsed trip request. Range fields follow the wire
// convention of the input payload: a bound applies only when exactly two
// values were supplied, otherwise the dimension is unconstrained.
type Query struct {
	From          CoordinatePoint
	To            CoordinatePoint
	DepartureDate time.Time
	PriceRange    []float64
	TimeRange     []float64
}

// PriceBound returns the inclusive [min,max] price bound and whether one is
// active for this query.
func (q Query) PriceBound() (min, max float64, ok bool) {
	return rangeBound(q.PriceRange)
}

// TimeBound returns the inclusive [min,max] travel-time bound in hours and
// whether one is active for this query.
func (q Query) TimeBound() (min, max float64, ok bool) {
	return rangeBound(q.TimeRange)
}

func rangeBound(r []float64) (float64, float64, bool) {
	if len(r) != 2 {
		return 0, 0, false
	}
	return r[0], r[1], true
}
