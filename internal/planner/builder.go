package planner

import (
	"context"
	"time"

	"wayfare.openjourney.org/internal/models"
)

// LegSource supplies raw legs between two cities on a date. Implementations
// degrade to an empty set on upstream failure instead of returning an error;
// partial data only shrinks the search space.
type LegSource interface {
	FetchLegs(ctx context.Context, from, to models.City, date time.Time) []models.Leg
}

// GraphBuilder assembles the full (unpruned) per-query graph from legs fetched
// for the origin/destination pair and for every transit candidate.
type GraphBuilder struct {
	legs LegSource
}

// NewGraphBuilder creates a GraphBuilder on top of the given leg source.
func NewGraphBuilder(legs LegSource) *GraphBuilder {
	return &GraphBuilder{legs: legs}
}

// Build fetches legs for (origin, destination) directly, then (origin, t) and
// (t, destination) for every transit candidate t, and derives the node set
// from the union of all fetched legs. Transit-to-transit legs are never
// fetched; chains longer than two legs only arise when stations coincide
// across the independently fetched sets. An empty graph is a valid outcome.
func (b *GraphBuilder) Build(ctx context.Context, origin, destination models.City, transit []models.City, date time.Time) *Graph {
	collected := b.legs.FetchLegs(ctx, origin, destination, date)
	for _, t := range transit {
		collected = append(collected, b.legs.FetchLegs(ctx, origin, t, date)...)
		collected = append(collected, b.legs.FetchLegs(ctx, t, destination, date)...)
	}

	g := NewGraph()
	for _, leg := range collected {
		g.addLeg(leg, origin.Name, destination.Name)
	}
	return g
}
