// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce ownership, and orchestrate repo calls and
// the generation pipeline. No SQL lives here; services depend on repo
// interfaces, not implementations.
package service

import (
	"context"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// ItineraryGenerator produces a day-by-day plan for a trip.
// *generation.Generator satisfies it.
type ItineraryGenerator interface {
	Itinerary(ctx context.Context, req domain.GenerationRequest) (domain.ItineraryResult, error)
}

// PackingGenerator produces a categorised packing list for a trip.
// *generation.Generator satisfies it.
type PackingGenerator interface {
	PackingList(ctx context.Context, req domain.GenerationRequest) (domain.PackingListResult, error)
}

// ImageFinder resolves a destination photo URL. It never fails.
type ImageFinder interface {
	DestinationImage(ctx context.Context, destination string) string
}

// TxRunner runs fn against repositories bound to one transaction.
// *repo.Store satisfies it.
type TxRunner interface {
	InTx(ctx context.Context, fn func(repo.Repos) error) error
}
