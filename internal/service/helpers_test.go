package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func goaRequest() domain.GenerationRequest {
	return domain.GenerationRequest{
		Destination: "Goa",
		StartDate:   date("2025-06-01"),
		EndDate:     date("2025-06-03"),
		Budget:      30000,
		Interests:   []string{"food"},
	}
}

func goaItinerary(userID uuid.UUID) domain.Itinerary {
	return domain.Itinerary{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       "Tastes of Goa",
		Destination: "Goa",
		StartDate:   date("2025-06-01"),
		EndDate:     date("2025-06-03"),
		Budget:      30000,
		Interests:   []string{"food"},
		UpdatedAt:   time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

// ownerRepo returns an itinerary repo that only knows it for its owner.
func ownerRepo(it domain.Itinerary) *mockItineraryRepo {
	return &mockItineraryRepo{
		getByID: func(_ context.Context, userID, id uuid.UUID) (domain.Itinerary, error) {
			if userID != it.UserID || id != it.ID {
				return domain.Itinerary{}, domain.ErrNotFound
			}
			return it, nil
		},
	}
}
