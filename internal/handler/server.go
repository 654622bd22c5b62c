// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (itinerary.go, day.go, etc.) but share the same Server struct so they
// can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/service"
)

// ItineraryServicer defines the itinerary operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or the model.
type ItineraryServicer interface {
	Generate(ctx context.Context, userID uuid.UUID, req domain.GenerationRequest) (domain.Itinerary, error)
	List(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Itinerary, int64, error)
	Get(ctx context.Context, userID, id uuid.UUID) (domain.Itinerary, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch domain.ItineraryPatch) (domain.Itinerary, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// DayServicer defines the day and activity operations.
type DayServicer interface {
	ListDays(ctx context.Context, userID, itineraryID uuid.UUID) ([]domain.Day, error)
	GetDay(ctx context.Context, userID, itineraryID, dayID uuid.UUID) (domain.Day, error)
	CreateDay(ctx context.Context, userID, itineraryID uuid.UUID, day domain.Day) (domain.Day, error)
	UpdateDay(ctx context.Context, userID, itineraryID, dayID uuid.UUID, patch domain.DayPatch) (domain.Day, error)
	DeleteDay(ctx context.Context, userID, itineraryID, dayID uuid.UUID) error
	AddActivity(ctx context.Context, userID, itineraryID, dayID uuid.UUID, a domain.Activity) (domain.Day, error)
	UpdateActivity(ctx context.Context, userID, itineraryID, dayID uuid.UUID, index int, a domain.Activity) (domain.Day, error)
	DeleteActivity(ctx context.Context, userID, itineraryID, dayID uuid.UUID, index int) (domain.Day, error)
	ReorderActivities(ctx context.Context, userID, itineraryID, dayID uuid.UUID, list []domain.Activity) (domain.Day, error)
}

// PackingServicer defines the packing list operations.
type PackingServicer interface {
	Get(ctx context.Context, userID, itineraryID uuid.UUID) (domain.PackingList, error)
	Generate(ctx context.Context, userID, itineraryID uuid.UUID) (domain.PackingList, error)
	AddItem(ctx context.Context, userID, itineraryID uuid.UUID, item domain.PackingItem) (domain.PackingItem, error)
	UpdateItem(ctx context.Context, userID, itineraryID, itemID uuid.UUID, patch domain.PackingItemPatch) (domain.PackingItem, error)
	DeleteItem(ctx context.Context, userID, itineraryID, itemID uuid.UUID) error
}

// ProfileServicer defines the profile operations.
type ProfileServicer interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, patch domain.ProfilePatch) (domain.Profile, error)
}

// ExportServicer renders an itinerary in a downloadable format.
type ExportServicer interface {
	Export(ctx context.Context, userID, id uuid.UUID, format string) (service.Document, error)
}

// ShareServicer emails an itinerary.
type ShareServicer interface {
	Share(ctx context.Context, userID, id uuid.UUID, email string) error
}

// Services groups the dependencies of Server. Nil members are allowed in
// tests that only exercise other routes.
type Services struct {
	Itineraries ItineraryServicer
	Days        DayServicer
	Packing     PackingServicer
	Profiles    ProfileServicer
	Export      ExportServicer
	Share       ShareServicer
}

// Server holds the handlers for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	itineraries ItineraryServicer
	days        DayServicer
	packing     PackingServicer
	profiles    ProfileServicer
	export      ExportServicer
	share       ShareServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(svc Services) *Server {
	return &Server{
		itineraries: svc.Itineraries,
		days:        svc.Days,
		packing:     svc.Packing,
		profiles:    svc.Profiles,
		export:      svc.Export,
		share:       svc.Share,
	}
}
