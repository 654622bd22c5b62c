package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// ItineraryService implements generation and management of itineraries.
type ItineraryService struct {
	repos  repo.Repos
	tx     TxRunner
	gen    ItineraryGenerator
	images ImageFinder
}

// NewItineraryService constructs an ItineraryService.
func NewItineraryService(repos repo.Repos, tx TxRunner, gen ItineraryGenerator, images ImageFinder) *ItineraryService {
	return &ItineraryService{repos: repos, tx: tx, gen: gen, images: images}
}

// NormalizeRequest trims free-text fields and re-normalises preferences so
// that values decoded without going through the domain constructors compare
// equal.
func NormalizeRequest(req domain.GenerationRequest) domain.GenerationRequest {
	req.Destination = strings.TrimSpace(req.Destination)
	req.Notes = strings.TrimSpace(req.Notes)
	interests := make([]string, 0, len(req.Interests))
	for _, i := range req.Interests {
		if i = strings.TrimSpace(i); i != "" {
			interests = append(interests, i)
		}
	}
	req.Interests = interests
	req.Accommodation = domain.NewPreference(req.Accommodation.String())
	req.Transportation = domain.NewPreference(req.Transportation.String())
	req.Dietary = domain.NewPreferenceSet(req.Dietary...)
	req.Accessibility = domain.NewPreferenceSet(req.Accessibility...)
	return req
}

// ValidateRequest checks a GenerationRequest before any model call is made.
func ValidateRequest(req domain.GenerationRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if req.DayCount() > domain.MaxTripDays {
		return fmt.Errorf("%w: trip may span at most %d days", domain.ErrValidation, domain.MaxTripDays)
	}
	return nil
}

// Generate runs the pipeline for req and persists the result for userID.
// The itinerary and every day are written in one transaction.
func (s *ItineraryService) Generate(ctx context.Context, userID uuid.UUID, req domain.GenerationRequest) (domain.Itinerary, error) {
	req = NormalizeRequest(req)
	if err := ValidateRequest(req); err != nil {
		return domain.Itinerary{}, err
	}

	result, err := s.gen.Itinerary(ctx, req)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Generate: %w", err)
	}

	it := domain.Itinerary{
		UserID:         userID,
		Title:          result.Title,
		Destination:    req.Destination,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Budget:         req.Budget,
		Interests:      req.Interests,
		Accommodation:  req.Accommodation,
		Transportation: req.Transportation,
		Dietary:        req.Dietary,
		Accessibility:  req.Accessibility,
		Notes:          req.Notes,
		ImageURL:       s.images.DestinationImage(ctx, req.Destination),
	}

	var saved domain.Itinerary
	err = s.tx.InTx(ctx, func(r repo.Repos) error {
		created, err := r.Itineraries.Create(ctx, it)
		if err != nil {
			return err
		}
		created.Days = make([]domain.Day, 0, len(result.Days))
		for _, d := range result.Days {
			d.ItineraryID = created.ID
			stored, err := r.Days.Create(ctx, d)
			if err != nil {
				return err
			}
			created.Days = append(created.Days, stored)
		}
		saved = created
		return nil
	})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Generate: %w", err)
	}
	return saved, nil
}

// List returns one page of the user's itineraries without their days.
func (s *ItineraryService) List(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Itinerary, int64, error) {
	items, total, err := s.repos.Itineraries.ListPaged(ctx, userID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ItineraryService.List: %w", err)
	}
	return items, total, nil
}

// Get returns a complete itinerary with its days ordered by day number.
func (s *ItineraryService) Get(ctx context.Context, userID, id uuid.UUID) (domain.Itinerary, error) {
	it, err := s.repos.Itineraries.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Get: %w", err)
	}
	days, err := s.repos.Days.ListByItinerary(ctx, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Get: %w", err)
	}
	it.Days = days
	return it, nil
}

// Update applies patch to the user's itinerary. Changing the destination
// also refreshes the destination image.
func (s *ItineraryService) Update(ctx context.Context, userID, id uuid.UUID, patch domain.ItineraryPatch) (domain.Itinerary, error) {
	it, err := s.repos.Itineraries.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}

	previous := it.Destination
	if err := applyItineraryPatch(&it, patch); err != nil {
		return domain.Itinerary{}, err
	}
	if !strings.EqualFold(previous, it.Destination) {
		it.ImageURL = s.images.DestinationImage(ctx, it.Destination)
	}

	updated, err := s.repos.Itineraries.Update(ctx, it)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}
	days, err := s.repos.Days.ListByItinerary(ctx, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}
	updated.Days = days
	return updated, nil
}

// Delete removes the itinerary with its days and packing list.
func (s *ItineraryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repos.Itineraries.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	return nil
}

func applyItineraryPatch(it *domain.Itinerary, p domain.ItineraryPatch) error {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if err := validateVar("title", title, "required,max=200"); err != nil {
			return err
		}
		it.Title = title
	}
	if p.Destination != nil {
		dest := strings.TrimSpace(*p.Destination)
		if err := validateVar("destination", dest, "required,max=200"); err != nil {
			return err
		}
		it.Destination = dest
	}
	if p.Budget != nil {
		if err := validateVar("budget", *p.Budget, budgetRule); err != nil {
			return err
		}
		it.Budget = *p.Budget
	}
	if p.Notes != nil {
		notes := strings.TrimSpace(*p.Notes)
		if err := validateVar("additional_notes", notes, "max=2000"); err != nil {
			return err
		}
		it.Notes = notes
	}
	if p.Interests != nil {
		if err := validateVar("interests", *p.Interests, "max=20,dive,required,max=50"); err != nil {
			return err
		}
		it.Interests = *p.Interests
	}
	if p.Accommodation != nil {
		it.Accommodation = *p.Accommodation
	}
	if p.Transportation != nil {
		it.Transportation = *p.Transportation
	}
	if p.Dietary != nil {
		it.Dietary = domain.NewPreferenceSet(*p.Dietary...)
	}
	if p.Accessibility != nil {
		it.Accessibility = domain.NewPreferenceSet(*p.Accessibility...)
	}
	return nil
}
