package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// DayService manages the days of an itinerary and the ordered activities
// stored on each day. Every operation first checks that the itinerary
// belongs to the caller.
type DayService struct {
	itineraries repo.ItineraryRepo
	days        repo.DayRepo
}

// NewDayService constructs a DayService.
func NewDayService(itineraries repo.ItineraryRepo, days repo.DayRepo) *DayService {
	return &DayService{itineraries: itineraries, days: days}
}

func (s *DayService) owned(ctx context.Context, userID, itineraryID uuid.UUID) (domain.Itinerary, error) {
	return s.itineraries.GetByID(ctx, userID, itineraryID)
}

// ListDays returns the itinerary's days ordered by day number.
func (s *DayService) ListDays(ctx context.Context, userID, itineraryID uuid.UUID) ([]domain.Day, error) {
	if _, err := s.owned(ctx, userID, itineraryID); err != nil {
		return nil, fmt.Errorf("service.DayService.ListDays: %w", err)
	}
	days, err := s.days.ListByItinerary(ctx, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("service.DayService.ListDays: %w", err)
	}
	return days, nil
}

// GetDay returns one day of the itinerary.
func (s *DayService) GetDay(ctx context.Context, userID, itineraryID, dayID uuid.UUID) (domain.Day, error) {
	if _, err := s.owned(ctx, userID, itineraryID); err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.GetDay: %w", err)
	}
	d, err := s.days.GetByID(ctx, itineraryID, dayID)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.GetDay: %w", err)
	}
	return d, nil
}

// CreateDay appends a day. A zero DayNumber becomes the next number after the
// existing days and a zero Date is derived from the itinerary start date.
func (s *DayService) CreateDay(ctx context.Context, userID, itineraryID uuid.UUID, day domain.Day) (domain.Day, error) {
	it, err := s.owned(ctx, userID, itineraryID)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.CreateDay: %w", err)
	}
	if day.DayNumber == 0 {
		existing, err := s.days.ListByItinerary(ctx, itineraryID)
		if err != nil {
			return domain.Day{}, fmt.Errorf("service.DayService.CreateDay: %w", err)
		}
		for _, d := range existing {
			day.DayNumber = max(day.DayNumber, d.DayNumber)
		}
		day.DayNumber++
	}
	if day.DayNumber < 1 {
		return domain.Day{}, fmt.Errorf("%w: day_number must be at least 1", domain.ErrValidation)
	}
	if day.Date.IsZero() {
		day.Date = it.Request().DateForDay(day.DayNumber)
	}
	day.Description = strings.TrimSpace(day.Description)
	if err := validateActivities(day.Activities); err != nil {
		return domain.Day{}, err
	}
	day.ItineraryID = itineraryID

	created, err := s.days.Create(ctx, day)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.CreateDay: %w", err)
	}
	return created, nil
}

// UpdateDay applies patch to one day.
func (s *DayService) UpdateDay(ctx context.Context, userID, itineraryID, dayID uuid.UUID, patch domain.DayPatch) (domain.Day, error) {
	return s.mutate(ctx, "UpdateDay", userID, itineraryID, dayID, func(d *domain.Day) error {
		if patch.DayNumber != nil {
			if *patch.DayNumber < 1 {
				return fmt.Errorf("%w: day_number must be at least 1", domain.ErrValidation)
			}
			d.DayNumber = *patch.DayNumber
		}
		if patch.Date != nil {
			d.Date = *patch.Date
		}
		if patch.Description != nil {
			d.Description = strings.TrimSpace(*patch.Description)
		}
		return nil
	})
}

// DeleteDay removes one day.
func (s *DayService) DeleteDay(ctx context.Context, userID, itineraryID, dayID uuid.UUID) error {
	if _, err := s.owned(ctx, userID, itineraryID); err != nil {
		return fmt.Errorf("service.DayService.DeleteDay: %w", err)
	}
	if err := s.days.Delete(ctx, itineraryID, dayID); err != nil {
		return fmt.Errorf("service.DayService.DeleteDay: %w", err)
	}
	return nil
}

// AddActivity appends an activity to the end of the day.
func (s *DayService) AddActivity(ctx context.Context, userID, itineraryID, dayID uuid.UUID, a domain.Activity) (domain.Day, error) {
	return s.mutate(ctx, "AddActivity", userID, itineraryID, dayID, func(d *domain.Day) error {
		a = trimActivity(a)
		if err := validateStruct(a); err != nil {
			return err
		}
		d.Activities = append(d.Activities, a)
		return nil
	})
}

// UpdateActivity replaces the activity at index.
func (s *DayService) UpdateActivity(ctx context.Context, userID, itineraryID, dayID uuid.UUID, index int, a domain.Activity) (domain.Day, error) {
	return s.mutate(ctx, "UpdateActivity", userID, itineraryID, dayID, func(d *domain.Day) error {
		if index < 0 || index >= len(d.Activities) {
			return fmt.Errorf("activity %d: %w", index, domain.ErrNotFound)
		}
		a = trimActivity(a)
		if err := validateStruct(a); err != nil {
			return err
		}
		d.Activities[index] = a
		return nil
	})
}

// DeleteActivity removes the activity at index, keeping the order of the rest.
func (s *DayService) DeleteActivity(ctx context.Context, userID, itineraryID, dayID uuid.UUID, index int) (domain.Day, error) {
	return s.mutate(ctx, "DeleteActivity", userID, itineraryID, dayID, func(d *domain.Day) error {
		if index < 0 || index >= len(d.Activities) {
			return fmt.Errorf("activity %d: %w", index, domain.ErrNotFound)
		}
		d.Activities = append(d.Activities[:index:index], d.Activities[index+1:]...)
		return nil
	})
}

// ReorderActivities replaces the day's activities with list, in order.
func (s *DayService) ReorderActivities(ctx context.Context, userID, itineraryID, dayID uuid.UUID, list []domain.Activity) (domain.Day, error) {
	return s.mutate(ctx, "ReorderActivities", userID, itineraryID, dayID, func(d *domain.Day) error {
		for i := range list {
			list[i] = trimActivity(list[i])
		}
		if err := validateActivities(list); err != nil {
			return err
		}
		d.Activities = append([]domain.Activity{}, list...)
		return nil
	})
}

// mutate loads a day, applies fn and stores the result.
func (s *DayService) mutate(ctx context.Context, op string, userID, itineraryID, dayID uuid.UUID, fn func(*domain.Day) error) (domain.Day, error) {
	if _, err := s.owned(ctx, userID, itineraryID); err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.%s: %w", op, err)
	}
	d, err := s.days.GetByID(ctx, itineraryID, dayID)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.%s: %w", op, err)
	}
	if err := fn(&d); err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.%s: %w", op, err)
	}
	updated, err := s.days.Update(ctx, d)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.%s: %w", op, err)
	}
	return updated, nil
}

func trimActivity(a domain.Activity) domain.Activity {
	a.Type = strings.TrimSpace(a.Type)
	a.Title = strings.TrimSpace(a.Title)
	a.Description = strings.TrimSpace(a.Description)
	a.Time = strings.TrimSpace(a.Time)
	a.Link = strings.TrimSpace(a.Link)
	a.Notes = strings.TrimSpace(a.Notes)
	return a
}

func validateActivities(list []domain.Activity) error {
	for i, a := range list {
		if err := validateStruct(a); err != nil {
			return fmt.Errorf("activities[%d]: %w", i, err)
		}
	}
	return nil
}
