package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// PackingService manages the packing list of an itinerary.
type PackingService struct {
	repos repo.Repos
	tx    TxRunner
	gen   PackingGenerator
}

// NewPackingService constructs a PackingService.
func NewPackingService(repos repo.Repos, tx TxRunner, gen PackingGenerator) *PackingService {
	return &PackingService{repos: repos, tx: tx, gen: gen}
}

// Get returns the itinerary's list with its items.
func (s *PackingService) Get(ctx context.Context, userID, itineraryID uuid.UUID) (domain.PackingList, error) {
	l, err := s.repos.Packing.GetListByItinerary(ctx, userID, itineraryID)
	if err != nil {
		return domain.PackingList{}, fmt.Errorf("service.PackingService.Get: %w", err)
	}
	items, err := s.repos.Packing.ListItems(ctx, l.ID)
	if err != nil {
		return domain.PackingList{}, fmt.Errorf("service.PackingService.Get: %w", err)
	}
	l.Items = items
	return l, nil
}

// Generate builds and stores the packing list for an itinerary. It fails with
// domain.ErrConflict when the itinerary already has one.
func (s *PackingService) Generate(ctx context.Context, userID, itineraryID uuid.UUID) (domain.PackingList, error) {
	it, err := s.repos.Itineraries.GetByID(ctx, userID, itineraryID)
	if err != nil {
		return domain.PackingList{}, fmt.Errorf("service.PackingService.Generate: %w", err)
	}
	_, err = s.repos.Packing.GetListByItinerary(ctx, userID, itineraryID)
	switch {
	case err == nil:
		return domain.PackingList{}, fmt.Errorf("service.PackingService.Generate: packing list already exists: %w", domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return domain.PackingList{}, fmt.Errorf("service.PackingService.Generate: %w", err)
	}

	result, err := s.gen.PackingList(ctx, it.Request())
	if err != nil {
		return domain.PackingList{}, fmt.Errorf("service.PackingService.Generate: %w", err)
	}

	var saved domain.PackingList
	err = s.tx.InTx(ctx, func(r repo.Repos) error {
		l, err := r.Packing.CreateList(ctx, domain.PackingList{
			ItineraryID: itineraryID,
			UserID:      userID,
			Categories:  result.Categories,
		})
		if err != nil {
			return err
		}
		l.Items = make([]domain.PackingItem, 0, len(result.Items))
		for _, item := range result.Items {
			item.ListID = l.ID
			stored, err := r.Packing.CreateItem(ctx, item)
			if err != nil {
				return err
			}
			l.Items = append(l.Items, stored)
		}
		saved = l
		return nil
	})
	if err != nil {
		return domain.PackingList{}, fmt.Errorf("service.PackingService.Generate: %w", err)
	}
	return saved, nil
}

// AddItem adds an item to the list. An unknown category is appended to the
// list's categories.
func (s *PackingService) AddItem(ctx context.Context, userID, itineraryID uuid.UUID, item domain.PackingItem) (domain.PackingItem, error) {
	l, err := s.repos.Packing.GetListByItinerary(ctx, userID, itineraryID)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.AddItem: %w", err)
	}

	item = trimItem(item)
	if item.Category == "" {
		item.Category = domain.DefaultPackingCategory
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if err := validateStruct(item); err != nil {
		return domain.PackingItem{}, err
	}
	item.ListID = l.ID

	var created domain.PackingItem
	err = s.tx.InTx(ctx, func(r repo.Repos) error {
		if err := ensureCategory(ctx, r, l, item.Category); err != nil {
			return err
		}
		created, err = r.Packing.CreateItem(ctx, item)
		return err
	})
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.AddItem: %w", err)
	}
	return created, nil
}

// UpdateItem applies patch to one item of the user's list.
func (s *PackingService) UpdateItem(ctx context.Context, userID, itineraryID, itemID uuid.UUID, patch domain.PackingItemPatch) (domain.PackingItem, error) {
	l, err := s.repos.Packing.GetListByItinerary(ctx, userID, itineraryID)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.UpdateItem: %w", err)
	}
	item, err := s.repos.Packing.GetItem(ctx, l.ID, itemID)
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.UpdateItem: %w", err)
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.IsPacked != nil {
		item.IsPacked = *patch.IsPacked
	}
	if patch.IsEssential != nil {
		item.IsEssential = *patch.IsEssential
	}
	if patch.Notes != nil {
		item.Notes = *patch.Notes
	}
	item = trimItem(item)
	if err := validateStruct(item); err != nil {
		return domain.PackingItem{}, err
	}

	var updated domain.PackingItem
	err = s.tx.InTx(ctx, func(r repo.Repos) error {
		if err := ensureCategory(ctx, r, l, item.Category); err != nil {
			return err
		}
		updated, err = r.Packing.UpdateItem(ctx, item)
		return err
	})
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("service.PackingService.UpdateItem: %w", err)
	}
	return updated, nil
}

// DeleteItem removes one item of the user's list.
func (s *PackingService) DeleteItem(ctx context.Context, userID, itineraryID, itemID uuid.UUID) error {
	l, err := s.repos.Packing.GetListByItinerary(ctx, userID, itineraryID)
	if err != nil {
		return fmt.Errorf("service.PackingService.DeleteItem: %w", err)
	}
	if err := s.repos.Packing.DeleteItem(ctx, l.ID, itemID); err != nil {
		return fmt.Errorf("service.PackingService.DeleteItem: %w", err)
	}
	return nil
}

func ensureCategory(ctx context.Context, r repo.Repos, l domain.PackingList, category string) error {
	if lo.ContainsBy(l.Categories, func(c string) bool { return strings.EqualFold(c, category) }) {
		return nil
	}
	return r.Packing.UpdateCategories(ctx, l.ID, append(append([]string{}, l.Categories...), category))
}

func trimItem(it domain.PackingItem) domain.PackingItem {
	it.Name = strings.TrimSpace(it.Name)
	it.Category = strings.TrimSpace(it.Category)
	it.Notes = strings.TrimSpace(it.Notes)
	return it
}
