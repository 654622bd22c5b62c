package handler_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/handler"
	"github.com/pkordes/trip-planner/backend/internal/service"
)

// mockItineraryServicer is a test double for handler.ItineraryServicer.
// Set only the method fields your test needs.
type mockItineraryServicer struct {
	generate func(ctx context.Context, userID uuid.UUID, req domain.GenerationRequest) (domain.Itinerary, error)
	list     func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Itinerary, int64, error)
	get      func(ctx context.Context, userID, id uuid.UUID) (domain.Itinerary, error)
	update   func(ctx context.Context, userID, id uuid.UUID, patch domain.ItineraryPatch) (domain.Itinerary, error)
	delete   func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockItineraryServicer) Generate(ctx context.Context, userID uuid.UUID, req domain.GenerationRequest) (domain.Itinerary, error) {
	return m.generate(ctx, userID, req)
}
func (m *mockItineraryServicer) List(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Itinerary, int64, error) {
	return m.list(ctx, userID, p)
}
func (m *mockItineraryServicer) Get(ctx context.Context, userID, id uuid.UUID) (domain.Itinerary, error) {
	return m.get(ctx, userID, id)
}
func (m *mockItineraryServicer) Update(ctx context.Context, userID, id uuid.UUID, patch domain.ItineraryPatch) (domain.Itinerary, error) {
	return m.update(ctx, userID, id, patch)
}
func (m *mockItineraryServicer) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

// mockDayServicer is a test double for handler.DayServicer.
type mockDayServicer struct {
	listDays          func(ctx context.Context, userID, itineraryID uuid.UUID) ([]domain.Day, error)
	getDay            func(ctx context.Context, userID, itineraryID, dayID uuid.UUID) (domain.Day, error)
	createDay         func(ctx context.Context, userID, itineraryID uuid.UUID, day domain.Day) (domain.Day, error)
	updateDay         func(ctx context.Context, userID, itineraryID, dayID uuid.UUID, patch domain.DayPatch) (domain.Day, error)
	deleteDay         func(ctx context.Context, userID, itineraryID, dayID uuid.UUID) error
	addActivity       func(ctx context.Context, userID, itineraryID, dayID uuid.UUID, a domain.Activity) (domain.Day, error)
	updateActivity    func(ctx context.Context, userID, itineraryID, dayID uuid.UUID, index int, a domain.Activity) (domain.Day, error)
	deleteActivity    func(ctx context.Context, userID, itineraryID, dayID uuid.UUID, index int) (domain.Day, error)
	reorderActivities func(ctx context.Context, userID, itineraryID, dayID uuid.UUID, list []domain.Activity) (domain.Day, error)
}

func (m *mockDayServicer) ListDays(ctx context.Context, userID, itineraryID uuid.UUID) ([]domain.Day, error) {
	return m.listDays(ctx, userID, itineraryID)
}
func (m *mockDayServicer) GetDay(ctx context.Context, userID, itineraryID, dayID uuid.UUID) (domain.Day, error) {
	return m.getDay(ctx, userID, itineraryID, dayID)
}
func (m *mockDayServicer) CreateDay(ctx context.Context, userID, itineraryID uuid.UUID, day domain.Day) (domain.Day, error) {
	return m.createDay(ctx, userID, itineraryID, day)
}
func (m *mockDayServicer) UpdateDay(ctx context.Context, userID, itineraryID, dayID uuid.UUID, patch domain.DayPatch) (domain.Day, error) {
	return m.updateDay(ctx, userID, itineraryID, dayID, patch)
}
func (m *mockDayServicer) DeleteDay(ctx context.Context, userID, itineraryID, dayID uuid.UUID) error {
	return m.deleteDay(ctx, userID, itineraryID, dayID)
}
func (m *mockDayServicer) AddActivity(ctx context.Context, userID, itineraryID, dayID uuid.UUID, a domain.Activity) (domain.Day, error) {
	return m.addActivity(ctx, userID, itineraryID, dayID, a)
}
func (m *mockDayServicer) UpdateActivity(ctx context.Context, userID, itineraryID, dayID uuid.UUID, index int, a domain.Activity) (domain.Day, error) {
	return m.updateActivity(ctx, userID, itineraryID, dayID, index, a)
}
func (m *mockDayServicer) DeleteActivity(ctx context.Context, userID, itineraryID, dayID uuid.UUID, index int) (domain.Day, error) {
	return m.deleteActivity(ctx, userID, itineraryID, dayID, index)
}
func (m *mockDayServicer) ReorderActivities(ctx context.Context, userID, itineraryID, dayID uuid.UUID, list []domain.Activity) (domain.Day, error) {
	return m.reorderActivities(ctx, userID, itineraryID, dayID, list)
}

var _ handler.DayServicer = (*mockDayServicer)(nil)

// mockPackingServicer is a test double for handler.PackingServicer.
type mockPackingServicer struct {
	get        func(ctx context.Context, userID, itineraryID uuid.UUID) (domain.PackingList, error)
	generate   func(ctx context.Context, userID, itineraryID uuid.UUID) (domain.PackingList, error)
	addItem    func(ctx context.Context, userID, itineraryID uuid.UUID, item domain.PackingItem) (domain.PackingItem, error)
	updateItem func(ctx context.Context, userID, itineraryID, itemID uuid.UUID, patch domain.PackingItemPatch) (domain.PackingItem, error)
	deleteItem func(ctx context.Context, userID, itineraryID, itemID uuid.UUID) error
}

func (m *mockPackingServicer) Get(ctx context.Context, userID, itineraryID uuid.UUID) (domain.PackingList, error) {
	return m.get(ctx, userID, itineraryID)
}
func (m *mockPackingServicer) Generate(ctx context.Context, userID, itineraryID uuid.UUID) (domain.PackingList, error) {
	return m.generate(ctx, userID, itineraryID)
}
func (m *mockPackingServicer) AddItem(ctx context.Context, userID, itineraryID uuid.UUID, item domain.PackingItem) (domain.PackingItem, error) {
	return m.addItem(ctx, userID, itineraryID, item)
}
func (m *mockPackingServicer) UpdateItem(ctx context.Context, userID, itineraryID, itemID uuid.UUID, patch domain.PackingItemPatch) (domain.PackingItem, error) {
	return m.updateItem(ctx, userID, itineraryID, itemID, patch)
}
func (m *mockPackingServicer) DeleteItem(ctx context.Context, userID, itineraryID, itemID uuid.UUID) error {
	return m.deleteItem(ctx, userID, itineraryID, itemID)
}

var _ handler.PackingServicer = (*mockPackingServicer)(nil)

// mockProfileServicer is a test double for handler.ProfileServicer.
type mockProfileServicer struct {
	get    func(ctx context.Context, userID uuid.UUID) (domain.Profile, error)
	update func(ctx context.Context, userID uuid.UUID, patch domain.ProfilePatch) (domain.Profile, error)
}

func (m *mockProfileServicer) Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	return m.get(ctx, userID)
}
func (m *mockProfileServicer) Update(ctx context.Context, userID uuid.UUID, patch domain.ProfilePatch) (domain.Profile, error) {
	return m.update(ctx, userID, patch)
}

var _ handler.ProfileServicer = (*mockProfileServicer)(nil)

type mockExportServicer struct {
	export func(ctx context.Context, userID, id uuid.UUID, format string) (service.Document, error)
}

func (m *mockExportServicer) Export(ctx context.Context, userID, id uuid.UUID, format string) (service.Document, error) {
	return m.export(ctx, userID, id, format)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

type mockShareServicer struct {
	share func(ctx context.Context, userID, id uuid.UUID, email string) error
}

func (m *mockShareServicer) Share(ctx context.Context, userID, id uuid.UUID, email string) error {
	return m.share(ctx, userID, id, email)
}

var _ handler.ShareServicer = (*mockShareServicer)(nil)
