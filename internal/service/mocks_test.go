package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/mailer"
	"github.com/pkordes/trip-planner/backend/internal/repo"
	"github.com/pkordes/trip-planner/backend/internal/service"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones a test needs.

type mockItineraryRepo struct {
	create    func(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)
	getByID   func(ctx context.Context, userID, id uuid.UUID) (domain.Itinerary, error)
	listPaged func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Itinerary, int64, error)
	update    func(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)
	delete    func(ctx context.Context, userID, id uuid.UUID) error
}

func (m *mockItineraryRepo) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	return m.create(ctx, it)
}
func (m *mockItineraryRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Itinerary, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockItineraryRepo) ListPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Itinerary, int64, error) {
	return m.listPaged(ctx, userID, p)
}
func (m *mockItineraryRepo) Update(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	return m.update(ctx, it)
}
func (m *mockItineraryRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

var _ repo.ItineraryRepo = (*mockItineraryRepo)(nil)

type mockDayRepo struct {
	create          func(ctx context.Context, d domain.Day) (domain.Day, error)
	listByItinerary func(ctx context.Context, itineraryID uuid.UUID) ([]domain.Day, error)
	getByID         func(ctx context.Context, itineraryID, dayID uuid.UUID) (domain.Day, error)
	update          func(ctx context.Context, d domain.Day) (domain.Day, error)
	delete          func(ctx context.Context, itineraryID, dayID uuid.UUID) error
}

func (m *mockDayRepo) Create(ctx context.Context, d domain.Day) (domain.Day, error) {
	return m.create(ctx, d)
}
func (m *mockDayRepo) ListByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]domain.Day, error) {
	return m.listByItinerary(ctx, itineraryID)
}
func (m *mockDayRepo) GetByID(ctx context.Context, itineraryID, dayID uuid.UUID) (domain.Day, error) {
	return m.getByID(ctx, itineraryID, dayID)
}
func (m *mockDayRepo) Update(ctx context.Context, d domain.Day) (domain.Day, error) {
	return m.update(ctx, d)
}
func (m *mockDayRepo) Delete(ctx context.Context, itineraryID, dayID uuid.UUID) error {
	return m.delete(ctx, itineraryID, dayID)
}

var _ repo.DayRepo = (*mockDayRepo)(nil)

type mockPackingRepo struct {
	createList         func(ctx context.Context, l domain.PackingList) (domain.PackingList, error)
	getListByItinerary func(ctx context.Context, userID, itineraryID uuid.UUID) (domain.PackingList, error)
	updateCategories   func(ctx context.Context, listID uuid.UUID, categories []string) error
	createItem         func(ctx context.Context, it domain.PackingItem) (domain.PackingItem, error)
	listItems          func(ctx context.Context, listID uuid.UUID) ([]domain.PackingItem, error)
	getItem            func(ctx context.Context, listID, itemID uuid.UUID) (domain.PackingItem, error)
	updateItem         func(ctx context.Context, it domain.PackingItem) (domain.PackingItem, error)
	deleteItem         func(ctx context.Context, listID, itemID uuid.UUID) error
}

func (m *mockPackingRepo) CreateList(ctx context.Context, l domain.PackingList) (domain.PackingList, error) {
	return m.createList(ctx, l)
}
func (m *mockPackingRepo) GetListByItinerary(ctx context.Context, userID, itineraryID uuid.UUID) (domain.PackingList, error) {
	return m.getListByItinerary(ctx, userID, itineraryID)
}
func (m *mockPackingRepo) UpdateCategories(ctx context.Context, listID uuid.UUID, categories []string) error {
	return m.updateCategories(ctx, listID, categories)
}
func (m *mockPackingRepo) CreateItem(ctx context.Context, it domain.PackingItem) (domain.PackingItem, error) {
	return m.createItem(ctx, it)
}
func (m *mockPackingRepo) ListItems(ctx context.Context, listID uuid.UUID) ([]domain.PackingItem, error) {
	return m.listItems(ctx, listID)
}
func (m *mockPackingRepo) GetItem(ctx context.Context, listID, itemID uuid.UUID) (domain.PackingItem, error) {
	return m.getItem(ctx, listID, itemID)
}
func (m *mockPackingRepo) UpdateItem(ctx context.Context, it domain.PackingItem) (domain.PackingItem, error) {
	return m.updateItem(ctx, it)
}
func (m *mockPackingRepo) DeleteItem(ctx context.Context, listID, itemID uuid.UUID) error {
	return m.deleteItem(ctx, listID, itemID)
}

var _ repo.PackingRepo = (*mockPackingRepo)(nil)

type mockProfileRepo struct {
	get    func(ctx context.Context, id uuid.UUID) (domain.Profile, error)
	upsert func(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

func (m *mockProfileRepo) Get(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	return m.get(ctx, id)
}
func (m *mockProfileRepo) Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	return m.upsert(ctx, p)
}

var _ repo.ProfileRepo = (*mockProfileRepo)(nil)

// fakeTx runs fn directly against the supplied repos and records how many
// transactions were opened.
type fakeTx struct {
	repos repo.Repos
	calls int
}

func (f *fakeTx) InTx(_ context.Context, fn func(repo.Repos) error) error {
	f.calls++
	return fn(f.repos)
}

var _ service.TxRunner = (*fakeTx)(nil)

type mockGenerator struct {
	itinerary   func(ctx context.Context, req domain.GenerationRequest) (domain.ItineraryResult, error)
	packingList func(ctx context.Context, req domain.GenerationRequest) (domain.PackingListResult, error)
	calls       int
}

func (m *mockGenerator) Itinerary(ctx context.Context, req domain.GenerationRequest) (domain.ItineraryResult, error) {
	m.calls++
	return m.itinerary(ctx, req)
}
func (m *mockGenerator) PackingList(ctx context.Context, req domain.GenerationRequest) (domain.PackingListResult, error) {
	m.calls++
	return m.packingList(ctx, req)
}

var (
	_ service.ItineraryGenerator = (*mockGenerator)(nil)
	_ service.PackingGenerator   = (*mockGenerator)(nil)
)

type stubImages string

func (s stubImages) DestinationImage(context.Context, string) string { return string(s) }

var _ service.ImageFinder = stubImages("")

type mockMailer struct {
	sent []mailer.Message
	err  error
}

func (m *mockMailer) Send(_ context.Context, msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

var _ mailer.Mailer = (*mockMailer)(nil)

type mockLoader struct {
	get func(ctx context.Context, userID, id uuid.UUID) (domain.Itinerary, error)
}

func (m *mockLoader) Get(ctx context.Context, userID, id uuid.UUID) (domain.Itinerary, error) {
	return m.get(ctx, userID, id)
}

var _ service.ItineraryLoader = (*mockLoader)(nil)
