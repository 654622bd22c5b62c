package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

func TestItineraryRepo_Create(t *testing.T) {
	r := newTestRepos(t)
	input := itineraryFixture(uuid.New())

	got, err := r.Itineraries.Create(context.Background(), input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated")
	assert.Equal(t, input.UserID, got.UserID)
	assert.Equal(t, input.Title, got.Title)
	assert.True(t, got.StartDate.Equal(input.StartDate))
	assert.True(t, got.EndDate.Equal(input.EndDate))
	assert.Equal(t, 30000.0, got.Budget)
	assert.Equal(t, []string{"food", "beaches"}, got.Interests)
	assert.Equal(t, "beach hut", got.Accommodation.String())
	assert.False(t, got.Transportation.IsSet(), "unset preference round-trips as unset")
	assert.Equal(t, domain.PreferenceSet{"vegetarian"}, got.Dietary)
	assert.True(t, got.Accessibility.IsEmpty())
	assert.False(t, got.CreatedAt.IsZero())
}

func TestItineraryRepo_Create_NilSlices(t *testing.T) {
	r := newTestRepos(t)
	input := itineraryFixture(uuid.New())
	input.Interests = nil
	input.Dietary = nil

	got, err := r.Itineraries.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Empty(t, got.Interests)
	assert.True(t, got.Dietary.IsEmpty())
}

func TestItineraryRepo_GetByID(t *testing.T) {
	r := newTestRepos(t)
	owner := uuid.New()
	created := createItinerary(t, r, owner)

	got, err := r.Itineraries.GetByID(context.Background(), owner, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
}

func TestItineraryRepo_GetByID_OtherUser(t *testing.T) {
	r := newTestRepos(t)
	created := createItinerary(t, r, uuid.New())

	_, err := r.Itineraries.GetByID(context.Background(), uuid.New(), created.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItineraryRepo_ListPaged(t *testing.T) {
	r := newTestRepos(t)
	owner := uuid.New()
	for i := 0; i < 3; i++ {
		createItinerary(t, r, owner)
		time.Sleep(2 * time.Millisecond)
	}
	createItinerary(t, r, uuid.New())

	page, total, err := r.Itineraries.ListPaged(context.Background(), owner, domain.PaginationParams{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.False(t, page[0].CreatedAt.Before(page[1].CreatedAt), "newest first")

	rest, _, err := r.Itineraries.ListPaged(context.Background(), owner, domain.PaginationParams{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}

func TestItineraryRepo_ListPaged_Empty(t *testing.T) {
	r := newTestRepos(t)

	page, total, err := r.Itineraries.ListPaged(context.Background(), uuid.New(), domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, page)
	assert.Empty(t, page)
}

func TestItineraryRepo_Update(t *testing.T) {
	r := newTestRepos(t)
	owner := uuid.New()
	created := createItinerary(t, r, owner)

	created.Title = "Slow Goa"
	created.Transportation = domain.NewPreference("scooter")
	created.Accommodation = domain.Preference{}
	got, err := r.Itineraries.Update(context.Background(), created)

	require.NoError(t, err)
	assert.Equal(t, "Slow Goa", got.Title)
	assert.Equal(t, "scooter", got.Transportation.String())
	assert.False(t, got.Accommodation.IsSet())
	assert.False(t, got.UpdatedAt.Before(created.UpdatedAt))
}

func TestItineraryRepo_Update_OtherUser(t *testing.T) {
	r := newTestRepos(t)
	created := createItinerary(t, r, uuid.New())
	created.UserID = uuid.New()

	_, err := r.Itineraries.Update(context.Background(), created)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItineraryRepo_Delete_CascadesDays(t *testing.T) {
	r := newTestRepos(t)
	owner := uuid.New()
	created := createItinerary(t, r, owner)
	_, err := r.Days.Create(context.Background(), domain.Day{ItineraryID: created.ID, DayNumber: 1, Date: created.StartDate})
	require.NoError(t, err)

	require.NoError(t, r.Itineraries.Delete(context.Background(), owner, created.ID))

	days, err := r.Days.ListByItinerary(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, days)
	assert.ErrorIs(t, r.Itineraries.Delete(context.Background(), owner, created.ID), domain.ErrNotFound)
}
