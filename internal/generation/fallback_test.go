package generation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/generation"
)

func mustDate(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func goaRequest() domain.GenerationRequest {
	return domain.GenerationRequest{
		Destination: "Goa",
		StartDate:   mustDate("2025-06-01"),
		EndDate:     mustDate("2025-06-03"),
		Budget:      30000,
		Interests:   []string{"food"},
	}
}

func TestFallbackItinerary_Goa(t *testing.T) {
	got := generation.FallbackItinerary(goaRequest())

	assert.Equal(t, "3-Day Adventure in Goa", got.Title)
	require.Len(t, got.Days, 3)
	for i, d := range got.Days {
		assert.Equal(t, i+1, d.DayNumber)
		assert.Equal(t, mustDate("2025-06-01").AddDate(0, 0, i), d.Date)
		assert.Contains(t, d.Description, "Goa")
		require.Len(t, d.Activities, 1)
		a := d.Activities[0]
		assert.Equal(t, "food", a.Type)
		assert.Equal(t, 3333.0, a.Cost)
		assert.Equal(t, "09:00", a.Time)
		assert.NotEmpty(t, a.Link)
	}
}

func TestFallbackItinerary_SingleDay(t *testing.T) {
	req := goaRequest()
	req.EndDate = req.StartDate

	got := generation.FallbackItinerary(req)

	require.Len(t, got.Days, 1)
	assert.Equal(t, 1, got.Days[0].DayNumber)
	assert.Equal(t, 10000.0, got.Days[0].Activities[0].Cost)
}

func TestFallbackItinerary_NoInterestsUsesDefaultType(t *testing.T) {
	req := goaRequest()
	req.Interests = []string{" "}

	got := generation.FallbackItinerary(req)

	assert.Equal(t, "sightseeing", got.Days[0].Activities[0].Type)
}

func TestFallbackItinerary_Deterministic(t *testing.T) {
	assert.Equal(t, generation.FallbackItinerary(goaRequest()), generation.FallbackItinerary(goaRequest()))
}

func TestFallbackItinerary_DayCountMatchesSpan(t *testing.T) {
	start := mustDate("2025-01-28")
	for span := 0; span < domain.MaxTripDays; span++ {
		req := goaRequest()
		req.StartDate = start
		req.EndDate = start.AddDate(0, 0, span)

		got := generation.FallbackItinerary(req)

		require.Len(t, got.Days, span+1, "span %d", span)
		assert.Equal(t, req.EndDate, got.Days[span].Date)
	}
}

func TestPlaceholderCost(t *testing.T) {
	assert.Equal(t, 3333.0, generation.PlaceholderCost(30000, 3))
	assert.Equal(t, 2.0, generation.PlaceholderCost(15, 3))  // 1.666..
	assert.Equal(t, 2.0, generation.PlaceholderCost(4.5, 1)) // 1.5 rounds away from zero
	assert.Equal(t, 0.0, generation.PlaceholderCost(0, 3))
}

func TestFallbackPackingList(t *testing.T) {
	req := goaRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, 9) // 10 days

	got := generation.FallbackPackingList(req)

	assert.Equal(t, []string{"Clothing", "Toiletries", "Electronics", "Documents", "Miscellaneous"}, got.Categories)
	byName := map[string]domain.PackingItem{}
	for _, it := range got.Items {
		byName[it.Name] = it
		assert.Contains(t, got.Categories, it.Category)
		assert.GreaterOrEqual(t, it.Quantity, 1)
		assert.False(t, it.IsPacked)
	}
	assert.Equal(t, 7, byName["T-shirts"].Quantity)
	assert.Equal(t, 10, byName["Underwear"].Quantity)
	assert.Equal(t, 7, byName["Socks"].Quantity)
	assert.Equal(t, 4, byName["Pants/Shorts"].Quantity)
	assert.Equal(t, 2, byName["Credit/Debit cards"].Quantity)
	assert.True(t, byName["Passport"].IsEssential)
	assert.False(t, byName["Water bottle"].IsEssential)
}

func TestFallbackPackingList_ShortTrip(t *testing.T) {
	req := goaRequest()
	req.EndDate = req.StartDate

	got := generation.FallbackPackingList(req)

	for _, it := range got.Items {
		switch it.Name {
		case "T-shirts", "Socks", "Pants/Shorts":
			assert.Equal(t, 1, it.Quantity, it.Name)
		case "Underwear":
			assert.Equal(t, 3, it.Quantity)
		}
	}
}
