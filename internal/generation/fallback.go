package generation

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

const (
	fallbackActivityType = "sightseeing"
	fallbackActivityTime = "09:00"
	fallbackActivityLink = "https://example.com/explore"
)

// FallbackPackingCategories is the canonical category set of a synthesized
// packing list.
var FallbackPackingCategories = []string{"Clothing", "Toiletries", "Electronics", "Documents", "Miscellaneous"}

// FallbackItinerary builds a minimal itinerary from the request alone: one day
// per calendar date, each with a single placeholder activity. It never fails
// and never looks at model output.
func FallbackItinerary(req domain.GenerationRequest) domain.ItineraryResult {
	n := req.DayCount()
	days := make([]domain.Day, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		days = append(days, fallbackDay(req, i))
	}
	return domain.ItineraryResult{Title: fallbackTitle(req), Days: days}
}

func fallbackTitle(req domain.GenerationRequest) string {
	return fmt.Sprintf("%d-Day Adventure in %s", req.DayCount(), req.Destination)
}

func fallbackDay(req domain.GenerationRequest, dayNumber int) domain.Day {
	return domain.Day{
		DayNumber:   dayNumber,
		Date:        req.DateForDay(dayNumber),
		Description: fallbackDayDescription(req, dayNumber),
		Activities:  []domain.Activity{fallbackActivity(req)},
	}
}

func fallbackDayDescription(req domain.GenerationRequest, dayNumber int) string {
	return fmt.Sprintf("Day %d in %s", dayNumber, req.Destination)
}

func fallbackActivity(req domain.GenerationRequest) domain.Activity {
	return domain.Activity{
		Type:        fallbackType(req.Interests),
		Title:       "Explore " + req.Destination,
		Description: fmt.Sprintf("Spend the day exploring the highlights of %s.", req.Destination),
		Time:        fallbackActivityTime,
		Cost:        PlaceholderCost(req.Budget, req.DayCount()),
		Link:        fallbackActivityLink,
	}
}

func fallbackType(interests []string) string {
	for _, in := range interests {
		if in = strings.TrimSpace(in); in != "" {
			return in
		}
	}
	return fallbackActivityType
}

// PlaceholderCost spreads the budget over three activities per day and
// rounds to the nearest whole unit, halves away from zero. A budget of 30000
// over 3 days gives 3333.
func PlaceholderCost(budget float64, days int) float64 {
	if days < 1 || budget <= 0 {
		return 0
	}
	return math.Round(budget / float64(days*3))
}

// FallbackPackingList builds the canonical packing list, with clothing
// quantities scaled by trip length. All items start unpacked.
func FallbackPackingList(req domain.GenerationRequest) domain.PackingListResult {
	d := max(req.DayCount(), 1)
	item := func(name, category string, qty int, essential bool, notes string) domain.PackingItem {
		return domain.PackingItem{Name: name, Category: category, Quantity: qty, IsEssential: essential, Notes: notes}
	}
	return domain.PackingListResult{
		Categories: append([]string(nil), FallbackPackingCategories...),
		Items: []domain.PackingItem{
			item("T-shirts", "Clothing", min(d, 7), true, ""),
			item("Underwear", "Clothing", min(d+2, 10), true, ""),
			item("Socks", "Clothing", min(d, 7), true, ""),
			item("Pants/Shorts", "Clothing", (d+2)/3, true, ""),
			item("Toothbrush", "Toiletries", 1, true, ""),
			item("Toothpaste", "Toiletries", 1, true, ""),
			item("Shampoo", "Toiletries", 1, true, ""),
			item("Soap/Body wash", "Toiletries", 1, true, ""),
			item("Phone charger", "Electronics", 1, true, ""),
			item("Phone", "Electronics", 1, true, ""),
			item("Passport", "Documents", 1, true, "Keep in a secure place"),
			item("Travel insurance", "Documents", 1, true, ""),
			item("Credit/Debit cards", "Documents", 2, true, ""),
			item("First aid kit", "Miscellaneous", 1, true, ""),
			item("Water bottle", "Miscellaneous", 1, false, ""),
		},
	}
}
