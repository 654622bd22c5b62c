package generation

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// normalizeItinerary turns parsed model output into a result that holds the
// itinerary invariants: exactly one day per trip date, numbered from 1, with
// non-negative costs. Missing trailing days are filled with placeholder days
// and surplus days are dropped. It reports false when the output carries no
// usable days at all, which sends the caller to the fallback.
func normalizeItinerary(req domain.GenerationRequest, w itineraryWire) (domain.ItineraryResult, bool) {
	if len(w.Days) == 0 {
		return domain.ItineraryResult{}, false
	}

	n := req.DayCount()
	days := make([]domain.Day, 0, n)
	for i := 1; i <= n; i++ {
		if i > len(w.Days) {
			days = append(days, fallbackDay(req, i))
			continue
		}
		wd := w.Days[i-1]
		day := domain.Day{
			DayNumber:   i,
			Date:        req.DateForDay(i),
			Description: strings.TrimSpace(wd.Description),
			Activities:  make([]domain.Activity, 0, len(wd.Activities)),
		}
		if day.Description == "" {
			day.Description = fallbackDayDescription(req, i)
		}
		for _, wa := range wd.Activities {
			if a, ok := normalizeActivity(wa); ok {
				day.Activities = append(day.Activities, a)
			}
		}
		days = append(days, day)
	}

	title := strings.TrimSpace(w.Title)
	if title == "" {
		title = fallbackTitle(req)
	}
	return domain.ItineraryResult{Title: title, Days: days}, true
}

func normalizeActivity(w activityWire) (domain.Activity, bool) {
	a := domain.Activity{
		Type:        strings.TrimSpace(w.Type),
		Title:       strings.TrimSpace(w.Title),
		Description: strings.TrimSpace(w.Description),
		Time:        strings.TrimSpace(w.Time),
		Cost:        nonNegative(float64(w.Cost)),
		Link:        strings.TrimSpace(w.Link),
	}
	if w.Notes != nil {
		a.Notes = strings.TrimSpace(*w.Notes)
	}
	return a, a.Title != ""
}

// normalizePackingList makes every item belong to the category set, gives
// every item a quantity of at least one, and marks every item unpacked.
// Category labels are title-cased so "clothing" and "Clothing" merge.
func normalizePackingList(w packingWire) (domain.PackingListResult, bool) {
	var (
		categories []string
		seen       = map[string]bool{}
		caser      = cases.Title(language.English, cases.NoLower)
	)
	addCategory := func(c string) string {
		c = caser.String(strings.TrimSpace(c))
		if c == "" {
			c = domain.DefaultPackingCategory
		}
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
		return c
	}
	for _, c := range w.Categories {
		if strings.TrimSpace(c) != "" {
			addCategory(c)
		}
	}

	items := make([]domain.PackingItem, 0, len(w.Items))
	for _, wi := range w.Items {
		name := strings.TrimSpace(wi.Name)
		if name == "" {
			continue
		}
		item := domain.PackingItem{
			Name:        name,
			Category:    addCategory(wi.Category),
			Quantity:    max(int(math.Round(float64(wi.Quantity))), 1),
			IsEssential: bool(wi.IsEssential),
		}
		if wi.Notes != nil {
			item.Notes = strings.TrimSpace(*wi.Notes)
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return domain.PackingListResult{}, false
	}
	return domain.PackingListResult{Categories: categories, Items: items}, true
}

func nonNegative(f float64) float64 {
	if f < 0 || math.IsNaN(f) {
		return 0
	}
	return f
}
