package domain

import "time"

// MaxTripDays is the longest trip, in days, that may be generated.
const MaxTripDays = 30

// DateLayout is the wire and prompt format for calendar dates.
const DateLayout = "2006-01-02"

// GenerationRequest carries the trip parameters submitted for one generation
// call. It is immutable once built and lives only as long as that call.
//
// The validate tags are read by the service layer.
type GenerationRequest struct {
	Destination    string        `json:"destination" validate:"required,max=200"`
	StartDate      time.Time     `json:"start_date" validate:"required"`
	EndDate        time.Time     `json:"end_date" validate:"required,gtefield=StartDate"`
	Budget         float64       `json:"budget" validate:"gt=0,lte=9999999999.99"`
	Interests      []string      `json:"interests" validate:"max=20,dive,required,max=50"`
	Accommodation  Preference    `json:"accommodation_type"`
	Transportation Preference    `json:"transportation_type"`
	Dietary        PreferenceSet `json:"dietary_preferences"`
	Accessibility  PreferenceSet `json:"accessibility_needs"`
	Notes          string        `json:"additional_notes" validate:"max=2000"`
}

// DayCount returns the trip length in calendar days, counting both the start
// and end date. A same-day trip is one day long. The result is zero or
// negative when EndDate precedes StartDate.
func (r GenerationRequest) DayCount() int {
	return DaysBetween(r.StartDate, r.EndDate) + 1
}

// DaysBetween returns the number of whole calendar days from a to b, ignoring
// the time of day and location of either value.
func DaysBetween(a, b time.Time) int {
	return int(civilDate(b).Sub(civilDate(a)).Hours() / 24)
}

// DateForDay returns the calendar date of the given 1-based day number.
func (r GenerationRequest) DateForDay(dayNumber int) time.Time {
	return civilDate(r.StartDate).AddDate(0, 0, dayNumber-1)
}

// civilDate strips the clock and location from t, keeping its calendar date.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
