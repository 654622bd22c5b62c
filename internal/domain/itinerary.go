// Package domain contains the core data types for the trip planner.
// This package has no third-party dependencies beyond uuid and is imported by
// every other internal package (generation, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Itinerary is a titled, dated trip plan owned by one user.
// Days is populated only by operations that load the complete itinerary.
type Itinerary struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Title          string
	Destination    string
	StartDate      time.Time
	EndDate        time.Time
	Budget         float64
	Interests      []string
	Accommodation  Preference
	Transportation Preference
	Dietary        PreferenceSet
	Accessibility  PreferenceSet
	Notes          string
	ImageURL       string
	Days           []Day
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Request rebuilds the trip parameters the itinerary was generated from.
// The packing-list flow uses it to run a second generation for the same trip.
func (it Itinerary) Request() GenerationRequest {
	return GenerationRequest{
		Destination:    it.Destination,
		StartDate:      it.StartDate,
		EndDate:        it.EndDate,
		Budget:         it.Budget,
		Interests:      it.Interests,
		Accommodation:  it.Accommodation,
		Transportation: it.Transportation,
		Dietary:        it.Dietary,
		Accessibility:  it.Accessibility,
		Notes:          it.Notes,
	}
}

// ItineraryPatch lists the itinerary fields a user may edit after generation.
// Nil fields are left unchanged. Dates are not editable because every stored
// day is keyed to them.
type ItineraryPatch struct {
	Title          *string
	Destination    *string
	Budget         *float64
	Notes          *string
	Interests      *[]string
	Accommodation  *Preference
	Transportation *Preference
	Dietary        *PreferenceSet
	Accessibility  *PreferenceSet
}

// ItineraryResult is the output of itinerary generation before persistence.
type ItineraryResult struct {
	Title string
	Days  []Day
}

// Day is one dated entry of an itinerary. DayNumber is 1-based and sequential.
type Day struct {
	ID          uuid.UUID
	ItineraryID uuid.UUID
	DayNumber   int
	Date        time.Time
	Description string
	Activities  []Activity
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DayPatch lists the editable fields of a day. Nil fields are left unchanged.
type DayPatch struct {
	DayNumber   *int
	Date        *time.Time
	Description *string
}

// Activity is a single scheduled item within a day. Activities are stored as
// an ordered JSON array on their day, so the json tags are the storage format.
type Activity struct {
	Type        string  `json:"type"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	Time        string  `json:"time"`
	Cost        float64 `json:"cost" validate:"gte=0"`
	Link        string  `json:"link"`
	Notes       string  `json:"notes,omitempty"`
}
