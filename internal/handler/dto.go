package handler

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// generateRequest is the body of POST /itineraries.
type generateRequest struct {
	Destination        string               `json:"destination"`
	StartDate          openapi_types.Date   `json:"start_date"`
	EndDate            openapi_types.Date   `json:"end_date"`
	Budget             float64              `json:"budget"`
	Interests          []string             `json:"interests"`
	AccommodationType  domain.Preference    `json:"accommodation_type"`
	TransportationType domain.Preference    `json:"transportation_type"`
	DietaryPreferences domain.PreferenceSet `json:"dietary_preferences"`
	AccessibilityNeeds domain.PreferenceSet `json:"accessibility_needs"`
	AdditionalNotes    string               `json:"additional_notes"`
}

func (b generateRequest) toDomain() domain.GenerationRequest {
	return domain.GenerationRequest{
		Destination:    b.Destination,
		StartDate:      b.StartDate.Time,
		EndDate:        b.EndDate.Time,
		Budget:         b.Budget,
		Interests:      b.Interests,
		Accommodation:  b.AccommodationType,
		Transportation: b.TransportationType,
		Dietary:        b.DietaryPreferences,
		Accessibility:  b.AccessibilityNeeds,
		Notes:          b.AdditionalNotes,
	}
}

// updateItineraryRequest is the body of PATCH /itineraries/{id}.
// Absent fields are left unchanged.
type updateItineraryRequest struct {
	Title              *string               `json:"title"`
	Destination        *string               `json:"destination"`
	Budget             *float64              `json:"budget"`
	Interests          *[]string             `json:"interests"`
	AccommodationType  *domain.Preference    `json:"accommodation_type"`
	TransportationType *domain.Preference    `json:"transportation_type"`
	DietaryPreferences *domain.PreferenceSet `json:"dietary_preferences"`
	AccessibilityNeeds *domain.PreferenceSet `json:"accessibility_needs"`
	AdditionalNotes    *string               `json:"additional_notes"`
}

func (b updateItineraryRequest) toDomain() domain.ItineraryPatch {
	return domain.ItineraryPatch{
		Title:          b.Title,
		Destination:    b.Destination,
		Budget:         b.Budget,
		Notes:          b.AdditionalNotes,
		Interests:      b.Interests,
		Accommodation:  b.AccommodationType,
		Transportation: b.TransportationType,
		Dietary:        b.DietaryPreferences,
		Accessibility:  b.AccessibilityNeeds,
	}
}

type itineraryResponse struct {
	ID                 uuid.UUID            `json:"id"`
	Title              string               `json:"title"`
	Destination        string               `json:"destination"`
	StartDate          openapi_types.Date   `json:"start_date"`
	EndDate            openapi_types.Date   `json:"end_date"`
	Budget             float64              `json:"budget"`
	Interests          []string             `json:"interests"`
	AccommodationType  domain.Preference    `json:"accommodation_type"`
	TransportationType domain.Preference    `json:"transportation_type"`
	DietaryPreferences domain.PreferenceSet `json:"dietary_preferences"`
	AccessibilityNeeds domain.PreferenceSet `json:"accessibility_needs"`
	AdditionalNotes    string               `json:"additional_notes"`
	ImageURL           string               `json:"image_url"`
	Days               []dayResponse        `json:"days,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

func itineraryToResponse(it domain.Itinerary) itineraryResponse {
	resp := itineraryResponse{
		ID:                 it.ID,
		Title:              it.Title,
		Destination:        it.Destination,
		StartDate:          openapi_types.Date{Time: it.StartDate},
		EndDate:            openapi_types.Date{Time: it.EndDate},
		Budget:             it.Budget,
		Interests:          it.Interests,
		AccommodationType:  it.Accommodation,
		TransportationType: it.Transportation,
		DietaryPreferences: it.Dietary,
		AccessibilityNeeds: it.Accessibility,
		AdditionalNotes:    it.Notes,
		ImageURL:           it.ImageURL,
		CreatedAt:          it.CreatedAt,
		UpdatedAt:          it.UpdatedAt,
	}
	if resp.Interests == nil {
		resp.Interests = []string{}
	}
	for _, d := range it.Days {
		resp.Days = append(resp.Days, dayToResponse(d))
	}
	return resp
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type itineraryListResponse struct {
	Data       []itineraryResponse `json:"data"`
	Pagination pagination          `json:"pagination"`
}

// dayRequest is the body of POST and PATCH on a day.
type dayRequest struct {
	DayNumber   *int                `json:"day_number"`
	Date        *openapi_types.Date `json:"date"`
	Description *string             `json:"description"`
}

func (b dayRequest) toDay() domain.Day {
	var d domain.Day
	if b.DayNumber != nil {
		d.DayNumber = *b.DayNumber
	}
	if b.Date != nil {
		d.Date = b.Date.Time
	}
	if b.Description != nil {
		d.Description = *b.Description
	}
	return d
}

func (b dayRequest) toPatch() domain.DayPatch {
	p := domain.DayPatch{DayNumber: b.DayNumber, Description: b.Description}
	if b.Date != nil {
		t := b.Date.Time
		p.Date = &t
	}
	return p
}

type dayResponse struct {
	ID          uuid.UUID          `json:"id"`
	ItineraryID uuid.UUID          `json:"itinerary_id"`
	DayNumber   int                `json:"day_number"`
	Date        openapi_types.Date `json:"date"`
	Description string             `json:"description"`
	Activities  []domain.Activity  `json:"activities"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func dayToResponse(d domain.Day) dayResponse {
	resp := dayResponse{
		ID:          d.ID,
		ItineraryID: d.ItineraryID,
		DayNumber:   d.DayNumber,
		Date:        openapi_types.Date{Time: d.Date},
		Description: d.Description,
		Activities:  d.Activities,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if resp.Activities == nil {
		resp.Activities = []domain.Activity{}
	}
	return resp
}

// reorderRequest replaces the whole ordered activity list of a day.
type reorderRequest struct {
	Activities []domain.Activity `json:"activities"`
}

type packingItemRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	IsEssential bool   `json:"is_essential"`
	Notes       string `json:"notes"`
}

func (b packingItemRequest) toDomain() domain.PackingItem {
	return domain.PackingItem{
		Name:        b.Name,
		Category:    b.Category,
		Quantity:    b.Quantity,
		IsEssential: b.IsEssential,
		Notes:       b.Notes,
	}
}

type packingItemPatchRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Quantity    *int    `json:"quantity"`
	IsPacked    *bool   `json:"is_packed"`
	IsEssential *bool   `json:"is_essential"`
	Notes       *string `json:"notes"`
}

func (b packingItemPatchRequest) toDomain() domain.PackingItemPatch {
	return domain.PackingItemPatch{
		Name:        b.Name,
		Category:    b.Category,
		Quantity:    b.Quantity,
		IsPacked:    b.IsPacked,
		IsEssential: b.IsEssential,
		Notes:       b.Notes,
	}
}

type packingItemResponse struct {
	ID            uuid.UUID `json:"id"`
	PackingListID uuid.UUID `json:"packing_list_id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Quantity      int       `json:"quantity"`
	IsPacked      bool      `json:"is_packed"`
	IsEssential   bool      `json:"is_essential"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func packingItemToResponse(it domain.PackingItem) packingItemResponse {
	return packingItemResponse{
		ID:            it.ID,
		PackingListID: it.ListID,
		Name:          it.Name,
		Category:      it.Category,
		Quantity:      it.Quantity,
		IsPacked:      it.IsPacked,
		IsEssential:   it.IsEssential,
		Notes:         it.Notes,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}

type packingListResponse struct {
	ID          uuid.UUID             `json:"id"`
	ItineraryID uuid.UUID             `json:"itinerary_id"`
	Categories  []string              `json:"categories"`
	Items       []packingItemResponse `json:"items"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

func packingListToResponse(l domain.PackingList) packingListResponse {
	resp := packingListResponse{
		ID:          l.ID,
		ItineraryID: l.ItineraryID,
		Categories:  l.Categories,
		Items:       make([]packingItemResponse, 0, len(l.Items)),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	for _, it := range l.Items {
		resp.Items = append(resp.Items, packingItemToResponse(it))
	}
	return resp
}

type profileRequest struct {
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
	HomeCity  *string `json:"home_city"`
}

type profileResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	HomeCity  string    `json:"home_city"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

func profileToResponse(p domain.Profile) profileResponse {
	return profileResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		HomeCity:  p.HomeCity,
		UpdatedAt: p.UpdatedAt,
	}
}

type shareRequest struct {
	Email string `json:"email"`
}
