package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPackingCategory is assigned to items that arrive without a category.
const DefaultPackingCategory = "Miscellaneous"

// PackingList is the categorised checklist for one itinerary.
// Each itinerary has at most one packing list.
type PackingList struct {
	ID          uuid.UUID
	ItineraryID uuid.UUID
	UserID      uuid.UUID
	Categories  []string
	Items       []PackingItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PackingItem is one entry in a packing list. Category must be one of the
// list's categories and Quantity is always at least 1.
type PackingItem struct {
	ID          uuid.UUID `json:"id"`
	ListID      uuid.UUID `json:"packing_list_id"`
	Name        string    `json:"name" validate:"required,max=200"`
	Category    string    `json:"category" validate:"required,max=100"`
	Quantity    int       `json:"quantity" validate:"gte=1,lte=999"`
	IsPacked    bool      `json:"is_packed"`
	IsEssential bool      `json:"is_essential"`
	Notes       string    `json:"notes" validate:"max=500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PackingItemPatch lists the editable fields of an item. Nil fields are left
// unchanged.
type PackingItemPatch struct {
	Name        *string
	Category    *string
	Quantity    *int
	IsPacked    *bool
	IsEssential *bool
	Notes       *string
}

// PackingListResult is the output of packing-list generation before
// persistence. Every item is unpacked.
type PackingListResult struct {
	Categories []string
	Items      []PackingItem
}
