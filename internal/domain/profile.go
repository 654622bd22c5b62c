package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds per-user display settings. ID is the user id issued by the
// identity provider, so a profile row is created lazily on first update.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name" validate:"max=120"`
	AvatarURL string    `json:"avatar_url" validate:"omitempty,url,max=500"`
	HomeCity  string    `json:"home_city" validate:"max=120"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfilePatch lists the editable profile fields. Nil fields are left unchanged.
type ProfilePatch struct {
	FullName  *string
	AvatarURL *string
	HomeCity  *string
}
