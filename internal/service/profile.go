package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
)

// ProfileService reads and edits the caller's profile.
type ProfileService struct {
	repo repo.ProfileRepo
}

// NewProfileService constructs a ProfileService.
func NewProfileService(r repo.ProfileRepo) *ProfileService {
	return &ProfileService{repo: r}
}

// Get returns the user's profile, or an empty profile carrying only the id
// when none has been saved yet.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Profile{ID: userID}, nil
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Get: %w", err)
	}
	return p, nil
}

// Update applies patch and saves the profile, creating it if needed.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, patch domain.ProfilePatch) (domain.Profile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Update: %w", err)
	}
	if patch.FullName != nil {
		p.FullName = strings.TrimSpace(*patch.FullName)
	}
	if patch.AvatarURL != nil {
		p.AvatarURL = strings.TrimSpace(*patch.AvatarURL)
	}
	if patch.HomeCity != nil {
		p.HomeCity = strings.TrimSpace(*patch.HomeCity)
	}
	if err := validateStruct(p); err != nil {
		return domain.Profile{}, err
	}

	saved, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Update: %w", err)
	}
	return saved, nil
}
