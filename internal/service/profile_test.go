package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/service"
)

func TestProfileService_Get_Missing(t *testing.T) {
	id := uuid.New()
	svc := service.NewProfileService(&mockProfileRepo{
		get: func(context.Context, uuid.UUID) (domain.Profile, error) { return domain.Profile{}, domain.ErrNotFound },
	})

	got, err := svc.Get(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, domain.Profile{ID: id}, got)
}

func TestProfileService_Update_Upserts(t *testing.T) {
	id := uuid.New()
	var saved domain.Profile
	svc := service.NewProfileService(&mockProfileRepo{
		get: func(context.Context, uuid.UUID) (domain.Profile, error) {
			return domain.Profile{ID: id, FullName: "Asha", HomeCity: "Pune"}, nil
		},
		upsert: func(_ context.Context, p domain.Profile) (domain.Profile, error) {
			saved = p
			return p, nil
		},
	})
	city := " Mumbai "

	got, err := svc.Update(context.Background(), id, domain.ProfilePatch{HomeCity: &city})

	require.NoError(t, err)
	assert.Equal(t, "Mumbai", got.HomeCity)
	assert.Equal(t, "Asha", saved.FullName, "unpatched fields are kept")
}

func TestProfileService_Update_InvalidAvatar(t *testing.T) {
	svc := service.NewProfileService(&mockProfileRepo{
		get: func(_ context.Context, id uuid.UUID) (domain.Profile, error) { return domain.Profile{ID: id}, nil },
	})
	bad := "not a url"

	_, err := svc.Update(context.Background(), uuid.New(), domain.ProfilePatch{AvatarURL: &bad})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "avatar_url must be a valid URL")
}
