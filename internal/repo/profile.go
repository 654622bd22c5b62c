package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// ProfileRepo defines the persistence operations for user profiles.
type ProfileRepo interface {
	// Get returns the profile for a user id, or domain.ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (domain.Profile, error)

	// Upsert creates the profile or overwrites every editable field.
	Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

type pgProfileRepo struct {
	db db
}

// NewProfileRepo constructs a ProfileRepo backed by db.
func NewProfileRepo(db db) ProfileRepo {
	return &pgProfileRepo{db: db}
}

const profileColumns = `id, full_name, avatar_url, home_city, created_at, updated_at`

func (r *pgProfileRepo) Get(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	q := `SELECT ` + profileColumns + ` FROM profiles WHERE id = @id`

	result, err := scanProfile(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.Get: %w", err)
	}
	return result, nil
}

func (r *pgProfileRepo) Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	q := `
		INSERT INTO profiles (id, full_name, avatar_url, home_city)
		VALUES (@id, @full_name, @avatar_url, @home_city)
		ON CONFLICT (id) DO UPDATE
		SET full_name  = EXCLUDED.full_name,
		    avatar_url = EXCLUDED.avatar_url,
		    home_city  = EXCLUDED.home_city,
		    updated_at = now()
		RETURNING ` + profileColumns

	args := pgx.NamedArgs{
		"id":         p.ID,
		"full_name":  p.FullName,
		"avatar_url": p.AvatarURL,
		"home_city":  p.HomeCity,
	}
	result, err := scanProfile(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.Upsert: %w", err)
	}
	return result, nil
}

func scanProfile(s scanner) (domain.Profile, error) {
	var (
		p  domain.Profile
		id pgtype.UUID
	)
	if err := s.Scan(&id, &p.FullName, &p.AvatarURL, &p.HomeCity, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Profile{}, mapNoRows(err)
	}
	p.ID = uuid.UUID(id.Bytes)
	return p, nil
}
