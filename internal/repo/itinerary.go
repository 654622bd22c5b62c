package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// ItineraryRepo defines the persistence operations for itineraries.
// Every read and write is scoped to the owning user; a row owned by someone
// else is reported as domain.ErrNotFound.
type ItineraryRepo interface {
	// Create inserts an itinerary (without its days) and returns the persisted
	// record with id and timestamps populated.
	Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)

	// GetByID retrieves one itinerary owned by userID. Days are not loaded.
	GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Itinerary, error)

	// ListPaged returns one page of the user's itineraries, newest first, and
	// the total number of itineraries the user owns.
	ListPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Itinerary, int64, error)

	// Update overwrites the mutable fields of an itinerary.
	Update(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)

	// Delete removes an itinerary; its days and packing list cascade.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by db.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

const itineraryColumns = `id, user_id, title, destination, start_date, end_date, budget,
	interests, accommodation_type, transportation_type, dietary_preferences,
	accessibility_needs, additional_notes, image_url, created_at, updated_at`

func itineraryArgs(it domain.Itinerary) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":                  it.ID,
		"user_id":             it.UserID,
		"title":               it.Title,
		"destination":         it.Destination,
		"start_date":          it.StartDate,
		"end_date":            it.EndDate,
		"budget":              it.Budget,
		"interests":           textArray(it.Interests),
		"accommodation_type":  nullableText(it.Accommodation),
		"transportation_type": nullableText(it.Transportation),
		"dietary_preferences": textArray(it.Dietary),
		"accessibility_needs": textArray(it.Accessibility),
		"additional_notes":    it.Notes,
		"image_url":           it.ImageURL,
	}
}

func (r *pgItineraryRepo) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	q := `
		INSERT INTO itineraries (user_id, title, destination, start_date, end_date, budget,
			interests, accommodation_type, transportation_type, dietary_preferences,
			accessibility_needs, additional_notes, image_url)
		VALUES (@user_id, @title, @destination, @start_date, @end_date, @budget,
			@interests, @accommodation_type, @transportation_type, @dietary_preferences,
			@accessibility_needs, @additional_notes, @image_url)
		RETURNING ` + itineraryColumns

	result, err := scanItinerary(r.db.QueryRow(ctx, q, itineraryArgs(it)))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgItineraryRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (domain.Itinerary, error) {
	q := `SELECT ` + itineraryColumns + `
		FROM itineraries
		WHERE id = @id AND user_id = @user_id`

	result, err := scanItinerary(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID}))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgItineraryRepo) ListPaged(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.Itinerary, int64, error) {
	var total int64
	const countQ = `SELECT count(*) FROM itineraries WHERE user_id = @user_id`
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"user_id": userID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListPaged: count: %w", err)
	}

	q := `SELECT ` + itineraryColumns + `
		FROM itineraries
		WHERE user_id = @user_id
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"user_id": userID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	items := []domain.Itinerary{}
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListPaged: scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListPaged: rows: %w", err)
	}
	return items, total, nil
}

func (r *pgItineraryRepo) Update(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	q := `
		UPDATE itineraries
		SET title               = @title,
		    destination         = @destination,
		    budget              = @budget,
		    interests           = @interests,
		    accommodation_type  = @accommodation_type,
		    transportation_type = @transportation_type,
		    dietary_preferences = @dietary_preferences,
		    accessibility_needs = @accessibility_needs,
		    additional_notes    = @additional_notes,
		    image_url           = @image_url,
		    updated_at          = now()
		WHERE id = @id AND user_id = @user_id
		RETURNING ` + itineraryColumns

	result, err := scanItinerary(r.db.QueryRow(ctx, q, itineraryArgs(it)))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgItineraryRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM itineraries WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanItinerary(s scanner) (domain.Itinerary, error) {
	var (
		it             domain.Itinerary
		id, userID     pgtype.UUID
		start, end     pgtype.Date
		accommodation  *string
		transportation *string
		dietary        []string
		accessibility  []string
	)

	err := s.Scan(&id, &userID, &it.Title, &it.Destination, &start, &end, &it.Budget,
		&it.Interests, &accommodation, &transportation, &dietary,
		&accessibility, &it.Notes, &it.ImageURL, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return domain.Itinerary{}, mapNoRows(err)
	}

	it.ID = uuid.UUID(id.Bytes)
	it.UserID = uuid.UUID(userID.Bytes)
	it.StartDate = start.Time
	it.EndDate = end.Time
	if accommodation != nil {
		it.Accommodation = domain.NewPreference(*accommodation)
	}
	if transportation != nil {
		it.Transportation = domain.NewPreference(*transportation)
	}
	it.Dietary = domain.NewPreferenceSet(dietary...)
	it.Accessibility = domain.NewPreferenceSet(accessibility...)
	return it, nil
}
