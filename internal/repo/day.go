package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// DayRepo defines the persistence operations for itinerary days. A day's
// activities are stored inline as an ordered jsonb array.
// Callers verify itinerary ownership before using this repo.
type DayRepo interface {
	// Create inserts a day with its activities.
	Create(ctx context.Context, day domain.Day) (domain.Day, error)

	// ListByItinerary returns all days of an itinerary ordered by day_number.
	ListByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]domain.Day, error)

	// GetByID retrieves one day of an itinerary.
	GetByID(ctx context.Context, itineraryID, dayID uuid.UUID) (domain.Day, error)

	// Update overwrites a day, including its full activity list.
	Update(ctx context.Context, day domain.Day) (domain.Day, error)

	// Delete removes one day of an itinerary.
	Delete(ctx context.Context, itineraryID, dayID uuid.UUID) error
}

type pgDayRepo struct {
	db db
}

// NewDayRepo constructs a DayRepo backed by db.
func NewDayRepo(db db) DayRepo {
	return &pgDayRepo{db: db}
}

const dayColumns = `id, itinerary_id, day_number, date, description, activities, created_at, updated_at`

func dayArgs(d domain.Day) pgx.NamedArgs {
	activities := d.Activities
	if activities == nil {
		activities = []domain.Activity{}
	}
	return pgx.NamedArgs{
		"id":           d.ID,
		"itinerary_id": d.ItineraryID,
		"day_number":   d.DayNumber,
		"date":         d.Date,
		"description":  d.Description,
		"activities":   activities,
	}
}

func (r *pgDayRepo) Create(ctx context.Context, day domain.Day) (domain.Day, error) {
	q := `
		INSERT INTO itinerary_days (itinerary_id, day_number, date, description, activities)
		VALUES (@itinerary_id, @day_number, @date, @description, @activities)
		RETURNING ` + dayColumns

	result, err := scanDay(r.db.QueryRow(ctx, q, dayArgs(day)))
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgDayRepo) ListByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]domain.Day, error) {
	q := `SELECT ` + dayColumns + `
		FROM itinerary_days
		WHERE itinerary_id = @itinerary_id
		ORDER BY day_number, date, created_at`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"itinerary_id": itineraryID})
	if err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByItinerary: %w", err)
	}
	defer rows.Close()

	days := []domain.Day{}
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DayRepo.ListByItinerary: scan: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByItinerary: rows: %w", err)
	}
	return days, nil
}

func (r *pgDayRepo) GetByID(ctx context.Context, itineraryID, dayID uuid.UUID) (domain.Day, error) {
	q := `SELECT ` + dayColumns + `
		FROM itinerary_days
		WHERE id = @id AND itinerary_id = @itinerary_id`

	result, err := scanDay(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": dayID, "itinerary_id": itineraryID}))
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgDayRepo) Update(ctx context.Context, day domain.Day) (domain.Day, error) {
	q := `
		UPDATE itinerary_days
		SET day_number  = @day_number,
		    date        = @date,
		    description = @description,
		    activities  = @activities,
		    updated_at  = now()
		WHERE id = @id AND itinerary_id = @itinerary_id
		RETURNING ` + dayColumns

	result, err := scanDay(r.db.QueryRow(ctx, q, dayArgs(day)))
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgDayRepo) Delete(ctx context.Context, itineraryID, dayID uuid.UUID) error {
	const q = `DELETE FROM itinerary_days WHERE id = @id AND itinerary_id = @itinerary_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": dayID, "itinerary_id": itineraryID})
	if err != nil {
		return fmt.Errorf("repo.DayRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DayRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanDay(s scanner) (domain.Day, error) {
	var (
		d        domain.Day
		id, itID pgtype.UUID
		date     pgtype.Date
	)

	err := s.Scan(&id, &itID, &d.DayNumber, &date, &d.Description, &d.Activities, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return domain.Day{}, mapNoRows(err)
	}

	d.ID = uuid.UUID(id.Bytes)
	d.ItineraryID = uuid.UUID(itID.Bytes)
	d.Date = date.Time
	if d.Activities == nil {
		d.Activities = []domain.Activity{}
	}
	return d, nil
}
