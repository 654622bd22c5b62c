package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// PackingRepo defines the persistence operations for packing lists and their
// items. Lists are scoped to the owning user; items are scoped to their list.
type PackingRepo interface {
	// CreateList inserts the list header. Returns domain.ErrConflict when the
	// itinerary already has a list.
	CreateList(ctx context.Context, list domain.PackingList) (domain.PackingList, error)

	// GetListByItinerary returns the list header of an itinerary owned by
	// userID. Items are not loaded.
	GetListByItinerary(ctx context.Context, userID, itineraryID uuid.UUID) (domain.PackingList, error)

	// UpdateCategories replaces the ordered category list.
	UpdateCategories(ctx context.Context, listID uuid.UUID, categories []string) error

	// CreateItem inserts one item into a list.
	CreateItem(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)

	// ListItems returns a list's items ordered by category, then name.
	ListItems(ctx context.Context, listID uuid.UUID) ([]domain.PackingItem, error)

	// GetItem retrieves one item of a list.
	GetItem(ctx context.Context, listID, itemID uuid.UUID) (domain.PackingItem, error)

	// UpdateItem overwrites the mutable fields of an item.
	UpdateItem(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error)

	// DeleteItem removes one item of a list.
	DeleteItem(ctx context.Context, listID, itemID uuid.UUID) error
}

type pgPackingRepo struct {
	db db
}

// NewPackingRepo constructs a PackingRepo backed by db.
func NewPackingRepo(db db) PackingRepo {
	return &pgPackingRepo{db: db}
}

const (
	listColumns = `id, itinerary_id, user_id, categories, created_at, updated_at`
	itemColumns = `id, list_id, name, category, quantity, is_packed, is_essential, notes, created_at, updated_at`
)

func (r *pgPackingRepo) CreateList(ctx context.Context, list domain.PackingList) (domain.PackingList, error) {
	q := `
		INSERT INTO packing_lists (itinerary_id, user_id, categories)
		VALUES (@itinerary_id, @user_id, @categories)
		RETURNING ` + listColumns

	args := pgx.NamedArgs{
		"itinerary_id": list.ItineraryID,
		"user_id":      list.UserID,
		"categories":   textArray(list.Categories),
	}
	result, err := scanList(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.PackingList{}, fmt.Errorf("repo.PackingRepo.CreateList: %w", domain.ErrConflict)
		}
		return domain.PackingList{}, fmt.Errorf("repo.PackingRepo.CreateList: %w", err)
	}
	return result, nil
}

func (r *pgPackingRepo) GetListByItinerary(ctx context.Context, userID, itineraryID uuid.UUID) (domain.PackingList, error) {
	q := `SELECT ` + listColumns + `
		FROM packing_lists
		WHERE itinerary_id = @itinerary_id AND user_id = @user_id`

	result, err := scanList(r.db.QueryRow(ctx, q, pgx.NamedArgs{"itinerary_id": itineraryID, "user_id": userID}))
	if err != nil {
		return domain.PackingList{}, fmt.Errorf("repo.PackingRepo.GetListByItinerary: %w", err)
	}
	return result, nil
}

func (r *pgPackingRepo) UpdateCategories(ctx context.Context, listID uuid.UUID, categories []string) error {
	const q = `
		UPDATE packing_lists
		SET categories = @categories, updated_at = now()
		WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": listID, "categories": textArray(categories)})
	if err != nil {
		return fmt.Errorf("repo.PackingRepo.UpdateCategories: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackingRepo.UpdateCategories: %w", domain.ErrNotFound)
	}
	return nil
}

func itemArgs(it domain.PackingItem) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":           it.ID,
		"list_id":      it.ListID,
		"name":         it.Name,
		"category":     it.Category,
		"quantity":     it.Quantity,
		"is_packed":    it.IsPacked,
		"is_essential": it.IsEssential,
		"notes":        it.Notes,
	}
}

func (r *pgPackingRepo) CreateItem(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error) {
	q := `
		INSERT INTO packing_items (list_id, name, category, quantity, is_packed, is_essential, notes)
		VALUES (@list_id, @name, @category, @quantity, @is_packed, @is_essential, @notes)
		RETURNING ` + itemColumns

	result, err := scanItem(r.db.QueryRow(ctx, q, itemArgs(item)))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingRepo.CreateItem: %w", err)
	}
	return result, nil
}

func (r *pgPackingRepo) ListItems(ctx context.Context, listID uuid.UUID) ([]domain.PackingItem, error) {
	q := `SELECT ` + itemColumns + `
		FROM packing_items
		WHERE list_id = @list_id
		ORDER BY category, name, created_at`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"list_id": listID})
	if err != nil {
		return nil, fmt.Errorf("repo.PackingRepo.ListItems: %w", err)
	}
	defer rows.Close()

	items := []domain.PackingItem{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PackingRepo.ListItems: scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PackingRepo.ListItems: rows: %w", err)
	}
	return items, nil
}

func (r *pgPackingRepo) GetItem(ctx context.Context, listID, itemID uuid.UUID) (domain.PackingItem, error) {
	q := `SELECT ` + itemColumns + `
		FROM packing_items
		WHERE id = @id AND list_id = @list_id`

	result, err := scanItem(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": itemID, "list_id": listID}))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingRepo.GetItem: %w", err)
	}
	return result, nil
}

func (r *pgPackingRepo) UpdateItem(ctx context.Context, item domain.PackingItem) (domain.PackingItem, error) {
	q := `
		UPDATE packing_items
		SET name         = @name,
		    category     = @category,
		    quantity     = @quantity,
		    is_packed    = @is_packed,
		    is_essential = @is_essential,
		    notes        = @notes,
		    updated_at   = now()
		WHERE id = @id AND list_id = @list_id
		RETURNING ` + itemColumns

	result, err := scanItem(r.db.QueryRow(ctx, q, itemArgs(item)))
	if err != nil {
		return domain.PackingItem{}, fmt.Errorf("repo.PackingRepo.UpdateItem: %w", err)
	}
	return result, nil
}

func (r *pgPackingRepo) DeleteItem(ctx context.Context, listID, itemID uuid.UUID) error {
	const q = `DELETE FROM packing_items WHERE id = @id AND list_id = @list_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": itemID, "list_id": listID})
	if err != nil {
		return fmt.Errorf("repo.PackingRepo.DeleteItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PackingRepo.DeleteItem: %w", domain.ErrNotFound)
	}
	return nil
}

func scanList(s scanner) (domain.PackingList, error) {
	var (
		l               domain.PackingList
		id, itID, owner pgtype.UUID
	)
	if err := s.Scan(&id, &itID, &owner, &l.Categories, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return domain.PackingList{}, mapNoRows(err)
	}
	l.ID = uuid.UUID(id.Bytes)
	l.ItineraryID = uuid.UUID(itID.Bytes)
	l.UserID = uuid.UUID(owner.Bytes)
	return l, nil
}

func scanItem(s scanner) (domain.PackingItem, error) {
	var (
		it         domain.PackingItem
		id, listID pgtype.UUID
	)
	err := s.Scan(&id, &listID, &it.Name, &it.Category, &it.Quantity, &it.IsPacked,
		&it.IsEssential, &it.Notes, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return domain.PackingItem{}, mapNoRows(err)
	}
	it.ID = uuid.UUID(id.Bytes)
	it.ListID = uuid.UUID(listID.Bytes)
	return it, nil
}
