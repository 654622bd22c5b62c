// Package repo contains all database access logic for the trip planner.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// txDB is a db that can also open a transaction. pgx.Tx satisfies it too,
// in which case Begin opens a savepoint.
type txDB interface {
	db
	Begin(ctx context.Context) (pgx.Tx, error)
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Repos groups the per-resource repositories bound to one connection.
type Repos struct {
	Itineraries ItineraryRepo
	Days        DayRepo
	Packing     PackingRepo
	Profiles    ProfileRepo
}

// NewRepos binds every repository to db.
func NewRepos(db db) Repos {
	return Repos{
		Itineraries: NewItineraryRepo(db),
		Days:        NewDayRepo(db),
		Packing:     NewPackingRepo(db),
		Profiles:    NewProfileRepo(db),
	}
}

// Store exposes the repositories on the pool plus a way to run several
// writes atomically.
type Store struct {
	Repos
	conn txDB
}

// NewStore constructs a Store. In production pass *pgxpool.Pool.
func NewStore(conn txDB) *Store {
	return &Store{Repos: NewRepos(conn), conn: conn}
}

// InTx runs fn with repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) InTx(ctx context.Context, fn func(Repos) error) error {
	return pgx.BeginFunc(ctx, s.conn, func(tx pgx.Tx) error {
		return fn(NewRepos(tx))
	})
}

// mapNoRows converts pgx.ErrNoRows into domain.ErrNotFound.
func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// textArray keeps text[] NOT NULL columns from receiving NULL for nil slices.
func textArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// nullableText maps an unset preference to SQL NULL.
func nullableText(p domain.Preference) any {
	if v, ok := p.Value(); ok {
		return v
	}
	return nil
}
