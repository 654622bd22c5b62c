package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/repo"
	"github.com/pkordes/trip-planner/backend/testutil"
)

// newTestTx opens a transaction that is rolled back when the test finishes,
// giving per-test isolation without cleanup SQL.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

func newTestRepos(t *testing.T) repo.Repos {
	t.Helper()
	return repo.NewRepos(newTestTx(t))
}

func day(s string) time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

// itineraryFixture returns an itinerary with sensible defaults for userID.
func itineraryFixture(userID uuid.UUID) domain.Itinerary {
	return domain.Itinerary{
		UserID:        userID,
		Title:         "Tastes of Goa",
		Destination:   "Goa",
		StartDate:     day("2025-06-01"),
		EndDate:       day("2025-06-03"),
		Budget:        30000,
		Interests:     []string{"food", "beaches"},
		Accommodation: domain.NewPreference("beach hut"),
		Dietary:       domain.NewPreferenceSet("vegetarian"),
		Notes:         "first visit",
		ImageURL:      "https://images.example.com/goa.jpg",
	}
}

func createItinerary(t *testing.T, r repo.Repos, userID uuid.UUID) domain.Itinerary {
	t.Helper()
	it, err := r.Itineraries.Create(context.Background(), itineraryFixture(userID))
	require.NoError(t, err)
	return it
}
