package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/handler"
	"github.com/pkordes/trip-planner/backend/internal/middleware"
)

var testUser = uuid.MustParse("6f1c2d0e-2b7a-4d3e-9a51-0c8f4e6b7a10")

// asTestUser stands in for the JWT authenticator.
func asTestUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), testUser)))
	})
}

// newHTTPHandler wires a Server with the given mocks into the real router,
// the same way main.go does, with a fixed authenticated user.
func newHTTPHandler(svc handler.Services) http.Handler {
	return handler.NewRouter(handler.NewServer(svc), handler.RouterOptions{Authenticate: asTestUser})
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func itineraryFixture() domain.Itinerary {
	id := uuid.New()
	return domain.Itinerary{
		ID:          id,
		UserID:      testUser,
		Title:       "Tastes of Goa",
		Destination: "Goa",
		StartDate:   date("2025-06-01"),
		EndDate:     date("2025-06-03"),
		Budget:      30000,
		Interests:   []string{"food"},
		Dietary:     domain.NewPreferenceSet("vegetarian"),
		ImageURL:    "/placeholder.svg?height=400&width=600&text=Goa",
		Days: []domain.Day{
			{ID: uuid.New(), ItineraryID: id, DayNumber: 1, Date: date("2025-06-01"), Description: "Arrive",
				Activities: []domain.Activity{{Type: "food", Title: "Fish thali", Time: "13:00", Cost: 600}}},
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}
